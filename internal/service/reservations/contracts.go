package reservations

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/integrations/notifications"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
)

// BookingCoordinator координатор занятости площадок
type BookingCoordinator interface {
	Book(ctx context.Context, req booking.Request, persist booking.PersistFunc) (*booking.Occupancy, error)
	Rebook(ctx context.Context, req booking.RebookRequest, persist booking.PersistFunc) (*booking.Occupancy, error)
	ReleaseReservation(ctx context.Context, reservationID int64) (bool, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// EventRepository поиск события, которому принадлежит бронирование
type EventRepository interface {
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Event, error)
}

// InscriptionRepository интерфейс репозитория записей на бронирования
type InscriptionRepository interface {
	Create(ctx context.Context, ins *domain.ReservationInscription) (*domain.ReservationInscription, error)
	GetByID(ctx context.Context, id int64) (*domain.ReservationInscription, error)
	ListByReservation(ctx context.Context, reservationID int64) ([]*domain.ReservationInscription, error)
	CountActive(ctx context.Context, reservationID int64) (int, error)
	Cancel(ctx context.Context, id int64) (bool, error)
}

// Notifier отправка уведомлений после фиксации транзакции
type Notifier interface {
	Notify(ctx context.Context, msg notifications.Notification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
