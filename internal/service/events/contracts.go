package events

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

// EventRepository интерфейс репозитория событий
type EventRepository interface {
	Create(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, ev *domain.Event) (*domain.Event, error)
	IncrementRegistered(ctx context.Context, id int64) error
	DecrementRegistered(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) (bool, error)
}

// InscriptionRepository интерфейс репозитория записей на события
type InscriptionRepository interface {
	Create(ctx context.Context, ins *domain.EventInscription) (*domain.EventInscription, error)
	GetByID(ctx context.Context, id int64) (*domain.EventInscription, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventInscription, error)
	Cancel(ctx context.Context, id int64) (bool, error)
	CancelByEvent(ctx context.Context, eventID int64) (int64, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
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
