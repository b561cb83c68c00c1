package booking

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	LockForBooking(ctx context.Context, id int64) (*domain.Space, error)
}

// SlotRepository интерфейс слотового реестра
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.Slot, error)
	FindPublished(ctx context.Context, courseID int64, key domain.SlotKey) (*domain.Slot, error)
	FindOverlapping(ctx context.Context, spaceID int64, iv domain.Interval, excludeID int64) ([]*domain.Slot, error)
	Occupy(ctx context.Context, id int64) error
	Free(ctx context.Context, id int64) (bool, error)
	LinkReservation(ctx context.Context, slotID, reservationID int64) error
	Delete(ctx context.Context, id int64) error
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	Cancel(ctx context.Context, id int64) (bool, error)
}

// ReservationInscriptionRepository интерфейс репозитория записей на бронирования
type ReservationInscriptionRepository interface {
	CancelByReservation(ctx context.Context, reservationID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчик исходов бронирования
type Metrics interface {
	RecordBooking(flow, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
