package courses

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/integrations/notifications"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
)

// BookingCoordinator координатор занятости опубликованных окон
type BookingCoordinator interface {
	OccupyPublished(ctx context.Context, req booking.PublishedRequest, persist booking.PersistSlotFunc) (*domain.Slot, error)
	ReleasePublished(ctx context.Context, slotID int64) (bool, error)
}

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	Create(ctx context.Context, c *domain.Course) (*domain.Course, error)
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

// InscriptionRepository интерфейс репозитория записей на курсы
type InscriptionRepository interface {
	Create(ctx context.Context, ins *domain.CourseInscription) (*domain.CourseInscription, error)
	GetByID(ctx context.Context, id int64) (*domain.CourseInscription, error)
	Cancel(ctx context.Context, id int64) (bool, error)
}

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	LockForBooking(ctx context.Context, id int64) (*domain.Space, error)
}

// SlotRepository интерфейс реестра слотов
type SlotRepository interface {
	Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error)
	ListByDay(ctx context.Context, spaceID int64, day time.Time) ([]*domain.Slot, error)
	ListByCourse(ctx context.Context, courseID int64) ([]*domain.Slot, error)
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
