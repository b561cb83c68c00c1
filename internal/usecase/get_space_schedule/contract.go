package get_space_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
}

// SlotRepository интерфейс слотового реестра
type SlotRepository interface {
	// ListByDay все слоты площадки за день, отсортированные по времени начала
	ListByDay(ctx context.Context, spaceID int64, day time.Time) ([]*domain.Slot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
