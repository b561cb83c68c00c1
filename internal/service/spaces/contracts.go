package spaces

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

// SpaceRepository интерфейс репозитория площадок
type SpaceRepository interface {
	Create(ctx context.Context, space *domain.Space) (*domain.Space, error)
	GetByID(ctx context.Context, id int64) (*domain.Space, error)
	List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error)
	Update(ctx context.Context, space *domain.Space) (*domain.Space, error)
	SoftDelete(ctx context.Context, id int64) error
}

// Cache read-through кэш площадок по id (опционально)
type Cache interface {
	Get(ctx context.Context, id int64) (*domain.Space, bool)
	Set(ctx context.Context, space *domain.Space)
	Invalidate(ctx context.Context, id int64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
