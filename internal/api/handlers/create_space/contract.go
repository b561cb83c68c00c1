package create_space

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces/models"
)

type SpaceService interface {
	Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
