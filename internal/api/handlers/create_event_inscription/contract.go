package create_event_inscription

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events/models"
)

type EventService interface {
	Inscribe(ctx context.Context, eventID int64, req *models.InscribeRequest) (*models.InscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
