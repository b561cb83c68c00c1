package cancel_event_inscription

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events/models"
)

type EventService interface {
	CancelInscription(ctx context.Context, eventID, inscriptionID int64) (*models.ActionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
