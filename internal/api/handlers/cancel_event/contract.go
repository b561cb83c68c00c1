package cancel_event

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events/models"
)

type EventService interface {
	Cancel(ctx context.Context, id int64, userID int64) (*models.ActionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
