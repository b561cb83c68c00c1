package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
)

type ReservationService interface {
	Cancel(ctx context.Context, id int64, userID int64) (*models.ActionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
