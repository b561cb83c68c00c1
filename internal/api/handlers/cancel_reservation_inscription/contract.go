package cancel_reservation_inscription

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
)

type ReservationService interface {
	CancelInscription(ctx context.Context, reservationID, inscriptionID int64) (*models.ActionResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
