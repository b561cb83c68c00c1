package create_reservation_inscription

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
)

type ReservationService interface {
	Inscribe(ctx context.Context, reservationID int64, req *models.InscribeRequest) (*models.InscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
