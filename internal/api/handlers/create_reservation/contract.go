package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
)

type ReservationService interface {
	Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
