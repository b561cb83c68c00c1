package create_reservation

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	SpaceID          int64  `json:"spaceId" validate:"required,gt=0"`
	Date             string `json:"date" validate:"required"`      // "2026-07-01"
	StartHour        string `json:"startHour" validate:"required"` // "10:00"
	EndHour          string `json:"endHour" validate:"required"`
	Name             string `json:"name" validate:"required,max=200"`
	Capacity         int    `json:"capacity" validate:"required,gt=0"`
	OutsidersAllowed bool   `json:"outsidersAllowed"`
	Special          bool   `json:"special"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом даты и времени)
func (r *CreateReservationRequest) ToServiceRequest(userID int64) (*models.CreateReservationRequest, error) {
	start, end, err := handlers.ParseInterval(r.Date, r.StartHour, r.EndHour)
	if err != nil {
		return nil, err
	}

	return &models.CreateReservationRequest{
		UserID:           userID,
		SpaceID:          r.SpaceID,
		Start:            start,
		End:              end,
		Name:             r.Name,
		Capacity:         r.Capacity,
		OutsidersAllowed: r.OutsidersAllowed,
		Special:          r.Special,
	}, nil
}
