package update_reservation

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
)

// UpdateReservationRequest HTTP request model. Смена spaceId/date/часов переносит бронирование
type UpdateReservationRequest struct {
	SpaceID          int64  `json:"spaceId" validate:"required,gt=0"`
	Date             string `json:"date" validate:"required"`
	StartHour        string `json:"startHour" validate:"required"`
	EndHour          string `json:"endHour" validate:"required"`
	Name             string `json:"name" validate:"required,max=200"`
	Capacity         int    `json:"capacity" validate:"required,gt=0"`
	OutsidersAllowed bool   `json:"outsidersAllowed"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateReservationRequest) ToServiceRequest(userID int64) (*models.UpdateReservationRequest, error) {
	start, end, err := handlers.ParseInterval(r.Date, r.StartHour, r.EndHour)
	if err != nil {
		return nil, err
	}

	return &models.UpdateReservationRequest{
		UserID:           userID,
		SpaceID:          r.SpaceID,
		Start:            start,
		End:              end,
		Name:             r.Name,
		Capacity:         r.Capacity,
		OutsidersAllowed: r.OutsidersAllowed,
	}, nil
}
