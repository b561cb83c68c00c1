package update_event

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events/models"
)

// UpdateEventRequest HTTP request model
type UpdateEventRequest struct {
	SpaceID       int64   `json:"spaceId" validate:"required,gt=0"`
	Date          string  `json:"date" validate:"required"`
	StartHour     string  `json:"startHour" validate:"required"`
	EndHour       string  `json:"endHour" validate:"required"`
	Name          string  `json:"name" validate:"required,max=200"`
	Description   *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	MemberPrice   float64 `json:"memberPrice" validate:"gte=0"`
	OutsiderPrice float64 `json:"outsiderPrice" validate:"gte=0"`
	Capacity      int     `json:"capacity" validate:"required,gt=0"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateEventRequest) ToServiceRequest(userID int64) (*models.UpdateEventRequest, error) {
	start, end, err := handlers.ParseInterval(r.Date, r.StartHour, r.EndHour)
	if err != nil {
		return nil, err
	}

	return &models.UpdateEventRequest{
		UserID:        userID,
		SpaceID:       r.SpaceID,
		Start:         start,
		End:           end,
		Name:          r.Name,
		Description:   r.Description,
		MemberPrice:   r.MemberPrice,
		OutsiderPrice: r.OutsiderPrice,
		Capacity:      r.Capacity,
	}, nil
}
