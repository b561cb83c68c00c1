package create_space

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces/models"
)

// CreateSpaceRequest HTTP request model
type CreateSpaceRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Capacity     int     `json:"capacity" validate:"required,gt=0"`
	CostPerHour  float64 `json:"costPerHour" validate:"gte=0"`
	IsReservable *bool   `json:"isReservable"`
	Category     string  `json:"category" validate:"required,oneof=sports leisure"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса.
// isReservable по умолчанию true
func (r *CreateSpaceRequest) ToServiceRequest() *models.CreateSpaceRequest {
	reservable := true
	if r.IsReservable != nil {
		reservable = *r.IsReservable
	}

	return &models.CreateSpaceRequest{
		Name:         r.Name,
		Capacity:     r.Capacity,
		CostPerHour:  r.CostPerHour,
		IsReservable: reservable,
		Category:     r.Category,
	}
}
