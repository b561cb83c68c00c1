package update_space

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces/models"
)

// UpdateSpaceRequest HTTP request model
type UpdateSpaceRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Capacity     int     `json:"capacity" validate:"required,gt=0"`
	CostPerHour  float64 `json:"costPerHour" validate:"gte=0"`
	IsReservable bool    `json:"isReservable"`
	IsAvailable  bool    `json:"isAvailable"`
	Category     string  `json:"category" validate:"required,oneof=sports leisure"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSpaceRequest) ToServiceRequest() *models.UpdateSpaceRequest {
	return &models.UpdateSpaceRequest{
		Name:         r.Name,
		Capacity:     r.Capacity,
		CostPerHour:  r.CostPerHour,
		IsReservable: r.IsReservable,
		IsAvailable:  r.IsAvailable,
		Category:     r.Category,
	}
}
