package create_event_inscription

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events/models"
)

// InscribeRequest HTTP request model
type InscribeRequest struct {
	MemberID   int64 `json:"memberId" validate:"required,gt=0"`
	IsOutsider bool  `json:"isOutsider"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *InscribeRequest) ToServiceRequest() *models.InscribeRequest {
	return &models.InscribeRequest{
		MemberID:   r.MemberID,
		IsOutsider: r.IsOutsider,
	}
}
