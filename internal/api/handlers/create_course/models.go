package create_course

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
)

// CreateCourseRequest HTTP request model
type CreateCourseRequest struct {
	Name    string  `json:"name" validate:"required,max=200"`
	SpaceID int64   `json:"spaceId" validate:"required,gt=0"`
	Price   float64 `json:"price" validate:"gte=0"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateCourseRequest) ToServiceRequest(userID int64) *models.CreateCourseRequest {
	return &models.CreateCourseRequest{
		UserID:  userID,
		Name:    r.Name,
		SpaceID: r.SpaceID,
		Price:   r.Price,
	}
}
