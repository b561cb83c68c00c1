package create_course_inscription

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
)

// InscribeRequest HTTP request model: окно курса задается датой и часами
type InscribeRequest struct {
	MemberID   int64  `json:"memberId" validate:"required,gt=0"`
	IsOutsider bool   `json:"isOutsider"`
	Date       string `json:"date" validate:"required"`
	StartHour  string `json:"startHour" validate:"required"`
	EndHour    string `json:"endHour" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *InscribeRequest) ToServiceRequest() (*models.InscribeRequest, error) {
	start, end, err := handlers.ParseInterval(r.Date, r.StartHour, r.EndHour)
	if err != nil {
		return nil, err
	}

	return &models.InscribeRequest{
		MemberID:   r.MemberID,
		IsOutsider: r.IsOutsider,
		Start:      start,
		End:        end,
	}, nil
}
