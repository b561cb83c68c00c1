package publish_course_slots

import (
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

// PublishSlotsRequest HTTP request model.
// weekdays в нумерации ISO: 1 - понедельник, 7 - воскресенье; пустой список - каждый день
type PublishSlotsRequest struct {
	From     string       `json:"from" validate:"required"` // "2026-07-06"
	To       string       `json:"to" validate:"required"`
	Weekdays []int        `json:"weekdays" validate:"omitempty,dive,min=1,max=7"`
	Windows  []WindowBody `json:"windows" validate:"required,min=1,dive"`
}

// WindowBody ежедневное окно
type WindowBody struct {
	StartHour types.TimeString `json:"startHour" validate:"required"`
	EndHour   types.TimeString `json:"endHour" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *PublishSlotsRequest) ToServiceRequest(userID int64) (*models.PublishWindowsRequest, error) {
	from, err := types.ParseDate(r.From)
	if err != nil {
		return nil, err
	}
	to, err := types.ParseDate(r.To)
	if err != nil {
		return nil, err
	}

	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		weekdays = append(weekdays, time.Weekday(d%7))
	}

	windows := make([]models.Window, 0, len(r.Windows))
	for _, w := range r.Windows {
		windows = append(windows, models.Window{Start: w.StartHour, End: w.EndHour})
	}

	return &models.PublishWindowsRequest{
		UserID:   userID,
		From:     from,
		To:       to,
		Weekdays: weekdays,
		Windows:  windows,
	}, nil
}
