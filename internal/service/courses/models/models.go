package models

import (
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

// Request модели

// CreateCourseRequest запрос на создание курса
type CreateCourseRequest struct {
	UserID  int64
	Name    string
	SpaceID int64
	Price   float64
}

// Window ежедневное окно расписания
type Window struct {
	Start types.TimeString
	End   types.TimeString
}

// PublishWindowsRequest запрос на массовую публикацию окон курса.
// Пустой Weekdays означает каждый день диапазона
type PublishWindowsRequest struct {
	UserID   int64
	From     time.Time
	To       time.Time
	Weekdays []time.Weekday
	Windows  []Window
}

// InscribeRequest запрос на запись участника в окно курса
type InscribeRequest struct {
	MemberID   int64
	IsOutsider bool
	Start      time.Time
	End        time.Time
}

// Response модели

// CourseResponse ответ с данными курса
type CourseResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	SpaceID   int64          `json:"spaceId"`
	Price     float64        `json:"price"`
	IsActive  bool           `json:"isActive"`
	Windows   []SlotResponse `json:"windows,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// SlotResponse опубликованное окно курса
type SlotResponse struct {
	ID        int64   `json:"id"`
	SpaceID   int64   `json:"spaceId"`
	Date      string  `json:"date"`
	StartHour string  `json:"startHour"`
	EndHour   string  `json:"endHour"`
	Occupied  bool    `json:"occupied"`
	Price     float64 `json:"price"`
}

// PublishWindowsResponse результат публикации окон
type PublishWindowsResponse struct {
	CourseID int64          `json:"courseId"`
	Slots    []SlotResponse `json:"slots"`
}

// InscriptionResponse ответ с данными записи на курс
type InscriptionResponse struct {
	ID          int64      `json:"id"`
	CourseID    int64      `json:"courseId"`
	SlotID      int64      `json:"slotId"`
	MemberID    int64      `json:"memberId"`
	IsOutsider  bool       `json:"isOutsider"`
	Price       float64    `json:"price"`
	IsCancelled bool       `json:"isCancelled"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	Warnings    []string   `json:"warnings,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ActionResult результат операции без тела ответа (отмена)
type ActionResult struct {
	Changed  bool     `json:"changed"`
	Warnings []string `json:"warnings,omitempty"`
}

// Методы конвертации

// FromDomainCourse конвертирует domain модель в DTO
func FromDomainCourse(c *domain.Course) *CourseResponse {
	if c == nil {
		return nil
	}

	return &CourseResponse{
		ID:        c.ID,
		Name:      c.Name,
		SpaceID:   c.SpaceID,
		Price:     c.Price,
		IsActive:  c.IsActive,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) SlotResponse {
	return SlotResponse{
		ID:        s.ID,
		SpaceID:   s.SpaceID,
		Date:      s.Day.Format(domain.DateFormat),
		StartHour: s.StartAt.Format(domain.TimeFormat),
		EndHour:   s.EndAt.Format(domain.TimeFormat),
		Occupied:  s.Occupied,
		Price:     s.Price,
	}
}

// FromDomainSlotList конвертирует список слотов в DTO
func FromDomainSlotList(slots []*domain.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, FromDomainSlot(s))
	}
	return result
}

// FromDomainInscription конвертирует domain модель в DTO
func FromDomainInscription(ins *domain.CourseInscription) *InscriptionResponse {
	if ins == nil {
		return nil
	}

	return &InscriptionResponse{
		ID:          ins.ID,
		CourseID:    ins.CourseID,
		SlotID:      ins.SlotID,
		MemberID:    ins.MemberID,
		IsOutsider:  ins.IsOutsider,
		Price:       ins.Price,
		IsCancelled: ins.IsCancelled,
		CancelledAt: ins.CancelledAt,
		CreatedAt:   ins.CreatedAt,
	}
}
