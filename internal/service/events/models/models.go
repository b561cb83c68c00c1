package models

import (
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

// Request модели

// CreateEventRequest запрос на создание события
type CreateEventRequest struct {
	UserID           int64
	SpaceID          int64
	Start            time.Time
	End              time.Time
	Name             string
	Description      *string
	MemberPrice      float64
	OutsiderPrice    float64
	Capacity         int
	OutsidersAllowed bool
}

// UpdateEventRequest запрос на изменение события
type UpdateEventRequest struct {
	UserID        int64
	SpaceID       int64
	Start         time.Time
	End           time.Time
	Name          string
	Description   *string
	MemberPrice   float64
	OutsiderPrice float64
	Capacity      int
}

// InscribeRequest запрос на запись участника
type InscribeRequest struct {
	MemberID   int64
	IsOutsider bool
}

// Response модели

// EventResponse ответ с данными события
type EventResponse struct {
	ID               int64      `json:"id"`
	ReservationID    int64      `json:"reservationId"`
	SpaceID          int64      `json:"spaceId,omitempty"`
	Name             string     `json:"name"`
	Description      *string    `json:"description,omitempty"`
	Date             string     `json:"date"`
	StartHour        string     `json:"startHour"`
	EndHour          string     `json:"endHour"`
	MemberPrice      float64    `json:"memberPrice"`
	OutsiderPrice    float64    `json:"outsiderPrice"`
	Capacity         int        `json:"capacity"`
	RegisterCount    int        `json:"registerCount"`
	OutsidersAllowed bool       `json:"outsidersAllowed"`
	IsCancelled      bool       `json:"isCancelled"`
	CancelledAt      *time.Time `json:"cancelledAt,omitempty"`
	Warnings         []string   `json:"warnings,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// InscriptionResponse ответ с данными записи на событие
type InscriptionResponse struct {
	ID          int64      `json:"id"`
	EventID     int64      `json:"eventId"`
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

// FromDomainEvent конвертирует domain модель в DTO
func FromDomainEvent(e *domain.Event, res *domain.Reservation) *EventResponse {
	if e == nil {
		return nil
	}

	resp := &EventResponse{
		ID:            e.ID,
		ReservationID: e.ReservationID,
		Name:          e.Name,
		Description:   e.Description,
		Date:          e.Day.Format(domain.DateFormat),
		StartHour:     e.StartAt.Format(domain.TimeFormat),
		EndHour:       e.EndAt.Format(domain.TimeFormat),
		MemberPrice:   e.MemberPrice,
		OutsiderPrice: e.OutsiderPrice,
		Capacity:      e.Capacity,
		RegisterCount: e.RegisterCount,
		IsCancelled:   e.IsCancelled,
		CancelledAt:   e.CancelledAt,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if res != nil {
		resp.SpaceID = res.SpaceID
		resp.OutsidersAllowed = res.OutsidersAllowed
	}
	return resp
}

// FromDomainInscription конвертирует domain модель в DTO
func FromDomainInscription(ins *domain.EventInscription) *InscriptionResponse {
	if ins == nil {
		return nil
	}

	return &InscriptionResponse{
		ID:          ins.ID,
		EventID:     ins.EventID,
		MemberID:    ins.MemberID,
		IsOutsider:  ins.IsOutsider,
		Price:       ins.Price,
		IsCancelled: ins.IsCancelled,
		CancelledAt: ins.CancelledAt,
		CreatedAt:   ins.CreatedAt,
	}
}
