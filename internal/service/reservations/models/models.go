package models

import (
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

// Request модели

// CreateReservationRequest запрос на бронирование площадки
type CreateReservationRequest struct {
	UserID           int64
	SpaceID          int64
	Start            time.Time
	End              time.Time
	Name             string
	Capacity         int
	OutsidersAllowed bool
	Special          bool
}

// UpdateReservationRequest запрос на изменение бронирования (поля и/или перенос)
type UpdateReservationRequest struct {
	UserID           int64
	SpaceID          int64
	Start            time.Time
	End              time.Time
	Name             string
	Capacity         int
	OutsidersAllowed bool
}

// ListReservationsRequest фильтр списка бронирований площадки
type ListReservationsRequest struct {
	SpaceID          int64
	Date             *time.Time
	IncludeCancelled bool
}

// InscribeRequest запрос на запись участника
type InscribeRequest struct {
	MemberID   int64
	IsOutsider bool
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID               int64                 `json:"id"`
	Name             string                `json:"name"`
	SpaceID          int64                 `json:"spaceId"`
	Date             string                `json:"date"`      // "2026-07-01"
	StartHour        string                `json:"startHour"` // "10:00"
	EndHour          string                `json:"endHour"`
	Capacity         int                   `json:"capacity"`
	OutsidersAllowed bool                  `json:"outsidersAllowed"`
	Special          bool                  `json:"special"`
	CreatedBy        int64                 `json:"createdBy,omitempty"`
	IsCancelled      bool                  `json:"isCancelled"`
	CancelledAt      *time.Time            `json:"cancelledAt,omitempty"`
	SlotID           int64                 `json:"slotId,omitempty"`
	Price            *float64              `json:"price,omitempty"`
	Inscriptions     []InscriptionResponse `json:"inscriptions,omitempty"`
	Warnings         []string              `json:"warnings,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// InscriptionResponse ответ с данными записи
type InscriptionResponse struct {
	ID            int64      `json:"id"`
	ReservationID int64      `json:"reservationId"`
	MemberID      int64      `json:"memberId"`
	IsOutsider    bool       `json:"isOutsider"`
	Price         float64    `json:"price"`
	IsCancelled   bool       `json:"isCancelled"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	Warnings      []string   `json:"warnings,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:               r.ID,
		Name:             r.Name,
		SpaceID:          r.SpaceID,
		Date:             r.Day.Format(domain.DateFormat),
		StartHour:        r.StartAt.Format(domain.TimeFormat),
		EndHour:          r.EndAt.Format(domain.TimeFormat),
		Capacity:         r.Capacity,
		OutsidersAllowed: r.OutsidersAllowed,
		Special:          r.Special,
		CreatedBy:        r.CreatedBy,
		IsCancelled:      r.IsCancelled,
		CancelledAt:      r.CancelledAt,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(list []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{Reservations: make([]ReservationResponse, 0, len(list))}
	for _, r := range list {
		resp.Reservations = append(resp.Reservations, *FromDomainReservation(r))
	}
	return resp
}

// FromDomainInscription конвертирует domain модель в DTO
func FromDomainInscription(ins *domain.ReservationInscription) *InscriptionResponse {
	if ins == nil {
		return nil
	}

	return &InscriptionResponse{
		ID:            ins.ID,
		ReservationID: ins.ReservationID,
		MemberID:      ins.MemberID,
		IsOutsider:    ins.IsOutsider,
		Price:         ins.Price,
		IsCancelled:   ins.IsCancelled,
		CancelledAt:   ins.CancelledAt,
		CreatedAt:     ins.CreatedAt,
	}
}

// ActionResult результат операции без тела ответа (отмена)
type ActionResult struct {
	Changed  bool     `json:"changed"`
	Warnings []string `json:"warnings,omitempty"`
}
