package domain

import "time"

// Event programmed activity wrapping exactly one reservation
type Event struct {
	ID            int64
	ReservationID int64
	Name          string
	Description   *string
	Day           time.Time
	StartAt       time.Time
	EndAt         time.Time
	MemberPrice   float64
	OutsiderPrice float64
	Capacity      int
	RegisterCount int
	IsCancelled   bool
	CancelledAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsFull returns true when no more inscriptions are accepted
func (e *Event) IsFull() bool {
	return e.RegisterCount >= e.Capacity
}

// PriceFor price tier for a member or an outsider
func (e *Event) PriceFor(outsider bool) float64 {
	if outsider {
		return e.OutsiderPrice
	}
	return e.MemberPrice
}

// IsActive returns true until the event is cancelled
func (e *Event) IsActive() bool {
	return !e.IsCancelled
}
