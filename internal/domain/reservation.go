package domain

import "time"

// Reservation occupancy of a space requested by a member, an event or the staff
type Reservation struct {
	ID               int64
	Name             string
	SpaceID          int64
	Day              time.Time
	StartAt          time.Time
	EndAt            time.Time
	Capacity         int
	OutsidersAllowed bool
	Special          bool // exempted/guest booking
	CreatedBy        int64
	IsCancelled      bool
	CancelledAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Interval time range of the reservation
func (r *Reservation) Interval() Interval {
	return Interval{Start: r.StartAt, End: r.EndAt}
}

// IsActive returns true until the reservation is cancelled
func (r *Reservation) IsActive() bool {
	return !r.IsCancelled
}

// ReservationFilter filter for listing reservations of a space
type ReservationFilter struct {
	SpaceID         int64
	Day             *time.Time
	IncludeCanceled bool
}
