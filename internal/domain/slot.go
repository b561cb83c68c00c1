package domain

import "time"

// Slot occupancy unit of the slot ledger.
// Occupied=false rows are course windows published ahead of time.
type Slot struct {
	ID            int64
	SpaceID       int64
	Day           time.Time
	StartAt       time.Time
	EndAt         time.Time
	Occupied      bool
	Price         float64
	ReservationID *int64 // owning reservation of an occupied ad-hoc slot
	CourseID      *int64 // set on published course windows
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Interval time range of the slot
func (s *Slot) Interval() Interval {
	return Interval{Start: s.StartAt, End: s.EndAt}
}

// IsPublished returns true for course windows created by schedule publication
func (s *Slot) IsPublished() bool {
	return s.CourseID != nil
}

// SlotKey identifies a published window by coordinates
type SlotKey struct {
	SpaceID int64
	Day     time.Time
	Start   time.Time
	End     time.Time
}
