package domain

import "time"

// Inscription billed registration of a member. Cancellation is logical only
type Inscription struct {
	ID          int64
	MemberID    int64
	IsOutsider  bool
	Price       float64
	IsCancelled bool
	CancelledAt *time.Time
	CreatedAt   time.Time
}

// ReservationInscription registration to a reservation
type ReservationInscription struct {
	Inscription
	ReservationID int64
}

// EventInscription registration to an event
type EventInscription struct {
	Inscription
	EventID int64
}

// CourseInscription registration to a course window; occupies the window slot
type CourseInscription struct {
	Inscription
	CourseID int64
	SlotID   int64
}
