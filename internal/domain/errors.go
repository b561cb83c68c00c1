package domain

import (
	"errors"
	"fmt"
	"time"
)

// Error kinds. Package-level sentinels wrap one of them with %w,
// handlers map kinds to HTTP status codes.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("time slot conflict")
	ErrIntegrity  = errors.New("integrity violation")
	ErrForbidden  = errors.New("forbidden")
)

// ConflictError the requested interval intersects an occupied slot.
// Start/End describe the blocking occupancy.
type ConflictError struct {
	SpaceID int64
	Day     time.Time
	Start   time.Time
	End     time.Time
}

// NewConflictError builds a conflict for the blocking slot
func NewConflictError(slot *Slot) *ConflictError {
	return &ConflictError{
		SpaceID: slot.SpaceID,
		Day:     slot.Day,
		Start:   slot.StartAt,
		End:     slot.EndAt,
	}
}

// Window human-readable blocking window, e.g. "10:00 - 11:00"
func (e *ConflictError) Window() string {
	return fmt.Sprintf("%s - %s", e.Start.UTC().Format(TimeFormat), e.End.UTC().Format(TimeFormat))
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("space %d is already booked on %s at %s",
		e.SpaceID, e.Day.UTC().Format(DateFormat), e.Window())
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
