package domain

import (
	"math"
	"time"
)

// SpaceCategory kind of club space
type SpaceCategory string

const (
	CategorySports  SpaceCategory = "sports"
	CategoryLeisure SpaceCategory = "leisure"
)

// IsValid reports whether the category is known
func (c SpaceCategory) IsValid() bool {
	return c == CategorySports || c == CategoryLeisure
}

// Space a bookable club space (court, room, hall)
type Space struct {
	ID           int64
	Name         string
	Capacity     int
	CostPerHour  float64
	IsReservable bool // members may book it directly
	IsAvailable  bool // false = soft-deleted or closed
	Category     SpaceCategory
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AcceptsReservations returns true if a member reservation may occupy the space.
// Special reservations bypass the reservable flag.
func (s *Space) AcceptsReservations(special bool) bool {
	if !s.IsAvailable {
		return false
	}
	return special || s.IsReservable
}

// PriceFor price of occupying the space for the interval, rounded to cents
func (s *Space) PriceFor(iv Interval) float64 {
	return math.Round(s.CostPerHour*iv.Duration().Hours()*100) / 100
}

// SpaceFilter filter for listing spaces
type SpaceFilter struct {
	Category  *SpaceCategory
	Available *bool
}
