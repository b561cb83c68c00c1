package domain

import "time"

// Course academy course held in published windows of one space
type Course struct {
	ID        int64
	Name      string
	SpaceID   int64
	Price     float64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
