package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNameLength        = 200
	MaxDescriptionLength = 2000
	MaxCapacity          = 10000
	MaxPublishDays       = 366
)
