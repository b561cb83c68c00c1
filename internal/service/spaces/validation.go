package spaces

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

func validateSpace(name string, capacity int, costPerHour float64, category string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if capacity <= 0 || capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between 1 and %d", ErrInvalidInput, domain.MaxCapacity)
	}

	if costPerHour < 0 {
		return fmt.Errorf("%w: costPerHour must not be negative", ErrInvalidInput)
	}

	if !domain.SpaceCategory(category).IsValid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidInput, category)
	}

	return nil
}
