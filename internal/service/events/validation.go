package events

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

func validateFields(name string, description *string, capacity int, memberPrice, outsiderPrice float64) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if description != nil && len(*description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description is longer than %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}
	if capacity <= 0 || capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity must be between 1 and %d", ErrInvalidInput, domain.MaxCapacity)
	}
	if memberPrice < 0 || outsiderPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidInput)
	}
	return nil
}
