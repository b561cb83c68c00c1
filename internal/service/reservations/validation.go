package reservations

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

func validateFields(name string, capacity int) error {
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
	return nil
}
