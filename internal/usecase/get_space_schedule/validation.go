package get_space_schedule

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateHours проверяет, что клуб открывается раньше, чем закрывается
func validateHours(h Hours) error {
	if err := h.Open.Validate(); err != nil {
		return fmt.Errorf("open time: %w", err)
	}
	if err := h.Close.Validate(); err != nil {
		return fmt.Errorf("close time: %w", err)
	}
	if !h.Open.IsBefore(h.Close) {
		return fmt.Errorf("open time %s must be before close time %s", h.Open, h.Close)
	}
	return nil
}
