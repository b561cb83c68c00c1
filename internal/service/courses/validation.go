package courses

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
)

func validateCourse(req *models.CreateCourseRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}
	if req.SpaceID <= 0 {
		return fmt.Errorf("%w: spaceId must be positive", ErrInvalidInput)
	}
	if req.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return nil
}

// expandWindows разворачивает диапазон дат, дни недели и дневные окна в список интервалов.
// Пересекающиеся между собой окна одного дня отклоняются
func expandWindows(req *models.PublishWindowsRequest) ([]domain.Interval, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from := domain.DayOf(req.From)
	to := domain.DayOf(req.To)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if days := int(to.Sub(from).Hours()/24) + 1; days > domain.MaxPublishDays {
		return nil, fmt.Errorf("%w: range of %d days exceeds %d", ErrInvalidInput, days, domain.MaxPublishDays)
	}
	if len(req.Windows) == 0 {
		return nil, fmt.Errorf("%w: at least one window is required", ErrInvalidInput)
	}

	weekdays := make(map[time.Weekday]bool, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		if wd < time.Sunday || wd > time.Saturday {
			return nil, fmt.Errorf("%w: unknown weekday %d", ErrInvalidInput, wd)
		}
		weekdays[wd] = true
	}

	var result []domain.Interval
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if len(weekdays) > 0 && !weekdays[day.Weekday()] {
			continue
		}

		daily := make([]domain.Interval, 0, len(req.Windows))
		for _, w := range req.Windows {
			start, err := w.Start.On(day)
			if err != nil {
				return nil, fmt.Errorf("%w: window start: %v", ErrInvalidInput, err)
			}
			end, err := w.End.On(day)
			if err != nil {
				return nil, fmt.Errorf("%w: window end: %v", ErrInvalidInput, err)
			}
			iv, err := domain.NewInterval(start, end)
			if err != nil {
				return nil, fmt.Errorf("%w: window %s-%s: %v", ErrInvalidInput, w.Start, w.End, err)
			}

			for _, other := range daily {
				if other.Overlaps(iv) {
					return nil, fmt.Errorf("%w: windows %s and %s overlap", ErrInvalidInput, other.Window(), iv.Window())
				}
			}
			daily = append(daily, iv)
		}
		result = append(result, daily...)
	}

	if len(result) == 0 {
		return nil, fmt.Errorf("%w: no days of the range match the weekdays", ErrInvalidInput)
	}
	return result, nil
}
