package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

// validateRequest валидирует входные данные и нормализует интервал
func validateRequest(req *Request) (domain.Interval, error) {
	if req.SpaceID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: spaceId must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Name) == "" {
		return domain.Interval{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if req.Capacity <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: capacity must be positive", ErrInvalidInput)
	}

	if req.Price != nil && *req.Price < 0 {
		return domain.Interval{}, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	if req.Flow == "" {
		req.Flow = FlowReservation
	}

	return newInterval(req.Start, req.End)
}

// validatePublishedRequest валидирует запрос на окно курса
func validatePublishedRequest(req *PublishedRequest) (domain.Interval, error) {
	if req.CourseID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: courseId must be positive", ErrInvalidInput)
	}
	if req.SpaceID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: spaceId must be positive", ErrInvalidInput)
	}
	return newInterval(req.Start, req.End)
}

// validateRebookRequest валидирует запрос на перенос
func validateRebookRequest(req *RebookRequest) (domain.Interval, error) {
	if req.ReservationID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}
	if req.SpaceID <= 0 {
		return domain.Interval{}, fmt.Errorf("%w: spaceId must be positive", ErrInvalidInput)
	}
	if req.Flow == "" {
		req.Flow = FlowReservation
	}
	return newInterval(req.Start, req.End)
}

func newInterval(start, end time.Time) (domain.Interval, error) {
	iv, err := domain.NewInterval(start, end)
	if err != nil {
		return domain.Interval{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return iv, nil
}

// checkSpace проверяет, что площадка принимает бронирование данного типа
func checkSpace(space *domain.Space, flow Flow, special bool) error {
	if !space.IsAvailable {
		return ErrSpaceUnavailable
	}
	if flow == FlowReservation && !space.AcceptsReservations(special) {
		return ErrSpaceNotReservable
	}
	return nil
}

// slotPrice цена слота: переопределенная, ноль для special или стоимость часа площадки
func slotPrice(space *domain.Space, iv domain.Interval, special bool, override *float64) float64 {
	if override != nil {
		return *override
	}
	if special {
		return 0
	}
	return space.PriceFor(iv)
}
