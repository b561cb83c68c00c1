package booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

// Flow источник бронирования, используется в метриках и проверках площадки
type Flow string

const (
	FlowReservation Flow = "reservation"
	FlowEvent       Flow = "event"
	FlowCourse      Flow = "course"
)

// Исходы для метрик
const (
	outcomeBooked   = "booked"
	outcomeConflict = "conflict"
	outcomeError    = "error"
	outcomeReleased = "released"
)

// Request запрос на занятие площадки новым бронированием
type Request struct {
	SpaceID          int64
	Start            time.Time
	End              time.Time
	Name             string
	Capacity         int
	OutsidersAllowed bool
	Special          bool     // бронирование без проверки is_reservable и бесплатно
	CreatedBy        int64    // X-User-ID
	Price            *float64 // переопределение цены слота
	Flow             Flow
}

// PublishedRequest запрос на занятие опубликованного окна курса
type PublishedRequest struct {
	CourseID int64
	SpaceID  int64
	Start    time.Time
	End      time.Time
}

// RebookRequest перенос бронирования на другой интервал и/или площадку
type RebookRequest struct {
	ReservationID int64
	SpaceID       int64
	Start         time.Time
	End           time.Time
	Flow          Flow
	// Apply изменяет остальные поля бронирования перед сохранением (опционально)
	Apply func(ctx context.Context, res *domain.Reservation) error
}

// Occupancy результат бронирования: занятый слот и владеющее им бронирование
type Occupancy struct {
	Slot        *domain.Slot
	Reservation *domain.Reservation
}

// PersistFunc дописывает доменные записи (событие, запись на курс) в той же транзакции
type PersistFunc func(ctx context.Context, occ *Occupancy) error

// PersistSlotFunc дописывает запись на окно курса в той же транзакции
type PersistSlotFunc func(ctx context.Context, slot *domain.Slot) error
