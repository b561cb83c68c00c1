package get_space_schedule

import (
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

// Hours часы работы клуба
type Hours struct {
	Open  types.TimeString
	Close types.TimeString
}

// Request модель запроса расписания площадки
type Request struct {
	SpaceID int64
	Date    time.Time // день (без времени)
}

// Response расписание площадки на день
type Response struct {
	SpaceID   int64
	SpaceName string
	Date      time.Time
	Open      types.TimeString
	Close     types.TimeString
	Occupied  []Entry // занятые слоты: разовые бронирования и занятые окна курсов
	Published []Entry // свободные опубликованные окна курсов
	Free      []Gap   // свободные промежутки в часах работы клуба
}

// Entry слот в расписании
type Entry struct {
	SlotID        int64
	Start         types.TimeString
	End           types.TimeString
	Price         float64
	ReservationID *int64
	CourseID      *int64
}

// Gap свободный промежуток
type Gap struct {
	Start           types.TimeString
	End             types.TimeString
	DurationMinutes int
}
