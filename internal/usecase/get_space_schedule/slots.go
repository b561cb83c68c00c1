package get_space_schedule

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

// splitSlots делит слоты дня на занятые и свободные опубликованные окна
func splitSlots(slots []*domain.Slot) (occupied, published []Entry) {
	occupied = make([]Entry, 0)
	published = make([]Entry, 0)

	for _, s := range slots {
		entry := Entry{
			SlotID:        s.ID,
			Start:         types.NewTimeString(s.StartAt),
			End:           types.NewTimeString(s.EndAt),
			Price:         s.Price,
			ReservationID: s.ReservationID,
			CourseID:      s.CourseID,
		}
		if s.Occupied {
			occupied = append(occupied, entry)
		} else {
			published = append(published, entry)
		}
	}

	return occupied, published
}

// computeFreeGaps вычисляет свободные промежутки между занятыми слотами в часах работы.
// Свободные окна курсов не занимают площадку и в расчете не участвуют.
// Слоты вне часов работы обрезаются по границам
//
// Пример: часы 08:00-22:00, занято 10:00-11:00 и 10:30-12:00 →
// свободно 08:00-10:00 и 12:00-22:00
func computeFreeGaps(hours Hours, occupied []Entry) []Gap {
	gaps := make([]Gap, 0)
	cursor := hours.Open

	// occupied отсортированы по началу (ListByDay)
	for _, e := range occupied {
		start, end := e.Start, e.End
		if !end.IsAfter(cursor) {
			continue
		}
		if !start.IsBefore(hours.Close) {
			break
		}

		if start.IsAfter(cursor) {
			gaps = appendGap(gaps, cursor, start)
		}
		cursor = end
	}

	if cursor.IsBefore(hours.Close) {
		gaps = appendGap(gaps, cursor, hours.Close)
	}

	return gaps
}

func appendGap(gaps []Gap, start, end types.TimeString) []Gap {
	startMin, err := start.Minutes()
	if err != nil {
		return gaps
	}
	endMin, err := end.Minutes()
	if err != nil {
		return gaps
	}

	return append(gaps, Gap{Start: start, End: end, DurationMinutes: endMin - startMin})
}
