package get_space_schedule

import (
	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	getSpaceSchedule "github.com/m04kA/SMC-ClubSpacesService/internal/usecase/get_space_schedule"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	SpaceID   int64       `json:"spaceId"`
	SpaceName string      `json:"spaceName"`
	Date      string      `json:"date"`
	Open      string      `json:"openTime"`
	Close     string      `json:"closeTime"`
	Occupied  []SlotEntry `json:"occupied"`
	Published []SlotEntry `json:"published"`
	Free      []FreeGap   `json:"free"`
}

// SlotEntry слот в расписании
type SlotEntry struct {
	SlotID        int64   `json:"slotId"`
	StartHour     string  `json:"startHour"`
	EndHour       string  `json:"endHour"`
	Price         float64 `json:"price"`
	ReservationID *int64  `json:"reservationId,omitempty"`
	CourseID      *int64  `json:"courseId,omitempty"`
}

// FreeGap свободный промежуток
type FreeGap struct {
	StartHour       string `json:"startHour"`
	EndHour         string `json:"endHour"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(spaceID int64, dateStr string) (*getSpaceSchedule.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getSpaceSchedule.Request{
		SpaceID: spaceID,
		Date:    date,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSpaceSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		SpaceID:   resp.SpaceID,
		SpaceName: resp.SpaceName,
		Date:      resp.Date.Format(domain.DateFormat),
		Open:      resp.Open.String(),
		Close:     resp.Close.String(),
		Occupied:  toEntries(resp.Occupied),
		Published: toEntries(resp.Published),
		Free:      toGaps(resp.Free),
	}
}

func toEntries(entries []getSpaceSchedule.Entry) []SlotEntry {
	result := make([]SlotEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, SlotEntry{
			SlotID:        e.SlotID,
			StartHour:     e.Start.String(),
			EndHour:       e.End.String(),
			Price:         e.Price,
			ReservationID: e.ReservationID,
			CourseID:      e.CourseID,
		})
	}
	return result
}

func toGaps(gaps []getSpaceSchedule.Gap) []FreeGap {
	result := make([]FreeGap, 0, len(gaps))
	for _, g := range gaps {
		result = append(result, FreeGap{
			StartHour:       g.Start.String(),
			EndHour:         g.End.String(),
			DurationMinutes: g.DurationMinutes,
		})
	}
	return result
}
