package get_space_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/logger"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/ptr"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

type mockSpaceRepo struct{ mock.Mock }

func (m *mockSpaceRepo) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.Space), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSlotRepo struct{ mock.Mock }

func (m *mockSlotRepo) ListByDay(ctx context.Context, spaceID int64, day time.Time) ([]*domain.Slot, error) {
	args := m.Called(ctx, spaceID, day)
	if s := args.Get(0); s != nil {
		return s.([]*domain.Slot), args.Error(1)
	}
	return nil, args.Error(1)
}

var hours = Hours{Open: types.MustTimeString("08:00"), Close: types.MustTimeString("22:00")}

func at(h, m int) time.Time {
	return time.Date(2026, time.July, 1, h, m, 0, 0, time.UTC)
}

func slot(id int64, sh, sm, eh, em int, occupied bool) *domain.Slot {
	return &domain.Slot{ID: id, SpaceID: 1, Day: at(0, 0), StartAt: at(sh, sm), EndAt: at(eh, em), Occupied: occupied}
}

func TestExecute(t *testing.T) {
	spaces := new(mockSpaceRepo)
	slots := new(mockSlotRepo)
	uc, err := NewUseCase(spaces, slots, hours, logger.Discard())
	require.NoError(t, err)

	published := slot(3, 17, 0, 18, 0, false)
	published.CourseID = ptr.Ptr(int64(5))

	spaces.On("GetByID", mock.Anything, int64(1)).Return(&domain.Space{ID: 1, Name: "Court 1", IsAvailable: true}, nil)
	slots.On("ListByDay", mock.Anything, int64(1), at(0, 0)).Return([]*domain.Slot{
		slot(1, 10, 0, 11, 0, true),
		slot(2, 11, 0, 12, 30, true),
		published,
	}, nil)

	resp, err := uc.Execute(context.Background(), &Request{SpaceID: 1, Date: at(15, 45)})
	require.NoError(t, err)

	assert.Equal(t, "Court 1", resp.SpaceName)
	assert.Equal(t, at(0, 0), resp.Date)
	require.Len(t, resp.Occupied, 2)
	require.Len(t, resp.Published, 1)
	assert.Equal(t, types.TimeString("17:00"), resp.Published[0].Start)

	assert.Equal(t, []Gap{
		{Start: "08:00", End: "10:00", DurationMinutes: 120},
		{Start: "12:30", End: "22:00", DurationMinutes: 570},
	}, resp.Free)

	spaces.AssertExpectations(t)
	slots.AssertExpectations(t)
}

func TestExecute_Errors(t *testing.T) {
	spaces := new(mockSpaceRepo)
	slots := new(mockSlotRepo)
	uc, err := NewUseCase(spaces, slots, hours, logger.Discard())
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{SpaceID: 0, Date: at(0, 0)})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = uc.Execute(context.Background(), &Request{SpaceID: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)

	spaces.On("GetByID", mock.Anything, int64(404)).Return(nil, spaceRepo.ErrSpaceNotFound)
	_, err = uc.Execute(context.Background(), &Request{SpaceID: 404, Date: at(0, 0)})
	assert.ErrorIs(t, err, ErrSpaceNotFound)

	spaces.On("GetByID", mock.Anything, int64(2)).Return(&domain.Space{ID: 2, IsAvailable: true}, nil)
	slots.On("ListByDay", mock.Anything, int64(2), at(0, 0)).Return(nil, errors.New("db down"))
	_, err = uc.Execute(context.Background(), &Request{SpaceID: 2, Date: at(0, 0)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestNewUseCase_InvalidHours(t *testing.T) {
	_, err := NewUseCase(nil, nil, Hours{Open: "22:00", Close: "08:00"}, logger.Discard())
	assert.Error(t, err)

	_, err = NewUseCase(nil, nil, Hours{Open: "8am", Close: "22:00"}, logger.Discard())
	assert.Error(t, err)
}

func TestComputeFreeGaps(t *testing.T) {
	entry := func(start, end string) Entry {
		return Entry{Start: types.TimeString(start), End: types.TimeString(end)}
	}

	tests := []struct {
		name     string
		occupied []Entry
		want     []Gap
	}{
		{
			name: "empty day",
			want: []Gap{{Start: "08:00", End: "22:00", DurationMinutes: 840}},
		},
		{
			name:     "touching slots leave no gap between them",
			occupied: []Entry{entry("08:00", "09:00"), entry("09:00", "10:00")},
			want:     []Gap{{Start: "10:00", End: "22:00", DurationMinutes: 720}},
		},
		{
			name:     "slot outside opening hours is clipped",
			occupied: []Entry{entry("07:00", "08:30"), entry("21:30", "23:00")},
			want:     []Gap{{Start: "08:30", End: "21:30", DurationMinutes: 780}},
		},
		{
			name:     "nested slot",
			occupied: []Entry{entry("10:00", "12:00"), entry("10:30", "11:00")},
			want: []Gap{
				{Start: "08:00", End: "10:00", DurationMinutes: 120},
				{Start: "12:00", End: "22:00", DurationMinutes: 600},
			},
		},
		{
			name:     "fully booked",
			occupied: []Entry{entry("06:00", "23:00")},
			want:     []Gap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeFreeGaps(hours, tt.occupied))
		})
	}
}
