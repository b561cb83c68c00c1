package courses

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/integrations/notifications"
	courseRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/course"
	reservationRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/slot"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/logger"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/types"
)

type recordingNotifier struct {
	sent []notifications.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, msg notifications.Notification) error {
	n.sent = append(n.sent, msg)
	return nil
}

type env struct {
	svc         *Service
	coordinator *booking.Coordinator
	notifier    *recordingNotifier
	spaceID     int64
	count       func(table, where string, args ...interface{}) int
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := storagetest.NewDB(t)
	tx := storagetest.NewTxManager(db)
	spaces := spaceRepo.NewRepository(db)
	slots := slotRepo.NewRepository(db)

	coordinator := booking.NewCoordinator(
		spaces,
		slots,
		reservationRepo.NewRepository(db),
		reservationRepo.NewInscriptionRepository(db),
		tx,
		nil,
		logger.Discard(),
	)

	notifier := &recordingNotifier{}
	return &env{
		svc: NewService(
			coordinator,
			courseRepo.NewRepository(db),
			courseRepo.NewInscriptionRepository(db),
			spaces,
			slots,
			tx,
			notifier,
			logger.Discard(),
		),
		coordinator: coordinator,
		notifier:    notifier,
		spaceID:     storagetest.InsertSpace(t, db, "Pool", true),
		count: func(table, where string, args ...interface{}) int {
			return storagetest.Count(t, db, table, where, args...)
		},
	}
}

func (e *env) course(t *testing.T) *models.CourseResponse {
	t.Helper()
	resp, err := e.svc.Create(context.Background(), &models.CreateCourseRequest{
		UserID:  1,
		Name:    "Swimming for beginners",
		SpaceID: e.spaceID,
		Price:   30,
	})
	require.NoError(t, err)
	return resp
}

func (e *env) publish(t *testing.T, courseID int64) *models.PublishWindowsResponse {
	t.Helper()
	// 2026-07-06 понедельник
	resp, err := e.svc.PublishWindows(context.Background(), courseID, &models.PublishWindowsRequest{
		From:     storagetest.Day(2026, time.July, 6),
		To:       storagetest.Day(2026, time.July, 12),
		Weekdays: []time.Weekday{time.Monday, time.Wednesday},
		Windows: []models.Window{
			{Start: types.MustTimeString("09:00"), End: types.MustTimeString("10:00")},
			{Start: types.MustTimeString("10:00"), End: types.MustTimeString("11:00")},
		},
	})
	require.NoError(t, err)
	return resp
}

func TestService_Create(t *testing.T) {
	e := newEnv(t)

	resp := e.course(t)
	assert.NotZero(t, resp.ID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, 30.0, resp.Price)

	_, err := e.svc.Create(context.Background(), &models.CreateCourseRequest{Name: "x", SpaceID: 999})
	assert.ErrorIs(t, err, ErrSpaceNotFound)

	_, err = e.svc.Create(context.Background(), &models.CreateCourseRequest{Name: "x", SpaceID: e.spaceID, Price: -1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_PublishWindows(t *testing.T) {
	e := newEnv(t)
	course := e.course(t)

	resp := e.publish(t, course.ID)

	require.Len(t, resp.Slots, 4)
	assert.Equal(t, "2026-07-06", resp.Slots[0].Date)
	assert.Equal(t, "09:00", resp.Slots[0].StartHour)
	assert.Equal(t, "2026-07-08", resp.Slots[2].Date)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Occupied)
		assert.Equal(t, 30.0, slot.Price)
	}

	got, err := e.svc.GetByID(context.Background(), course.ID)
	require.NoError(t, err)
	assert.Len(t, got.Windows, 4)
}

func TestService_PublishWindows_RejectsWholeBatchOnConflict(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	course := e.course(t)

	_, err := e.coordinator.Book(ctx, booking.Request{
		SpaceID:   e.spaceID,
		Start:     storagetest.At(2026, time.July, 8, 10, 30),
		End:       storagetest.At(2026, time.July, 8, 11, 30),
		Name:      "Aqua gym",
		Capacity:  4,
		CreatedBy: 7,
	}, nil)
	require.NoError(t, err)

	_, err = e.svc.PublishWindows(ctx, course.ID, &models.PublishWindowsRequest{
		From:     storagetest.Day(2026, time.July, 6),
		To:       storagetest.Day(2026, time.July, 12),
		Weekdays: []time.Weekday{time.Monday, time.Wednesday},
		Windows: []models.Window{
			{Start: types.MustTimeString("10:00"), End: types.MustTimeString("11:00")},
		},
	})

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "10:30 - 11:30", conflict.Window())
	assert.Equal(t, 0, e.count("slots", "course_id = $1", course.ID))
}

func TestService_PublishWindows_Validation(t *testing.T) {
	e := newEnv(t)
	course := e.course(t)

	nine, ten, eleven := types.MustTimeString("09:00"), types.MustTimeString("10:00"), types.MustTimeString("11:00")

	tests := []struct {
		name string
		req  models.PublishWindowsRequest
	}{
		{
			name: "reversed range",
			req: models.PublishWindowsRequest{
				From:    storagetest.Day(2026, time.July, 12),
				To:      storagetest.Day(2026, time.July, 6),
				Windows: []models.Window{{Start: nine, End: ten}},
			},
		},
		{
			name: "no windows",
			req: models.PublishWindowsRequest{
				From: storagetest.Day(2026, time.July, 6),
				To:   storagetest.Day(2026, time.July, 6),
			},
		},
		{
			name: "reversed window",
			req: models.PublishWindowsRequest{
				From:    storagetest.Day(2026, time.July, 6),
				To:      storagetest.Day(2026, time.July, 6),
				Windows: []models.Window{{Start: ten, End: nine}},
			},
		},
		{
			name: "overlapping windows",
			req: models.PublishWindowsRequest{
				From:    storagetest.Day(2026, time.July, 6),
				To:      storagetest.Day(2026, time.July, 6),
				Windows: []models.Window{{Start: nine, End: eleven}, {Start: ten, End: eleven}},
			},
		},
		{
			name: "range too long",
			req: models.PublishWindowsRequest{
				From:    storagetest.Day(2026, time.January, 1),
				To:      storagetest.Day(2027, time.June, 1),
				Windows: []models.Window{{Start: nine, End: ten}},
			},
		},
		{
			name: "no matching weekday",
			req: models.PublishWindowsRequest{
				From:     storagetest.Day(2026, time.July, 6),
				To:       storagetest.Day(2026, time.July, 6),
				Weekdays: []time.Weekday{time.Sunday},
				Windows:  []models.Window{{Start: nine, End: ten}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := e.svc.PublishWindows(context.Background(), course.ID, &req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := e.svc.PublishWindows(context.Background(), 999, &models.PublishWindowsRequest{
		From:    storagetest.Day(2026, time.July, 6),
		To:      storagetest.Day(2026, time.July, 6),
		Windows: []models.Window{{Start: nine, End: ten}},
	})
	assert.ErrorIs(t, err, ErrCourseNotFound)
}

func TestService_InscribeAndCancel(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	course := e.course(t)
	e.publish(t, course.ID)

	req := &models.InscribeRequest{
		MemberID: 10,
		Start:    storagetest.At(2026, time.July, 6, 9, 0),
		End:      storagetest.At(2026, time.July, 6, 10, 0),
	}

	ins, err := e.svc.Inscribe(ctx, course.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 30.0, ins.Price)
	assert.Equal(t, 1, e.count("slots", "id = $1 AND occupied = $2", ins.SlotID, true))

	t.Run("occupied window", func(t *testing.T) {
		_, err := e.svc.Inscribe(ctx, course.ID, &models.InscribeRequest{
			MemberID: 11,
			Start:    req.Start,
			End:      req.End,
		})
		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "09:00 - 10:00", conflict.Window())
	})

	t.Run("unpublished window", func(t *testing.T) {
		_, err := e.svc.Inscribe(ctx, course.ID, &models.InscribeRequest{
			MemberID: 11,
			Start:    storagetest.At(2026, time.July, 7, 9, 0),
			End:      storagetest.At(2026, time.July, 7, 10, 0),
		})
		assert.ErrorIs(t, err, booking.ErrWindowNotFound)
	})

	t.Run("ownership", func(t *testing.T) {
		_, err := e.svc.CancelInscription(ctx, course.ID+1, ins.ID)
		assert.ErrorIs(t, err, ErrInscriptionNotFound)
	})

	result, err := e.svc.CancelInscription(ctx, course.ID, ins.ID)
	require.NoError(t, err)
	assert.True(t, result.Changed)
	assert.Equal(t, 1, e.count("slots", "id = $1 AND occupied = $2", ins.SlotID, false))

	result, err = e.svc.CancelInscription(ctx, course.ID, ins.ID)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	// окно снова доступно
	again, err := e.svc.Inscribe(ctx, course.ID, &models.InscribeRequest{MemberID: 11, Start: req.Start, End: req.End})
	require.NoError(t, err)
	assert.Equal(t, ins.SlotID, again.SlotID)

	kinds := make([]notifications.Type, 0, len(e.notifier.sent))
	for _, n := range e.notifier.sent {
		kinds = append(kinds, n.Type)
	}
	assert.Equal(t, []notifications.Type{
		notifications.InscriptionCreated,
		notifications.InscriptionCancelled,
		notifications.InscriptionCreated,
	}, kinds)
}
