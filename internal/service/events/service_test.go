package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/integrations/notifications"
	eventRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/event"
	reservationRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/slot"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events/models"
	reservationsService "github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations"
	reservationModels "github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/logger"
)

type recordingNotifier struct {
	sent []notifications.Notification
	err  error
}

func (n *recordingNotifier) Notify(_ context.Context, msg notifications.Notification) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

// staffUserID сотрудник клуба; события в тестах создает пользователь 1
const staffUserID = 2

type env struct {
	svc          *Service
	reservations *reservationsService.Service
	coordinator  *booking.Coordinator
	notifier     *recordingNotifier
	spaceID      int64
	hallID       int64
	count        func(table, where string, args ...interface{}) int
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := storagetest.NewDB(t)
	tx := storagetest.NewTxManager(db)
	spaces := spaceRepo.NewRepository(db)
	reservations := reservationRepo.NewRepository(db)
	reservationInscriptions := reservationRepo.NewInscriptionRepository(db)
	events := eventRepo.NewRepository(db)
	staff := domain.NewStaff(staffUserID)

	coordinator := booking.NewCoordinator(
		spaces,
		slotRepo.NewRepository(db),
		reservations,
		reservationInscriptions,
		tx,
		nil,
		logger.Discard(),
	)

	notifier := &recordingNotifier{}
	return &env{
		svc: NewService(
			coordinator,
			events,
			eventRepo.NewInscriptionRepository(db),
			reservations,
			spaces,
			tx,
			notifier,
			staff,
			logger.Discard(),
		),
		reservations: reservationsService.NewService(
			coordinator,
			reservations,
			reservationInscriptions,
			events,
			tx,
			nil,
			staff,
			logger.Discard(),
		),
		coordinator: coordinator,
		notifier:    notifier,
		spaceID:     storagetest.InsertSpace(t, db, "Court 1", true),
		// площадка только под события
		hallID: storagetest.InsertSpace(t, db, "Hall", false),
		count: func(table, where string, args ...interface{}) int {
			return storagetest.Count(t, db, table, where, args...)
		},
	}
}

func (e *env) create(t *testing.T, spaceID int64, startHour, endHour, capacity int) *models.EventResponse {
	t.Helper()
	resp, err := e.svc.Create(context.Background(), &models.CreateEventRequest{
		UserID:           1,
		SpaceID:          spaceID,
		Start:            storagetest.At(2026, time.July, 1, startHour, 0),
		End:              storagetest.At(2026, time.July, 1, endHour, 0),
		Name:             "Open tournament",
		MemberPrice:      5,
		OutsiderPrice:    12.5,
		Capacity:         capacity,
		OutsidersAllowed: true,
	})
	require.NoError(t, err)
	return resp
}

func TestService_Create(t *testing.T) {
	e := newEnv(t)

	resp := e.create(t, e.hallID, 18, 20, 10)

	assert.NotZero(t, resp.ID)
	assert.NotZero(t, resp.ReservationID)
	assert.Equal(t, e.hallID, resp.SpaceID)
	assert.Equal(t, "2026-07-01", resp.Date)
	assert.Equal(t, "18:00", resp.StartHour)
	assert.Equal(t, "20:00", resp.EndHour)
	assert.Equal(t, 0, resp.RegisterCount)
	assert.Empty(t, resp.Warnings)

	assert.Equal(t, 1, e.count("slots", "reservation_id = $1", resp.ReservationID))
	require.Len(t, e.notifier.sent, 1)
	assert.Equal(t, notifications.EventCreated, e.notifier.sent[0].Type)
}

func TestService_Create_Validation(t *testing.T) {
	e := newEnv(t)

	tests := []struct {
		name string
		req  models.CreateEventRequest
	}{
		{name: "zero capacity", req: models.CreateEventRequest{Name: "x", Capacity: 0}},
		{name: "negative member price", req: models.CreateEventRequest{Name: "x", Capacity: 1, MemberPrice: -1}},
		{name: "negative outsider price", req: models.CreateEventRequest{Name: "x", Capacity: 1, OutsiderPrice: -1}},
		{name: "blank name", req: models.CreateEventRequest{Name: "  ", Capacity: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.SpaceID = e.spaceID
			req.Start = storagetest.At(2026, time.July, 1, 10, 0)
			req.End = storagetest.At(2026, time.July, 1, 11, 0)

			_, err := e.svc.Create(context.Background(), &req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	assert.Equal(t, 0, e.count("events", ""))
}

func TestService_Create_Conflict(t *testing.T) {
	e := newEnv(t)
	e.create(t, e.spaceID, 18, 20, 10)

	_, err := e.svc.Create(context.Background(), &models.CreateEventRequest{
		SpaceID:  e.spaceID,
		Start:    storagetest.At(2026, time.July, 1, 19, 0),
		End:      storagetest.At(2026, time.July, 1, 21, 0),
		Name:     "Late session",
		Capacity: 4,
	})

	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "18:00 - 20:00", conflict.Window())
	assert.Equal(t, 1, e.count("events", ""))
	assert.Equal(t, 1, e.count("reservations", ""))
}

func TestService_GetByID(t *testing.T) {
	e := newEnv(t)
	created := e.create(t, e.hallID, 18, 20, 10)

	got, err := e.svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.OutsidersAllowed)

	_, err = e.svc.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestService_Inscribe(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ev := e.create(t, e.hallID, 18, 20, 2)

	member, err := e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 10})
	require.NoError(t, err)
	assert.Equal(t, 5.0, member.Price)

	outsider, err := e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 11, IsOutsider: true})
	require.NoError(t, err)
	assert.Equal(t, 12.5, outsider.Price)

	_, err = e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 12})
	assert.ErrorIs(t, err, ErrEventFull)

	got, err := e.svc.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.RegisterCount)
}

func TestService_Inscribe_Rules(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ev := e.create(t, e.hallID, 18, 20, 5)

	_, err := e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 10})
	require.NoError(t, err)

	_, err = e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 10})
	assert.ErrorIs(t, err, ErrAlreadyInscribed)

	_, err = e.svc.Inscribe(ctx, 999, &models.InscribeRequest{MemberID: 10})
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 0})
	assert.ErrorIs(t, err, domain.ErrValidation)

	got, err := e.svc.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.RegisterCount, "rejected duplicate must not leak a seat")
}

func TestService_Inscribe_OutsidersNotAllowed(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	ev, err := e.svc.Create(ctx, &models.CreateEventRequest{
		SpaceID:  e.hallID,
		Start:    storagetest.At(2026, time.July, 1, 18, 0),
		End:      storagetest.At(2026, time.July, 1, 20, 0),
		Name:     "Members night",
		Capacity: 5,
	})
	require.NoError(t, err)

	_, err = e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 10, IsOutsider: true})
	assert.ErrorIs(t, err, ErrOutsidersNotAllowed)
}

func TestService_CancelInscription(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ev := e.create(t, e.hallID, 18, 20, 1)

	ins, err := e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 10})
	require.NoError(t, err)

	_, err = e.svc.CancelInscription(ctx, ev.ID+1, ins.ID)
	assert.ErrorIs(t, err, ErrInscriptionNotFound)

	result, err := e.svc.CancelInscription(ctx, ev.ID, ins.ID)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	result, err = e.svc.CancelInscription(ctx, ev.ID, ins.ID)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	got, err := e.svc.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.RegisterCount)

	// место освободилось
	_, err = e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 11})
	assert.NoError(t, err)
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ev := e.create(t, e.hallID, 18, 20, 3)

	t.Run("move to another space", func(t *testing.T) {
		resp, err := e.svc.Update(ctx, ev.ID, &models.UpdateEventRequest{
			UserID:        1,
			SpaceID:       e.spaceID,
			Start:         storagetest.At(2026, time.July, 1, 9, 0),
			End:           storagetest.At(2026, time.July, 1, 10, 30),
			Name:          "Morning tournament",
			MemberPrice:   6,
			OutsiderPrice: 15,
			Capacity:      3,
		})
		require.NoError(t, err)

		assert.Equal(t, e.spaceID, resp.SpaceID)
		assert.Equal(t, "09:00", resp.StartHour)
		assert.Equal(t, "10:30", resp.EndHour)
		assert.Equal(t, "Morning tournament", resp.Name)
		assert.Equal(t, 0, e.count("slots", "space_id = $1", e.hallID))
		assert.Equal(t, 1, e.count("slots", "space_id = $1 AND reservation_id = $2", e.spaceID, ev.ReservationID))
	})

	t.Run("capacity below registered", func(t *testing.T) {
		for _, member := range []int64{20, 21} {
			_, err := e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: member})
			require.NoError(t, err)
		}

		_, err := e.svc.Update(ctx, ev.ID, &models.UpdateEventRequest{
			UserID:   1,
			SpaceID:  e.spaceID,
			Start:    storagetest.At(2026, time.July, 1, 9, 0),
			End:      storagetest.At(2026, time.July, 1, 10, 30),
			Name:     "Morning tournament",
			Capacity: 1,
		})
		assert.ErrorIs(t, err, ErrCapacityBelowRegistered)

		got, err := e.svc.GetByID(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, got.Capacity)
	})

	t.Run("conflict keeps the old interval", func(t *testing.T) {
		other := e.create(t, e.spaceID, 12, 14, 2)

		_, err := e.svc.Update(ctx, ev.ID, &models.UpdateEventRequest{
			UserID:   1,
			SpaceID:  e.spaceID,
			Start:    storagetest.At(2026, time.July, 1, 13, 0),
			End:      storagetest.At(2026, time.July, 1, 15, 0),
			Name:     "Morning tournament",
			Capacity: 3,
		})
		var conflict *domain.ConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "12:00 - 14:00", conflict.Window())

		got, err := e.svc.GetByID(ctx, ev.ID)
		require.NoError(t, err)
		assert.Equal(t, "09:00", got.StartHour)
		assert.NotEqual(t, other.ID, got.ID)
	})
}

func TestService_Cancel(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ev := e.create(t, e.hallID, 18, 20, 5)

	for _, member := range []int64{10, 11} {
		_, err := e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: member})
		require.NoError(t, err)
	}

	result, err := e.svc.Cancel(ctx, ev.ID, 1)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	got, err := e.svc.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCancelled)
	assert.Equal(t, 0, got.RegisterCount)

	assert.Equal(t, 0, e.count("slots", "reservation_id = $1", ev.ReservationID))
	assert.Equal(t, 1, e.count("reservations", "id = $1 AND is_cancelled = $2", ev.ReservationID, true))
	assert.Equal(t, 0, e.count("event_inscriptions", "event_id = $1 AND is_cancelled = $2", ev.ID, false))

	// площадка снова свободна
	e.create(t, e.hallID, 18, 20, 5)

	t.Run("idempotent", func(t *testing.T) {
		e.notifier.sent = nil
		result, err := e.svc.Cancel(ctx, ev.ID, 1)
		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.Empty(t, e.notifier.sent)
	})

	t.Run("inscription to cancelled event", func(t *testing.T) {
		_, err := e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 30})
		assert.ErrorIs(t, err, ErrEventCancelled)
	})

	t.Run("unknown event", func(t *testing.T) {
		_, err := e.svc.Cancel(ctx, 999, 1)
		assert.ErrorIs(t, err, ErrEventNotFound)
	})
}

func TestService_NotificationFailureIsWarning(t *testing.T) {
	e := newEnv(t)
	e.notifier.err = errors.New("broker down")

	resp := e.create(t, e.hallID, 18, 20, 5)

	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], string(notifications.EventCreated))
	assert.Equal(t, 1, e.count("events", ""))
}

func TestService_OnlyOwnerOrStaffManages(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ev := e.create(t, e.hallID, 18, 20, 5)

	_, err := e.svc.Update(ctx, ev.ID, &models.UpdateEventRequest{
		UserID:   8,
		SpaceID:  e.hallID,
		Start:    storagetest.At(2026, time.July, 1, 19, 0),
		End:      storagetest.At(2026, time.July, 1, 21, 0),
		Name:     "Hijacked",
		Capacity: 5,
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.svc.Cancel(ctx, ev.ID, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	got, err := e.svc.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.False(t, got.IsCancelled)
	assert.Equal(t, "18:00", got.StartHour)
	assert.Equal(t, "Open tournament", got.Name)

	result, err := e.svc.Cancel(ctx, ev.ID, staffUserID)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	_, err = e.svc.Cancel(ctx, ev.ID, 8)
	assert.ErrorIs(t, err, ErrAccessDenied, "cancelled event still belongs to its author")
}

func TestService_ReservationOfEventStaysWithEvent(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ev := e.create(t, e.hallID, 18, 20, 5)

	_, err := e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 10})
	require.NoError(t, err)

	_, err = e.reservations.Cancel(ctx, ev.ReservationID, 1)
	assert.ErrorIs(t, err, reservationsService.ErrEventReservation)

	_, err = e.reservations.Update(ctx, ev.ReservationID, &reservationModels.UpdateReservationRequest{
		UserID:   1,
		SpaceID:  e.hallID,
		Start:    storagetest.At(2026, time.July, 1, 8, 0),
		End:      storagetest.At(2026, time.July, 1, 9, 0),
		Name:     "Moved",
		Capacity: 5,
	})
	assert.ErrorIs(t, err, reservationsService.ErrEventReservation)

	got, err := e.svc.GetByID(ctx, ev.ID)
	require.NoError(t, err)
	assert.False(t, got.IsCancelled)
	assert.Equal(t, "18:00", got.StartHour)
	assert.Equal(t, 1, got.RegisterCount)
	assert.Equal(t, 1, e.count("slots", "reservation_id = $1", ev.ReservationID))

	// Окно события остается занятым
	_, err = e.coordinator.Book(ctx, booking.Request{
		SpaceID:   e.hallID,
		Start:     storagetest.At(2026, time.July, 1, 18, 0),
		End:       storagetest.At(2026, time.July, 1, 20, 0),
		Name:      "Rehearsal",
		Capacity:  2,
		CreatedBy: 8,
		Flow:      booking.FlowEvent,
	}, nil)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 11})
	require.NoError(t, err)
}

func TestService_Inscribe_ReleasedOccupancy(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	ev := e.create(t, e.hallID, 18, 20, 5)

	// Координатор не знает о событиях: освобождение в обход сервиса событий
	released, err := e.coordinator.ReleaseReservation(ctx, ev.ReservationID)
	require.NoError(t, err)
	require.True(t, released)

	_, err = e.svc.Inscribe(ctx, ev.ID, &models.InscribeRequest{MemberID: 10})
	assert.ErrorIs(t, err, ErrEventCancelled)
	assert.Equal(t, 0, e.count("event_inscriptions", "event_id = $1", ev.ID))
}
