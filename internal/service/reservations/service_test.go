package reservations

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
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
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

// staffUserID сотрудник клуба в тестовом окружении
const staffUserID = 1

type env struct {
	svc      *Service
	events   *eventRepo.Repository
	notifier *recordingNotifier
	spaceID  int64
	count    func(table, where string, args ...interface{}) int
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := storagetest.NewDB(t)
	tx := storagetest.NewTxManager(db)
	reservations := reservationRepo.NewRepository(db)
	inscriptions := reservationRepo.NewInscriptionRepository(db)
	events := eventRepo.NewRepository(db)

	coordinator := booking.NewCoordinator(
		spaceRepo.NewRepository(db),
		slotRepo.NewRepository(db),
		reservations,
		inscriptions,
		tx,
		nil,
		logger.Discard(),
	)

	notifier := &recordingNotifier{}
	return &env{
		svc: NewService(coordinator, reservations, inscriptions, events, tx, notifier,
			domain.NewStaff(staffUserID), logger.Discard()),
		events:   events,
		notifier: notifier,
		spaceID:  storagetest.InsertSpace(t, db, "Court 1", true),
		count: func(table, where string, args ...interface{}) int {
			return storagetest.Count(t, db, table, where, args...)
		},
	}
}

func (e *env) create(t *testing.T, startHour, endHour int) *models.ReservationResponse {
	t.Helper()
	resp, err := e.svc.Create(context.Background(), &models.CreateReservationRequest{
		UserID:   7,
		SpaceID:  e.spaceID,
		Start:    storagetest.At(2026, time.July, 1, startHour, 0),
		End:      storagetest.At(2026, time.July, 1, endHour, 0),
		Name:     "Doubles",
		Capacity: 2,
	})
	require.NoError(t, err)
	return resp
}

func TestService_CreateGetList(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	created := e.create(t, 10, 11)
	assert.Equal(t, "2026-07-01", created.Date)
	assert.Equal(t, "10:00", created.StartHour)
	assert.Equal(t, "11:00", created.EndHour)
	require.NotNil(t, created.Price)
	assert.Equal(t, 20.0, *created.Price)
	assert.Empty(t, created.Warnings)
	require.Len(t, e.notifier.sent, 1)
	assert.Equal(t, notifications.ReservationCreated, e.notifier.sent[0].Type)

	got, err := e.svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doubles", got.Name)
	assert.Empty(t, got.Inscriptions)

	day := storagetest.Day(2026, time.July, 1)
	list, err := e.svc.List(ctx, &models.ListReservationsRequest{SpaceID: e.spaceID, Date: &day})
	require.NoError(t, err)
	assert.Len(t, list.Reservations, 1)

	_, err = e.svc.GetByID(ctx, 404)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_S1ConflictCancelRetry(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	first := e.create(t, 10, 11)

	conflicting := &models.CreateReservationRequest{
		UserID:   8,
		SpaceID:  e.spaceID,
		Start:    storagetest.At(2026, time.July, 1, 10, 30),
		End:      storagetest.At(2026, time.July, 1, 11, 30),
		Name:     "Singles",
		Capacity: 2,
	}
	_, err := e.svc.Create(ctx, conflicting)
	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "10:00 - 11:00", conflict.Window())

	result, err := e.svc.Cancel(ctx, first.ID, 7)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	_, err = e.svc.Create(ctx, conflicting)
	require.NoError(t, err)
}

func TestService_NotificationFailureIsWarning(t *testing.T) {
	e := newEnv(t)
	e.notifier.err = errors.New("broker unavailable")

	created := e.create(t, 10, 11)
	require.Len(t, created.Warnings, 1)
	assert.Contains(t, created.Warnings[0], "reservation.created")
	assert.Equal(t, 1, e.count("reservations", ""), "reservation committed despite notification failure")
}

func TestService_Update(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	moving := e.create(t, 10, 11)
	e.create(t, 12, 13)

	updated, err := e.svc.Update(ctx, moving.ID, &models.UpdateReservationRequest{
		UserID: 7, SpaceID: e.spaceID,
		Start: storagetest.At(2026, time.July, 1, 11, 0), End: storagetest.At(2026, time.July, 1, 12, 0),
		Name: "Moved", Capacity: 3, OutsidersAllowed: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "11:00", updated.StartHour)
	assert.Equal(t, "Moved", updated.Name)
	assert.True(t, updated.OutsidersAllowed)

	_, err = e.svc.Update(ctx, moving.ID, &models.UpdateReservationRequest{
		UserID: 7, SpaceID: e.spaceID,
		Start: storagetest.At(2026, time.July, 1, 12, 30), End: storagetest.At(2026, time.July, 1, 13, 30),
		Name: "Moved", Capacity: 3,
	})
	assert.ErrorIs(t, err, domain.ErrConflict)

	got, err := e.svc.GetByID(ctx, moving.ID)
	require.NoError(t, err)
	assert.Equal(t, "11:00", got.StartHour, "conflicting edit keeps the previous interval")

	_, err = e.svc.Inscribe(ctx, moving.ID, &models.InscribeRequest{MemberID: 1})
	require.NoError(t, err)
	_, err = e.svc.Inscribe(ctx, moving.ID, &models.InscribeRequest{MemberID: 2})
	require.NoError(t, err)

	_, err = e.svc.Update(ctx, moving.ID, &models.UpdateReservationRequest{
		UserID: 7, SpaceID: e.spaceID,
		Start: storagetest.At(2026, time.July, 1, 11, 0), End: storagetest.At(2026, time.July, 1, 12, 0),
		Name: "Moved", Capacity: 1,
	})
	assert.ErrorIs(t, err, ErrCapacityBelowInscriptions)
}

func TestService_Inscriptions(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res := e.create(t, 10, 11)

	first, err := e.svc.Inscribe(ctx, res.ID, &models.InscribeRequest{MemberID: 1})
	require.NoError(t, err)

	_, err = e.svc.Inscribe(ctx, res.ID, &models.InscribeRequest{MemberID: 1})
	assert.ErrorIs(t, err, ErrAlreadyInscribed)

	_, err = e.svc.Inscribe(ctx, res.ID, &models.InscribeRequest{MemberID: 2, IsOutsider: true})
	assert.ErrorIs(t, err, ErrOutsidersNotAllowed)

	_, err = e.svc.Inscribe(ctx, res.ID, &models.InscribeRequest{MemberID: 2})
	require.NoError(t, err)

	_, err = e.svc.Inscribe(ctx, res.ID, &models.InscribeRequest{MemberID: 3})
	assert.ErrorIs(t, err, ErrReservationFull)

	_, err = e.svc.CancelInscription(ctx, res.ID+1, first.ID)
	assert.ErrorIs(t, err, ErrInscriptionNotFound)

	result, err := e.svc.CancelInscription(ctx, res.ID, first.ID)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	result, err = e.svc.CancelInscription(ctx, res.ID, first.ID)
	require.NoError(t, err)
	assert.False(t, result.Changed)

	_, err = e.svc.Inscribe(ctx, res.ID, &models.InscribeRequest{MemberID: 3})
	require.NoError(t, err, "freed place is available again")

	// Отмена бронирования отменяет все записи
	_, err = e.svc.Cancel(ctx, res.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, e.count("reservation_inscriptions", "is_cancelled = $1", false))

	_, err = e.svc.Inscribe(ctx, res.ID, &models.InscribeRequest{MemberID: 4})
	assert.ErrorIs(t, err, ErrReservationCancelled)

	again, err := e.svc.Cancel(ctx, res.ID, 7)
	require.NoError(t, err)
	assert.False(t, again.Changed, "release is idempotent")
}

func TestService_OnlyOwnerOrStaffManages(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res := e.create(t, 10, 11)
	edit := &models.UpdateReservationRequest{
		UserID: 8, SpaceID: e.spaceID,
		Start: storagetest.At(2026, time.July, 1, 12, 0), End: storagetest.At(2026, time.July, 1, 13, 0),
		Name: "Taken over", Capacity: 2,
	}

	_, err := e.svc.Update(ctx, res.ID, edit)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = e.svc.Cancel(ctx, res.ID, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	got, err := e.svc.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:00", got.StartHour)
	assert.False(t, got.IsCancelled)

	edit.UserID = staffUserID
	updated, err := e.svc.Update(ctx, res.ID, edit)
	require.NoError(t, err)
	assert.Equal(t, "12:00", updated.StartHour)

	result, err := e.svc.Cancel(ctx, res.ID, staffUserID)
	require.NoError(t, err)
	assert.True(t, result.Changed)

	_, err = e.svc.Cancel(ctx, 404, 7)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestService_SpecialIsStaffOnly(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	req := &models.CreateReservationRequest{
		UserID:   7,
		SpaceID:  e.spaceID,
		Start:    storagetest.At(2026, time.July, 1, 10, 0),
		End:      storagetest.At(2026, time.July, 1, 11, 0),
		Name:     "Guests",
		Capacity: 2,
		Special:  true,
	}

	_, err := e.svc.Create(ctx, req)
	assert.ErrorIs(t, err, ErrSpecialNotAllowed)
	assert.Equal(t, 0, e.count("reservations", ""))

	req.UserID = staffUserID
	created, err := e.svc.Create(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, created.Price)
	assert.Zero(t, *created.Price)
}

func TestService_EventReservationIsManagedByEvent(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	res := e.create(t, 18, 20)
	_, err := e.events.Create(ctx, &domain.Event{
		ReservationID: res.ID,
		Name:          "Quiz night",
		Day:           storagetest.Day(2026, time.July, 1),
		StartAt:       storagetest.At(2026, time.July, 1, 18, 0),
		EndAt:         storagetest.At(2026, time.July, 1, 20, 0),
		Capacity:      2,
	})
	require.NoError(t, err)

	_, err = e.svc.Cancel(ctx, res.ID, 7)
	assert.ErrorIs(t, err, ErrEventReservation)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = e.svc.Update(ctx, res.ID, &models.UpdateReservationRequest{
		UserID: 7, SpaceID: e.spaceID,
		Start: storagetest.At(2026, time.July, 1, 10, 0), End: storagetest.At(2026, time.July, 1, 11, 0),
		Name: "Moved", Capacity: 2,
	})
	assert.ErrorIs(t, err, ErrEventReservation)

	_, err = e.svc.Inscribe(ctx, res.ID, &models.InscribeRequest{MemberID: 3})
	assert.ErrorIs(t, err, ErrEventReservation)

	got, err := e.svc.GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.False(t, got.IsCancelled)
	assert.Equal(t, "18:00", got.StartHour)
	assert.Equal(t, 1, e.count("slots", "reservation_id = $1", res.ID))
}
