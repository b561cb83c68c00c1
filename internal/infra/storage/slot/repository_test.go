package slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/ptr"
)

var day = storagetest.Day(2026, time.July, 1)

func at(hh, mm int) time.Time {
	return storagetest.At(2026, time.July, 1, hh, mm)
}

func occupied(spaceID int64, start, end time.Time) *domain.Slot {
	return &domain.Slot{SpaceID: spaceID, Day: domain.DayOf(start), StartAt: start, EndAt: end, Occupied: true, Price: 20}
}

func TestRepository_FindOverlapping_HalfOpen(t *testing.T) {
	db := storagetest.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	spaceID := storagetest.InsertSpace(t, db, "Court", true)
	otherSpace := storagetest.InsertSpace(t, db, "Court 2", true)

	booked, err := repo.Create(ctx, occupied(spaceID, at(10, 0), at(11, 0)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, occupied(otherSpace, at(10, 0), at(11, 0)))
	require.NoError(t, err)
	_, err = repo.Create(ctx, &domain.Slot{SpaceID: spaceID, Day: day, StartAt: at(12, 0), EndAt: at(13, 0)})
	require.NoError(t, err)

	hits, err := repo.FindOverlapping(ctx, spaceID, domain.Interval{Start: at(10, 30), End: at(11, 30)}, 0)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, booked.ID, hits[0].ID)
	assert.Equal(t, at(10, 0), hits[0].StartAt)
	assert.Equal(t, day, hits[0].Day)

	hits, err = repo.FindOverlapping(ctx, spaceID, domain.Interval{Start: at(11, 0), End: at(12, 0)}, 0)
	require.NoError(t, err)
	assert.Empty(t, hits, "touching boundary is not an overlap")

	hits, err = repo.FindOverlapping(ctx, spaceID, domain.Interval{Start: at(12, 0), End: at(13, 0)}, 0)
	require.NoError(t, err)
	assert.Empty(t, hits, "free published windows do not block")

	hits, err = repo.FindOverlapping(ctx, spaceID, domain.Interval{Start: at(9, 0), End: at(12, 0)}, booked.ID)
	require.NoError(t, err)
	assert.Empty(t, hits, "excluded slot is ignored")
}

func TestRepository_Create_UniqueBackstop(t *testing.T) {
	db := storagetest.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	spaceID := storagetest.InsertSpace(t, db, "Court", true)

	_, err := repo.Create(ctx, occupied(spaceID, at(10, 0), at(11, 0)))
	require.NoError(t, err)

	_, err = repo.Create(ctx, occupied(spaceID, at(10, 0), at(11, 0)))
	require.ErrorIs(t, err, ErrSlotTaken)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRepository_OccupyAndFree(t *testing.T) {
	db := storagetest.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	spaceID := storagetest.InsertSpace(t, db, "Court", true)

	var courseID int64
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO courses (name, space_id, price, is_active, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
		"Tennis", spaceID, 30.0, true, time.Now().UTC(), time.Now().UTC()).Scan(&courseID))

	window, err := repo.Create(ctx, &domain.Slot{SpaceID: spaceID, Day: day, StartAt: at(9, 0), EndAt: at(10, 0), CourseID: ptr.Ptr(courseID), Price: 30})
	require.NoError(t, err)

	found, err := repo.FindPublished(ctx, courseID, domain.SlotKey{SpaceID: spaceID, Day: day, Start: at(9, 0), End: at(10, 0)})
	require.NoError(t, err)
	assert.Equal(t, window.ID, found.ID)
	assert.True(t, found.IsPublished())

	_, err = repo.FindPublished(ctx, courseID, domain.SlotKey{SpaceID: spaceID, Day: day, Start: at(9, 30), End: at(10, 0)})
	assert.ErrorIs(t, err, ErrSlotNotFound)

	require.NoError(t, repo.Occupy(ctx, window.ID))
	assert.ErrorIs(t, repo.Occupy(ctx, window.ID), ErrSlotTaken)

	freed, err := repo.Free(ctx, window.ID)
	require.NoError(t, err)
	assert.True(t, freed)

	freed, err = repo.Free(ctx, window.ID)
	require.NoError(t, err)
	assert.False(t, freed, "second free is a no-op")

	list, err := repo.ListByCourse(ctx, courseID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Occupied)
}

func TestRepository_LinkAndDelete(t *testing.T) {
	db := storagetest.NewDB(t)
	repo := NewRepository(db)
	ctx := context.Background()
	spaceID := storagetest.InsertSpace(t, db, "Court", true)

	slot, err := repo.Create(ctx, occupied(spaceID, at(10, 0), at(11, 0)))
	require.NoError(t, err)

	now := time.Now().UTC()
	var reservationID int64
	require.NoError(t, db.QueryRowContext(ctx,
		`INSERT INTO reservations (name, space_id, day, start_at, end_at, capacity, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
		"Match", spaceID, day, at(10, 0), at(11, 0), 4, now, now).Scan(&reservationID))

	require.NoError(t, repo.LinkReservation(ctx, slot.ID, reservationID))

	owned, err := repo.GetByReservationID(ctx, reservationID)
	require.NoError(t, err)
	assert.Equal(t, slot.ID, owned.ID)
	require.NotNil(t, owned.ReservationID)
	assert.Equal(t, reservationID, *owned.ReservationID)

	byDay, err := repo.ListByDay(ctx, spaceID, day)
	require.NoError(t, err)
	assert.Len(t, byDay, 1)

	require.NoError(t, repo.Delete(ctx, slot.ID))
	assert.ErrorIs(t, repo.Delete(ctx, slot.ID), ErrSlotNotFound)

	_, err = repo.GetByReservationID(ctx, reservationID)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.ErrorIs(t, repo.LinkReservation(ctx, slot.ID, reservationID), ErrSlotNotFound)
}
