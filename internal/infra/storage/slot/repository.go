package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/dberrors"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"space_id",
	"day",
	"start_at",
	"end_at",
	"occupied",
	"price",
	"reservation_id",
	"course_id",
	"created_at",
	"updated_at",
}

// Repository слотовый реестр: единственный источник истины о занятости площадок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет слот. Нарушение уникальности/исключения возвращается как ErrSlotTaken
func (r *Repository) Create(ctx context.Context, slot *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Insert("slots").
		Columns("space_id", "day", "start_at", "end_at", "occupied", "price", "reservation_id", "course_id", "created_at", "updated_at").
		Values(slot.SpaceID, slot.Day, slot.StartAt, slot.EndAt, slot.Occupied, slot.Price, slot.ReservationID, slot.CourseID, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&slot.ID); err != nil {
		if dberrors.IsConflict(err) {
			return nil, fmt.Errorf("%w: Create - space=%d %s: %v", ErrSlotTaken, slot.SpaceID, slot.Interval().Window(), err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	slot.CreatedAt = now
	slot.UpdatedAt = now
	return slot, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByReservationID получает слот, принадлежащий бронированию
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Slot, error) {
	return r.getOne(ctx, "GetByReservationID", squirrel.Eq{"reservation_id": reservationID})
}

// FindPublished ищет опубликованное окно курса по координатам (площадка, день, начало, конец)
func (r *Repository) FindPublished(ctx context.Context, courseID int64, key domain.SlotKey) (*domain.Slot, error) {
	return r.getOne(ctx, "FindPublished", squirrel.Eq{
		"course_id": courseID,
		"space_id":  key.SpaceID,
		"day":       key.Day,
		"start_at":  key.Start,
		"end_at":    key.End,
	})
}

// FindOverlapping детектор пересечений: занятые слоты площадки за день интервала,
// для которых existing.start < query.end AND existing.end > query.start.
// excludeID > 0 исключает слот из проверки (переводимое окно курса)
func (r *Repository) FindOverlapping(ctx context.Context, spaceID int64, iv domain.Interval, excludeID int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	day := iv.Day()
	selectBuilder := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{"space_id": spaceID}).
		Where(squirrel.Eq{"occupied": true}).
		Where(squirrel.GtOrEq{"day": day}).
		Where(squirrel.Lt{"day": day.AddDate(0, 0, 1)}).
		Where(squirrel.Lt{"start_at": iv.End}).
		Where(squirrel.Gt{"end_at": iv.Start}).
		OrderBy("start_at ASC")

	if excludeID > 0 {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": excludeID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "FindOverlapping", query, args)
}

// ListByDay все слоты площадки за день (занятые и опубликованные), по времени начала
func (r *Repository) ListByDay(ctx context.Context, spaceID int64, day time.Time) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{"space_id": spaceID}).
		Where(squirrel.GtOrEq{"day": day}).
		Where(squirrel.Lt{"day": day.AddDate(0, 0, 1)}).
		OrderBy("start_at ASC", "occupied DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDay - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListByDay", query, args)
}

// ListByCourse опубликованные окна курса
func (r *Repository) ListByCourse(ctx context.Context, courseID int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("slots").
		Where(squirrel.Eq{"course_id": courseID}).
		OrderBy("start_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourse - build select query: %v", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "ListByCourse", query, args)
}

// Occupy переводит свободное окно в занятое. Уже занятое окно - ErrSlotTaken
func (r *Repository) Occupy(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("occupied", true).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"occupied": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Occupy - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if dberrors.IsConflict(err) {
			return fmt.Errorf("%w: Occupy - slot=%d: %v", ErrSlotTaken, id, err)
		}
		return fmt.Errorf("%w: Occupy - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Occupy - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: Occupy - slot=%d is not free", ErrSlotTaken, id)
	}
	return nil
}

// Free возвращает опубликованное окно в свободное состояние.
// Возвращает false, если окно уже свободно
func (r *Repository) Free(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("occupied", false).
		Set("reservation_id", nil).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"occupied": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Free - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Free - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Free - get rows affected: %w", ErrExecQuery, err)
	}
	return rowsAffected > 0, nil
}

// LinkReservation проставляет владеющее бронирование слоту
func (r *Repository) LinkReservation(ctx context.Context, slotID, reservationID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("reservation_id", reservationID).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": slotID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LinkReservation - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: LinkReservation - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: LinkReservation - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

// Delete физически удаляет слот (освобождение разового бронирования)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrSlotNotFound
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("slots").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %w", ErrScanRow, op, err)
	}
	return slot, nil
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]*domain.Slot, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return slots, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	err := row.Scan(
		&slot.ID,
		&slot.SpaceID,
		&slot.Day,
		&slot.StartAt,
		&slot.EndAt,
		&slot.Occupied,
		&slot.Price,
		&slot.ReservationID,
		&slot.CourseID,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.Day = slot.Day.UTC()
	slot.StartAt = slot.StartAt.UTC()
	slot.EndAt = slot.EndAt.UTC()
	slot.CreatedAt = slot.CreatedAt.UTC()
	slot.UpdatedAt = slot.UpdatedAt.UTC()
	return &slot, nil
}
