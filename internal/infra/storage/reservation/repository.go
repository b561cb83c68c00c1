package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"space_id",
	"day",
	"start_at",
	"end_at",
	"capacity",
	"outsiders_allowed",
	"special",
	"created_by",
	"is_cancelled",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований площадок и записей участников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование.
// Вызывается координатором внутри транзакции сразу после вставки слота
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"name",
			"space_id",
			"day",
			"start_at",
			"end_at",
			"capacity",
			"outsiders_allowed",
			"special",
			"created_by",
			"is_cancelled",
			"created_at",
			"updated_at",
		).
		Values(
			res.Name,
			res.SpaceID,
			res.Day,
			res.StartAt,
			res.EndAt,
			res.Capacity,
			res.OutsidersAllowed,
			res.Special,
			res.CreatedBy,
			false,
			now,
			now,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&res.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	res.CreatedAt = now
	res.UpdatedAt = now
	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %w", ErrScanRow, err)
	}
	return res, nil
}

// List бронирования площадки, опционально за конкретный день
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"space_id": filter.SpaceID}).
		OrderBy("start_at ASC")

	if filter.Day != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.GtOrEq{"day": *filter.Day}).
			Where(squirrel.Lt{"day": filter.Day.AddDate(0, 0, 1)})
	}
	if !filter.IncludeCanceled {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_cancelled": false})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return reservations, nil
}

// Update обновляет поля и координаты бронирования
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Update("reservations").
		Set("name", res.Name).
		Set("space_id", res.SpaceID).
		Set("day", res.Day).
		Set("start_at", res.StartAt).
		Set("end_at", res.EndAt).
		Set("capacity", res.Capacity).
		Set("outsiders_allowed", res.OutsidersAllowed).
		Set("special", res.Special).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return nil, ErrReservationNotFound
	}

	res.UpdatedAt = now
	return res, nil
}

// Cancel логически отменяет бронирование. Возвращает false, если оно уже отменено
func (r *Repository) Cancel(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Update("reservations").
		Set("is_cancelled", true).
		Set("cancelled_at", now).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_cancelled": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - get rows affected: %w", ErrExecQuery, err)
	}
	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var cancelledAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.SpaceID,
		&res.Day,
		&res.StartAt,
		&res.EndAt,
		&res.Capacity,
		&res.OutsidersAllowed,
		&res.Special,
		&res.CreatedBy,
		&res.IsCancelled,
		&cancelledAt,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.Day = res.Day.UTC()
	res.StartAt = res.StartAt.UTC()
	res.EndAt = res.EndAt.UTC()
	res.CreatedAt = res.CreatedAt.UTC()
	res.UpdatedAt = res.UpdatedAt.UTC()
	if cancelledAt.Valid {
		t := cancelledAt.Time.UTC()
		res.CancelledAt = &t
	}
	return &res, nil
}
