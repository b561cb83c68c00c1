package event

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
	"reservation_id",
	"name",
	"description",
	"day",
	"start_at",
	"end_at",
	"member_price",
	"outsider_price",
	"capacity",
	"register_count",
	"is_cancelled",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий событий
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория событий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает событие поверх уже созданного бронирования
func (r *Repository) Create(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Insert("events").
		Columns(
			"reservation_id",
			"name",
			"description",
			"day",
			"start_at",
			"end_at",
			"member_price",
			"outsider_price",
			"capacity",
			"register_count",
			"is_cancelled",
			"created_at",
			"updated_at",
		).
		Values(
			ev.ReservationID,
			ev.Name,
			ev.Description,
			ev.Day,
			ev.StartAt,
			ev.EndAt,
			ev.MemberPrice,
			ev.OutsiderPrice,
			ev.Capacity,
			0,
			false,
			now,
			now,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&ev.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	ev.RegisterCount = 0
	ev.CreatedAt = now
	ev.UpdatedAt = now
	return ev, nil
}

// GetByID получает событие по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	ev, err := scanEvent(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan event: %w", ErrScanRow, err)
	}
	return ev, nil
}

// GetByReservationID получает событие, которому принадлежит бронирование
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("events").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	ev, err := scanEvent(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan event: %w", ErrScanRow, err)
	}
	return ev, nil
}

// Update обновляет поля события и его координаты
func (r *Repository) Update(ctx context.Context, ev *domain.Event) (*domain.Event, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Update("events").
		Set("name", ev.Name).
		Set("description", ev.Description).
		Set("day", ev.Day).
		Set("start_at", ev.StartAt).
		Set("end_at", ev.EndAt).
		Set("member_price", ev.MemberPrice).
		Set("outsider_price", ev.OutsiderPrice).
		Set("capacity", ev.Capacity).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": ev.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if err := r.execOne(ctx, executor, "Update", query, args); err != nil {
		return nil, err
	}

	ev.UpdatedAt = now
	return ev, nil
}

// IncrementRegistered атомарно увеличивает register_count, если есть свободные места
func (r *Repository) IncrementRegistered(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("events").
		Set("register_count", squirrel.Expr("register_count + 1")).
		Where(squirrel.Eq{"id": id}).
		Where("register_count < capacity").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementRegistered - build update query: %v", ErrBuildQuery, err)
	}

	err = r.execOne(ctx, executor, "IncrementRegistered", query, args)
	if errors.Is(err, ErrEventNotFound) {
		return ErrEventFull
	}
	return err
}

// DecrementRegistered атомарно уменьшает register_count, не опуская его ниже нуля
func (r *Repository) DecrementRegistered(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("events").
		Set("register_count", squirrel.Expr("register_count - 1")).
		Where(squirrel.Eq{"id": id}).
		Where("register_count > 0").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementRegistered - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "DecrementRegistered", query, args)
}

// Cancel отменяет событие и обнуляет счетчик записей. false - уже отменено
func (r *Repository) Cancel(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Update("events").
		Set("is_cancelled", true).
		Set("cancelled_at", now).
		Set("register_count", 0).
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

func (r *Repository) execOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %w", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	var ev domain.Event
	var description sql.NullString
	var cancelledAt sql.NullTime

	err := row.Scan(
		&ev.ID,
		&ev.ReservationID,
		&ev.Name,
		&description,
		&ev.Day,
		&ev.StartAt,
		&ev.EndAt,
		&ev.MemberPrice,
		&ev.OutsiderPrice,
		&ev.Capacity,
		&ev.RegisterCount,
		&ev.IsCancelled,
		&cancelledAt,
		&ev.CreatedAt,
		&ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		ev.Description = &description.String
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time.UTC()
		ev.CancelledAt = &t
	}
	ev.Day = ev.Day.UTC()
	ev.StartAt = ev.StartAt.UTC()
	ev.EndAt = ev.EndAt.UTC()
	ev.CreatedAt = ev.CreatedAt.UTC()
	ev.UpdatedAt = ev.UpdatedAt.UTC()
	return &ev, nil
}
