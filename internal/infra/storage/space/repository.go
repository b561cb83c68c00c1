package space

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
	"capacity",
	"cost_per_hour",
	"is_reservable",
	"is_available",
	"category",
	"created_at",
	"updated_at",
}

// Repository репозиторий площадок клуба
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория площадок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает площадку
func (r *Repository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Insert("spaces").
		Columns("name", "capacity", "cost_per_hour", "is_reservable", "is_available", "category", "created_at", "updated_at").
		Values(space.Name, space.Capacity, space.CostPerHour, space.IsReservable, space.IsAvailable, space.Category, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&space.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	space.CreatedAt = now
	space.UpdatedAt = now
	return space, nil
}

// GetByID получает площадку по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	space, err := scanSpace(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %w", ErrScanRow, err)
	}
	return space, nil
}

// LockForBooking блокирует строку площадки до конца транзакции и возвращает её.
// UPDATE без изменения данных берет row lock в PostgreSQL и write lock в SQLite,
// так что проверки пересечений по одной площадке выполняются строго по очереди
func (r *Repository) LockForBooking(ctx context.Context, id int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("updated_at", squirrel.Expr("updated_at")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, name, capacity, cost_per_hour, is_reservable, is_available, category, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: LockForBooking - build update query: %v", ErrBuildQuery, err)
	}

	space, err := scanSpace(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: LockForBooking - lock space: %w", ErrExecQuery, err)
	}
	return space, nil
}

// List возвращает площадки с фильтрацией по категории и доступности
func (r *Repository) List(ctx context.Context, filter domain.SpaceFilter) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("spaces").
		OrderBy("name ASC, id ASC")

	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *filter.Category})
	}
	if filter.Available != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": *filter.Available})
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

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		space, err := scanSpace(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %w", ErrScanRow, err)
		}
		spaces = append(spaces, space)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %w", ErrScanRow, err)
	}

	return spaces, nil
}

// Update обновляет метаданные площадки
func (r *Repository) Update(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Update("spaces").
		Set("name", space.Name).
		Set("capacity", space.Capacity).
		Set("cost_per_hour", space.CostPerHour).
		Set("is_reservable", space.IsReservable).
		Set("is_available", space.IsAvailable).
		Set("category", space.Category).
		Set("updated_at", now).
		Where(squirrel.Eq{"id": space.ID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if err := checkAffected(executor.ExecContext(ctx, query, args...)); err != nil {
		if errors.Is(err, ErrSpaceNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Update - execute update: %w", ErrExecQuery, err)
	}

	space.UpdatedAt = now
	return space, nil
}

// SoftDelete помечает площадку недоступной. Исторические слоты и бронирования сохраняются
func (r *Repository) SoftDelete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("is_available", false).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	if err := checkAffected(executor.ExecContext(ctx, query, args...)); err != nil {
		if errors.Is(err, ErrSpaceNotFound) {
			return err
		}
		return fmt.Errorf("%w: SoftDelete - execute update: %w", ErrExecQuery, err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpace(row rowScanner) (*domain.Space, error) {
	var space domain.Space
	err := row.Scan(
		&space.ID,
		&space.Name,
		&space.Capacity,
		&space.CostPerHour,
		&space.IsReservable,
		&space.IsAvailable,
		&space.Category,
		&space.CreatedAt,
		&space.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	space.CreatedAt = space.CreatedAt.UTC()
	space.UpdatedAt = space.UpdatedAt.UTC()
	return &space, nil
}

func checkAffected(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}
	return nil
}
