// Package inscription общая часть таблиц записей участников
// (reservation_inscriptions, event_inscriptions, course_inscriptions).
package inscription

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

// Record запись участника вместе с владельцем (бронирование, событие или курс)
type Record struct {
	domain.Inscription
	OwnerID int64
	SlotID  *int64 // только для записей на курс
}

// Store операции над одной таблицей записей
type Store struct {
	db       dbmetrics.DBExecutor
	table    string
	owner    string
	withSlot bool
}

// NewStore создает хранилище для таблицы table с колонкой владельца owner
func NewStore(db dbmetrics.DBExecutor, table, owner string, withSlot bool) *Store {
	return &Store{db: db, table: table, owner: owner, withSlot: withSlot}
}

func (s *Store) columns() []string {
	cols := []string{"id", s.owner, "member_id", "is_outsider", "price", "is_cancelled", "cancelled_at", "created_at"}
	if s.withSlot {
		cols = append(cols, "slot_id")
	}
	return cols
}

// Create вставляет запись. Повторная активная запись - ErrAlreadyInscribed
func (s *Store) Create(ctx context.Context, rec *Record) (*Record, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	now := time.Now().UTC()
	insert := psqlbuilder.Insert(s.table).
		Columns(s.owner, "member_id", "is_outsider", "price", "is_cancelled", "created_at")
	values := []interface{}{rec.OwnerID, rec.MemberID, rec.IsOutsider, rec.Price, false, now}
	if s.withSlot {
		insert = insert.Columns("slot_id")
		values = append(values, rec.SlotID)
	}

	query, args, err := insert.Values(values...).Suffix("RETURNING id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create %s - build insert query: %v", ErrBuildQuery, s.table, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rec.ID); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: member=%d %s=%d", ErrAlreadyInscribed, rec.MemberID, s.owner, rec.OwnerID)
		}
		return nil, fmt.Errorf("%w: Create %s - execute insert: %w", ErrExecQuery, s.table, err)
	}

	rec.CreatedAt = now
	rec.IsCancelled = false
	return rec, nil
}

// Get получает запись по ID
func (s *Store) Get(ctx context.Context, id int64) (*Record, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Select(s.columns()...).
		From(s.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get %s - build select query: %v", ErrBuildQuery, s.table, err)
	}

	rec, err := s.scan(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInscriptionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get %s - scan inscription: %w", ErrScanRow, s.table, err)
	}
	return rec, nil
}

// ListByOwner записи владельца, включая отмененные
func (s *Store) ListByOwner(ctx context.Context, ownerID int64) ([]*Record, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Select(s.columns()...).
		From(s.table).
		Where(squirrel.Eq{s.owner: ownerID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner %s - build select query: %v", ErrBuildQuery, s.table, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwner %s - execute query: %w", ErrExecQuery, s.table, err)
	}
	defer rows.Close()

	records := make([]*Record, 0)
	for rows.Next() {
		rec, err := s.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByOwner %s - scan row: %w", ErrScanRow, s.table, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByOwner %s - rows error: %w", ErrScanRow, s.table, err)
	}
	return records, nil
}

// CountActive количество неотмененных записей владельца
func (s *Store) CountActive(ctx context.Context, ownerID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From(s.table).
		Where(squirrel.Eq{s.owner: ownerID}).
		Where(squirrel.Eq{"is_cancelled": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActive %s - build select query: %v", ErrBuildQuery, s.table, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActive %s - scan count: %w", ErrScanRow, s.table, err)
	}
	return count, nil
}

// Cancel логически отменяет запись. Возвращает false, если она уже отменена
func (s *Store) Cancel(ctx context.Context, id int64) (bool, error) {
	return s.cancelWhere(ctx, "Cancel", squirrel.Eq{"id": id})
}

// CancelByOwner каскадно отменяет все активные записи владельца, возвращает их количество
func (s *Store) CancelByOwner(ctx context.Context, ownerID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	now := time.Now().UTC()
	query, args, err := psqlbuilder.Update(s.table).
		Set("is_cancelled", true).
		Set("cancelled_at", now).
		Where(squirrel.Eq{s.owner: ownerID}).
		Where(squirrel.Eq{"is_cancelled": false}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByOwner %s - build update query: %v", ErrBuildQuery, s.table, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByOwner %s - execute update: %w", ErrExecQuery, s.table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelByOwner %s - get rows affected: %w", ErrExecQuery, s.table, err)
	}
	return rowsAffected, nil
}

// CancelBySlot отменяет активную запись на окно курса
func (s *Store) CancelBySlot(ctx context.Context, slotID int64) (bool, error) {
	return s.cancelWhere(ctx, "CancelBySlot", squirrel.Eq{"slot_id": slotID})
}

func (s *Store) cancelWhere(ctx context.Context, op string, where squirrel.Eq) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, s.db)

	query, args, err := psqlbuilder.Update(s.table).
		Set("is_cancelled", true).
		Set("cancelled_at", time.Now().UTC()).
		Where(where).
		Where(squirrel.Eq{"is_cancelled": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %s %s - build update query: %v", ErrBuildQuery, op, s.table, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: %s %s - execute update: %w", ErrExecQuery, op, s.table, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %s %s - get rows affected: %w", ErrExecQuery, op, s.table, err)
	}
	return rowsAffected > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (s *Store) scan(row rowScanner) (*Record, error) {
	var rec Record
	var cancelledAt sql.NullTime

	dest := []interface{}{
		&rec.ID,
		&rec.OwnerID,
		&rec.MemberID,
		&rec.IsOutsider,
		&rec.Price,
		&rec.IsCancelled,
		&cancelledAt,
		&rec.CreatedAt,
	}
	if s.withSlot {
		dest = append(dest, &rec.SlotID)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	rec.CreatedAt = rec.CreatedAt.UTC()
	if cancelledAt.Valid {
		t := cancelledAt.Time.UTC()
		rec.CancelledAt = &t
	}
	return &rec, nil
}
