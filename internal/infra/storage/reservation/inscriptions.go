package reservation

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/inscription"
)

// InscriptionRepository записи участников на бронирования
type InscriptionRepository struct {
	store *inscription.Store
}

// NewInscriptionRepository создает репозиторий reservation_inscriptions
func NewInscriptionRepository(db DBExecutor) *InscriptionRepository {
	return &InscriptionRepository{
		store: inscription.NewStore(db, "reservation_inscriptions", "reservation_id", false),
	}
}

// Create записывает участника на бронирование
func (r *InscriptionRepository) Create(ctx context.Context, ins *domain.ReservationInscription) (*domain.ReservationInscription, error) {
	rec, err := r.store.Create(ctx, &inscription.Record{Inscription: ins.Inscription, OwnerID: ins.ReservationID})
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// GetByID получает запись по ID
func (r *InscriptionRepository) GetByID(ctx context.Context, id int64) (*domain.ReservationInscription, error) {
	rec, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// ListByReservation все записи бронирования
func (r *InscriptionRepository) ListByReservation(ctx context.Context, reservationID int64) ([]*domain.ReservationInscription, error) {
	recs, err := r.store.ListByOwner(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.ReservationInscription, 0, len(recs))
	for _, rec := range recs {
		result = append(result, toDomain(rec))
	}
	return result, nil
}

// CountActive количество активных записей бронирования
func (r *InscriptionRepository) CountActive(ctx context.Context, reservationID int64) (int, error) {
	return r.store.CountActive(ctx, reservationID)
}

// Cancel отменяет запись. false - уже была отменена
func (r *InscriptionRepository) Cancel(ctx context.Context, id int64) (bool, error) {
	return r.store.Cancel(ctx, id)
}

// CancelByReservation каскадная отмена всех записей бронирования
func (r *InscriptionRepository) CancelByReservation(ctx context.Context, reservationID int64) (int64, error) {
	return r.store.CancelByOwner(ctx, reservationID)
}

func toDomain(rec *inscription.Record) *domain.ReservationInscription {
	return &domain.ReservationInscription{Inscription: rec.Inscription, ReservationID: rec.OwnerID}
}
