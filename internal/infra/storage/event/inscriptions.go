package event

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/inscription"
)

// InscriptionRepository записи участников на события
type InscriptionRepository struct {
	store *inscription.Store
}

// NewInscriptionRepository создает репозиторий event_inscriptions
func NewInscriptionRepository(db DBExecutor) *InscriptionRepository {
	return &InscriptionRepository{
		store: inscription.NewStore(db, "event_inscriptions", "event_id", false),
	}
}

// Create записывает участника на событие
func (r *InscriptionRepository) Create(ctx context.Context, ins *domain.EventInscription) (*domain.EventInscription, error) {
	rec, err := r.store.Create(ctx, &inscription.Record{Inscription: ins.Inscription, OwnerID: ins.EventID})
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// GetByID получает запись по ID
func (r *InscriptionRepository) GetByID(ctx context.Context, id int64) (*domain.EventInscription, error) {
	rec, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// ListByEvent все записи события
func (r *InscriptionRepository) ListByEvent(ctx context.Context, eventID int64) ([]*domain.EventInscription, error) {
	recs, err := r.store.ListByOwner(ctx, eventID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.EventInscription, 0, len(recs))
	for _, rec := range recs {
		result = append(result, toDomain(rec))
	}
	return result, nil
}

// Cancel отменяет запись. false - уже была отменена
func (r *InscriptionRepository) Cancel(ctx context.Context, id int64) (bool, error) {
	return r.store.Cancel(ctx, id)
}

// CancelByEvent каскадная отмена всех записей события
func (r *InscriptionRepository) CancelByEvent(ctx context.Context, eventID int64) (int64, error) {
	return r.store.CancelByOwner(ctx, eventID)
}

func toDomain(rec *inscription.Record) *domain.EventInscription {
	return &domain.EventInscription{Inscription: rec.Inscription, EventID: rec.OwnerID}
}
