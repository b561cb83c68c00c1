package course

import (
	"context"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/inscription"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/ptr"
)

// InscriptionRepository записи на окна курса
type InscriptionRepository struct {
	store *inscription.Store
}

// NewInscriptionRepository создает репозиторий course_inscriptions
func NewInscriptionRepository(db DBExecutor) *InscriptionRepository {
	return &InscriptionRepository{
		store: inscription.NewStore(db, "course_inscriptions", "course_id", true),
	}
}

// Create записывает участника на окно курса
func (r *InscriptionRepository) Create(ctx context.Context, ins *domain.CourseInscription) (*domain.CourseInscription, error) {
	rec, err := r.store.Create(ctx, &inscription.Record{
		Inscription: ins.Inscription,
		OwnerID:     ins.CourseID,
		SlotID:      ptr.Ptr(ins.SlotID),
	})
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// GetByID получает запись по ID
func (r *InscriptionRepository) GetByID(ctx context.Context, id int64) (*domain.CourseInscription, error) {
	rec, err := r.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomain(rec), nil
}

// ListByCourse все записи курса
func (r *InscriptionRepository) ListByCourse(ctx context.Context, courseID int64) ([]*domain.CourseInscription, error) {
	recs, err := r.store.ListByOwner(ctx, courseID)
	if err != nil {
		return nil, err
	}
	result := make([]*domain.CourseInscription, 0, len(recs))
	for _, rec := range recs {
		result = append(result, toDomain(rec))
	}
	return result, nil
}

// Cancel отменяет запись. false - уже была отменена
func (r *InscriptionRepository) Cancel(ctx context.Context, id int64) (bool, error) {
	return r.store.Cancel(ctx, id)
}

// CancelBySlot отменяет активную запись на окно
func (r *InscriptionRepository) CancelBySlot(ctx context.Context, slotID int64) (bool, error) {
	return r.store.CancelBySlot(ctx, slotID)
}

func toDomain(rec *inscription.Record) *domain.CourseInscription {
	return &domain.CourseInscription{
		Inscription: rec.Inscription,
		CourseID:    rec.OwnerID,
		SlotID:      ptr.Value(rec.SlotID),
	}
}
