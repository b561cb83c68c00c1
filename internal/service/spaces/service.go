package spaces

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces/models"
)

// Service реестр площадок клуба
type Service struct {
	spaceRepo SpaceRepository
	cache     Cache
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок. cache может быть nil
func NewService(spaceRepo SpaceRepository, cache Cache, logger Logger) *Service {
	return &Service{
		spaceRepo: spaceRepo,
		cache:     cache,
		logger:    logger,
	}
}

// Create создает площадку
func (s *Service) Create(ctx context.Context, req *models.CreateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Create: creating space name=%q, category=%s", req.Name, req.Category)

	if err := validateSpace(req.Name, req.Capacity, req.CostPerHour, req.Category); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	space, err := s.spaceRepo.Create(ctx, &domain.Space{
		Name:         strings.TrimSpace(req.Name),
		Capacity:     req.Capacity,
		CostPerHour:  req.CostPerHour,
		IsReservable: req.IsReservable,
		IsAvailable:  true,
		Category:     domain.SpaceCategory(req.Category),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created space id=%d", space.ID)
	return models.FromDomainSpace(space), nil
}

// GetByID получает площадку по ID, сначала из кэша
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SpaceResponse, error) {
	if s.cache != nil {
		if space, ok := s.cache.Get(ctx, id); ok {
			return models.FromDomainSpace(space), nil
		}
	}

	space, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("GetByID: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("GetByID: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		s.cache.Set(ctx, space)
	}

	return models.FromDomainSpace(space), nil
}

// List получает площадки с фильтрацией по категории и доступности
func (s *Service) List(ctx context.Context, req *models.ListSpacesRequest) (*models.SpaceListResponse, error) {
	filter := domain.SpaceFilter{Available: req.Available}

	if req.Category != nil {
		category := domain.SpaceCategory(*req.Category)
		if !category.IsValid() {
			s.logger.Warn("List: unknown category %q", *req.Category)
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *req.Category)
		}
		filter.Category = &category
	}

	spaces, err := s.spaceRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d spaces", len(spaces))
	return models.FromDomainSpaceList(spaces), nil
}

// Update изменяет метаданные площадки
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateSpaceRequest) (*models.SpaceResponse, error) {
	s.logger.Info("Update: updating space id=%d", id)

	if err := validateSpace(req.Name, req.Capacity, req.CostPerHour, req.Category); err != nil {
		s.logger.Warn("Update: validation failed for space id=%d: %v", id, err)
		return nil, err
	}

	current, err := s.spaceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Update: space id=%d not found", id)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	current.Name = strings.TrimSpace(req.Name)
	current.Capacity = req.Capacity
	current.CostPerHour = req.CostPerHour
	current.IsReservable = req.IsReservable
	current.IsAvailable = req.IsAvailable
	current.Category = domain.SpaceCategory(req.Category)

	updated, err := s.spaceRepo.Update(ctx, current)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Update: repository error for space id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, id)

	s.logger.Info("Update: successfully updated space id=%d", id)
	return models.FromDomainSpace(updated), nil
}

// Delete мягко удаляет площадку (is_available=false)
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: soft-deleting space id=%d", id)

	if err := s.spaceRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Delete: space id=%d not found", id)
			return ErrSpaceNotFound
		}
		s.logger.Error("Delete: repository error for space id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, id)

	s.logger.Info("Delete: space id=%d is no longer available", id)
	return nil
}

func (s *Service) invalidate(ctx context.Context, id int64) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
}
