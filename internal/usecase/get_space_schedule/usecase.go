package get_space_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
)

// UseCase use case для получения расписания площадки на день
type UseCase struct {
	spaceRepo SpaceRepository
	slotRepo  SlotRepository
	hours     Hours
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(spaceRepo SpaceRepository, slotRepo SlotRepository, hours Hours, logger Logger) (*UseCase, error) {
	if err := validateHours(hours); err != nil {
		return nil, fmt.Errorf("schedule: invalid club hours: %w", err)
	}

	return &UseCase{
		spaceRepo: spaceRepo,
		slotRepo:  slotRepo,
		hours:     hours,
		logger:    logger,
	}, nil
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSpaceSchedule: validation failed: %v", err)
		return nil, err
	}

	day := domain.DayOf(req.Date)
	uc.logger.Info("GetSpaceSchedule: space=%d, date=%s", req.SpaceID, day.Format(domain.DateFormat))

	// 2. Получаем площадку
	space, err := uc.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			uc.logger.Warn("GetSpaceSchedule: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		uc.logger.Error("GetSpaceSchedule: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: failed to get space: %v", ErrInternal, err)
	}

	// 3. Получаем слоты дня
	slots, err := uc.slotRepo.ListByDay(ctx, space.ID, day)
	if err != nil {
		uc.logger.Error("GetSpaceSchedule: failed to list slots for space id=%d: %v", space.ID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	occupied, published := splitSlots(slots)

	// 4. Закрытая площадка не имеет свободного времени
	free := make([]Gap, 0)
	if space.IsAvailable {
		free = computeFreeGaps(uc.hours, occupied)
	}

	return &Response{
		SpaceID:   space.ID,
		SpaceName: space.Name,
		Date:      day,
		Open:      uc.hours.Open,
		Close:     uc.hours.Close,
		Occupied:  occupied,
		Published: published,
		Free:      free,
	}, nil
}
