package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/slot"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
)

// Coordinator единственная точка, через которую площадки занимаются и освобождаются.
// Проверка пересечений и запись выполняются в одной сериализуемой транзакции
// под блокировкой строки площадки
type Coordinator struct {
	spaceRepo       SpaceRepository
	slotRepo        SlotRepository
	reservationRepo ReservationRepository
	inscriptionRepo ReservationInscriptionRepository
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewCoordinator создает новый экземпляр координатора
func NewCoordinator(
	spaceRepo SpaceRepository,
	slotRepo SlotRepository,
	reservationRepo ReservationRepository,
	inscriptionRepo ReservationInscriptionRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Coordinator {
	return &Coordinator{
		spaceRepo:       spaceRepo,
		slotRepo:        slotRepo,
		reservationRepo: reservationRepo,
		inscriptionRepo: inscriptionRepo,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Book занимает площадку новым бронированием: слот + бронирование + persist в одной транзакции
func (c *Coordinator) Book(ctx context.Context, req Request, persist PersistFunc) (*Occupancy, error) {
	iv, err := validateRequest(&req)
	if err != nil {
		c.logger.Warn("Book: validation failed: %v", err)
		return nil, err
	}

	c.logger.Info("Book: flow=%s, space=%d, day=%s, window=%s, special=%t",
		req.Flow, req.SpaceID, iv.Day().Format(domain.DateFormat), iv.Window(), req.Special)

	var result *Occupancy

	err = c.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем площадку: конкурирующие бронирования этой площадки выстраиваются в очередь
		space, err := c.lockSpace(txCtx, "Book", req.SpaceID)
		if err != nil {
			return err
		}

		if err := checkSpace(space, req.Flow, req.Special); err != nil {
			return err
		}

		// 2. Ищем пересечения с занятыми слотами
		if err := c.checkOverlap(txCtx, "Book", space.ID, iv, 0); err != nil {
			return err
		}

		// 3. Занимаем интервал
		slot, err := c.slotRepo.Create(txCtx, &domain.Slot{
			SpaceID:  space.ID,
			Day:      iv.Day(),
			StartAt:  iv.Start,
			EndAt:    iv.End,
			Occupied: true,
			Price:    slotPrice(space, iv, req.Special, req.Price),
		})
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotTaken) {
				return err
			}
			return fmt.Errorf("%w: failed to create slot: %w", ErrInternal, err)
		}

		// 4. Создаем бронирование-владельца
		reservation, err := c.reservationRepo.Create(txCtx, &domain.Reservation{
			Name:             req.Name,
			SpaceID:          space.ID,
			Day:              iv.Day(),
			StartAt:          iv.Start,
			EndAt:            iv.End,
			Capacity:         req.Capacity,
			OutsidersAllowed: req.OutsidersAllowed,
			Special:          req.Special,
			CreatedBy:        req.CreatedBy,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		if err := c.slotRepo.LinkReservation(txCtx, slot.ID, reservation.ID); err != nil {
			return fmt.Errorf("%w: failed to link reservation: %w", ErrInternal, err)
		}
		slot.ReservationID = &reservation.ID

		occ := &Occupancy{Slot: slot, Reservation: reservation}

		// 5. Доменные записи потребителя (событие и т.п.)
		if persist != nil {
			if err := persist(txCtx, occ); err != nil {
				return err
			}
		}

		result = occ
		return nil
	})
	if err != nil {
		return nil, c.fail(ctx, "Book", req.Flow, req.SpaceID, iv, err)
	}

	c.record(req.Flow, outcomeBooked)
	c.logger.Info("Book: reservation id=%d occupies slot id=%d (space=%d, %s)",
		result.Reservation.ID, result.Slot.ID, req.SpaceID, iv.Window())

	return result, nil
}

// OccupyPublished занимает опубликованное окно курса, найденное по координатам
func (c *Coordinator) OccupyPublished(ctx context.Context, req PublishedRequest, persist PersistSlotFunc) (*domain.Slot, error) {
	iv, err := validatePublishedRequest(&req)
	if err != nil {
		c.logger.Warn("OccupyPublished: validation failed: %v", err)
		return nil, err
	}

	c.logger.Info("OccupyPublished: course=%d, space=%d, day=%s, window=%s",
		req.CourseID, req.SpaceID, iv.Day().Format(domain.DateFormat), iv.Window())

	var result *domain.Slot

	err = c.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		space, err := c.lockSpace(txCtx, "OccupyPublished", req.SpaceID)
		if err != nil {
			return err
		}

		if err := checkSpace(space, FlowCourse, false); err != nil {
			return err
		}

		window, err := c.slotRepo.FindPublished(txCtx, req.CourseID, domain.SlotKey{
			SpaceID: space.ID,
			Day:     iv.Day(),
			Start:   iv.Start,
			End:     iv.End,
		})
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				c.logger.Warn("OccupyPublished: no window of course=%d at %s", req.CourseID, iv.Window())
				return ErrWindowNotFound
			}
			return fmt.Errorf("%w: failed to find published window: %w", ErrInternal, err)
		}

		if window.Occupied {
			return domain.NewConflictError(window)
		}

		// Окно само себе не конфликт
		if err := c.checkOverlap(txCtx, "OccupyPublished", space.ID, iv, window.ID); err != nil {
			return err
		}

		if err := c.slotRepo.Occupy(txCtx, window.ID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotTaken) {
				return err
			}
			return fmt.Errorf("%w: failed to occupy window: %w", ErrInternal, err)
		}
		window.Occupied = true

		if persist != nil {
			if err := persist(txCtx, window); err != nil {
				return err
			}
		}

		result = window
		return nil
	})
	if err != nil {
		return nil, c.fail(ctx, "OccupyPublished", FlowCourse, req.SpaceID, iv, err)
	}

	c.record(FlowCourse, outcomeBooked)
	c.logger.Info("OccupyPublished: slot id=%d occupied", result.ID)

	return result, nil
}

// Rebook переносит активное бронирование на новый интервал и/или площадку.
// При конфликте исходная занятость остается нетронутой
func (c *Coordinator) Rebook(ctx context.Context, req RebookRequest, persist PersistFunc) (*Occupancy, error) {
	iv, err := validateRebookRequest(&req)
	if err != nil {
		c.logger.Warn("Rebook: validation failed: %v", err)
		return nil, err
	}

	c.logger.Info("Rebook: reservation=%d -> space=%d, day=%s, window=%s",
		req.ReservationID, req.SpaceID, iv.Day().Format(domain.DateFormat), iv.Window())

	var result *Occupancy

	err = c.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := c.getActiveReservation(txCtx, "Rebook", req.ReservationID)
		if err != nil {
			return err
		}

		space, err := c.lockSpaces(txCtx, reservation.SpaceID, req.SpaceID)
		if err != nil {
			return err
		}

		if err := checkSpace(space, req.Flow, reservation.Special); err != nil {
			return err
		}

		current, err := c.slotRepo.GetByReservationID(txCtx, reservation.ID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				c.logger.Error("Rebook: active reservation id=%d has no slot", reservation.ID)
				return fmt.Errorf("%w: reservation id=%d", ErrSlotMissing, reservation.ID)
			}
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		slot := current
		moved := current.SpaceID != space.ID ||
			!current.StartAt.Equal(iv.Start) || !current.EndAt.Equal(iv.End)

		if moved {
			// Старый слот убираем до проверки: бронирование не конфликтует само с собой
			if err := c.slotRepo.Delete(txCtx, current.ID); err != nil {
				return fmt.Errorf("%w: failed to delete previous slot: %w", ErrInternal, err)
			}

			if err := c.checkOverlap(txCtx, "Rebook", space.ID, iv, 0); err != nil {
				return err
			}

			slot, err = c.slotRepo.Create(txCtx, &domain.Slot{
				SpaceID:       space.ID,
				Day:           iv.Day(),
				StartAt:       iv.Start,
				EndAt:         iv.End,
				Occupied:      true,
				Price:         slotPrice(space, iv, reservation.Special, nil),
				ReservationID: &reservation.ID,
			})
			if err != nil {
				if errors.Is(err, slotRepo.ErrSlotTaken) {
					return err
				}
				return fmt.Errorf("%w: failed to create slot: %w", ErrInternal, err)
			}
		}

		reservation.SpaceID = space.ID
		reservation.Day = iv.Day()
		reservation.StartAt = iv.Start
		reservation.EndAt = iv.End

		if req.Apply != nil {
			if err := req.Apply(txCtx, reservation); err != nil {
				return err
			}
		}

		reservation, err = c.reservationRepo.Update(txCtx, reservation)
		if err != nil {
			return fmt.Errorf("%w: failed to update reservation: %w", ErrInternal, err)
		}

		occ := &Occupancy{Slot: slot, Reservation: reservation}
		if persist != nil {
			if err := persist(txCtx, occ); err != nil {
				return err
			}
		}

		result = occ
		return nil
	})
	if err != nil {
		return nil, c.fail(ctx, "Rebook", req.Flow, req.SpaceID, iv, err)
	}

	c.record(req.Flow, outcomeBooked)
	c.logger.Info("Rebook: reservation id=%d now occupies slot id=%d", result.Reservation.ID, result.Slot.ID)

	return result, nil
}

// lockSpace блокирует строку площадки до конца транзакции
func (c *Coordinator) lockSpace(ctx context.Context, op string, spaceID int64) (*domain.Space, error) {
	space, err := c.spaceRepo.LockForBooking(ctx, spaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			c.logger.Warn("%s: space id=%d not found", op, spaceID)
			return nil, ErrSpaceNotFound
		}
		c.logger.Error("%s: failed to lock space id=%d: %v", op, spaceID, err)
		return nil, fmt.Errorf("%w: failed to lock space: %w", ErrInternal, err)
	}
	return space, nil
}

// lockSpaces блокирует старую и новую площадку в порядке возрастания id, возвращает новую
func (c *Coordinator) lockSpaces(ctx context.Context, fromID, toID int64) (*domain.Space, error) {
	if fromID == toID {
		return c.lockSpace(ctx, "Rebook", toID)
	}

	first, second := fromID, toID
	if first > second {
		first, second = second, first
	}

	a, err := c.lockSpace(ctx, "Rebook", first)
	if err != nil {
		return nil, err
	}
	b, err := c.lockSpace(ctx, "Rebook", second)
	if err != nil {
		return nil, err
	}

	if a.ID == toID {
		return a, nil
	}
	return b, nil
}

// checkOverlap возвращает *domain.ConflictError для первого занятого слота, пересекающего интервал
func (c *Coordinator) checkOverlap(ctx context.Context, op string, spaceID int64, iv domain.Interval, excludeID int64) error {
	hits, err := c.slotRepo.FindOverlapping(ctx, spaceID, iv, excludeID)
	if err != nil {
		c.logger.Error("%s: failed to check overlaps for space id=%d: %v", op, spaceID, err)
		return fmt.Errorf("%w: failed to check overlaps: %w", ErrInternal, err)
	}

	if len(hits) > 0 {
		conflict := domain.NewConflictError(hits[0])
		c.logger.Warn("%s: space id=%d %s intersects occupied %s", op, spaceID, iv.Window(), conflict.Window())
		return conflict
	}
	return nil
}

func (c *Coordinator) getActiveReservation(ctx context.Context, op string, id int64) (*domain.Reservation, error) {
	reservation, err := c.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			c.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
	}

	if reservation.IsCancelled {
		c.logger.Warn("%s: reservation id=%d is cancelled", op, id)
		return nil, ErrReservationCancelled
	}
	return reservation, nil
}

// fail приводит ошибку транзакции к виду для потребителя и пишет метрику исхода.
// Отказ ограничения БД (гонка мимо предварительной проверки) превращается в ConflictError
func (c *Coordinator) fail(ctx context.Context, op string, flow Flow, spaceID int64, iv domain.Interval, err error) error {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		c.record(flow, outcomeConflict)
		return conflict
	}

	if errors.Is(err, slotRepo.ErrSlotTaken) {
		c.record(flow, outcomeConflict)
		c.logger.Warn("%s: storage rejected space id=%d %s: %v", op, spaceID, iv.Window(), err)
		return c.resolveConflict(ctx, spaceID, iv)
	}

	c.record(flow, outcomeError)
	if errors.Is(err, ErrInternal) {
		c.logger.Error("%s: %v", op, err)
	}
	return err
}

// resolveConflict находит занявший интервал слот уже после отката транзакции.
// Внутри чужой транзакции перечитать нельзя, тогда называется запрошенный интервал
func (c *Coordinator) resolveConflict(ctx context.Context, spaceID int64, iv domain.Interval) *domain.ConflictError {
	if !dbmetrics.IsInTransaction(ctx) {
		hits, err := c.slotRepo.FindOverlapping(ctx, spaceID, iv, 0)
		if err == nil && len(hits) > 0 {
			return domain.NewConflictError(hits[0])
		}
	}

	return &domain.ConflictError{
		SpaceID: spaceID,
		Day:     iv.Day(),
		Start:   iv.Start,
		End:     iv.End,
	}
}

func (c *Coordinator) record(flow Flow, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.RecordBooking(string(flow), outcome)
}
