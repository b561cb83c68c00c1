package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/reservation"
	slotRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/slot"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/dbmetrics"
)

// ReleaseReservation освобождает площадку бронирования, отменяет его и записи на него.
// Повторный вызов для уже отмененного бронирования ничего не делает и возвращает false.
// Внутри внешней транзакции исход не пишется в метрики: его фиксирует или откатывает вызывающий
func (c *Coordinator) ReleaseReservation(ctx context.Context, reservationID int64) (bool, error) {
	c.logger.Info("ReleaseReservation: reservation=%d", reservationID)

	released := false
	nested := dbmetrics.IsInTransaction(ctx)

	err := c.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := c.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				c.logger.Warn("ReleaseReservation: reservation id=%d not found", reservationID)
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: failed to get reservation: %w", ErrInternal, err)
		}

		if reservation.IsCancelled {
			c.logger.Info("ReleaseReservation: reservation id=%d already released", reservationID)
			return nil
		}

		if _, err := c.lockSpace(txCtx, "ReleaseReservation", reservation.SpaceID); err != nil {
			return err
		}

		slot, err := c.slotRepo.GetByReservationID(txCtx, reservation.ID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				c.logger.Error("ReleaseReservation: active reservation id=%d has no slot", reservation.ID)
				return fmt.Errorf("%w: reservation id=%d", ErrSlotMissing, reservation.ID)
			}
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		if err := c.releaseSlot(txCtx, slot); err != nil {
			return err
		}

		cancelled, err := c.reservationRepo.Cancel(txCtx, reservation.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to cancel reservation: %w", ErrInternal, err)
		}
		if !cancelled {
			return fmt.Errorf("%w: reservation id=%d changed during release", domain.ErrIntegrity, reservation.ID)
		}

		n, err := c.inscriptionRepo.CancelByReservation(txCtx, reservation.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to cancel inscriptions: %w", ErrInternal, err)
		}

		c.logger.Info("ReleaseReservation: slot id=%d released, %d inscriptions cancelled", slot.ID, n)
		released = true
		return nil
	})
	if err != nil {
		if !nested {
			c.record(FlowReservation, outcomeError)
		}
		if errors.Is(err, ErrInternal) || errors.Is(err, domain.ErrIntegrity) {
			c.logger.Error("ReleaseReservation: %v", err)
		}
		return false, err
	}

	if released && !nested {
		c.record(FlowReservation, outcomeReleased)
	}
	return released, nil
}

// ReleasePublished возвращает занятое окно курса в свободное состояние.
// Уже свободное окно - false без ошибки
func (c *Coordinator) ReleasePublished(ctx context.Context, slotID int64) (bool, error) {
	c.logger.Info("ReleasePublished: slot=%d", slotID)

	freed := false

	err := c.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		slot, err := c.slotRepo.GetByID(txCtx, slotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				c.logger.Warn("ReleasePublished: slot id=%d not found", slotID)
				return ErrWindowNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %w", ErrInternal, err)
		}

		if !slot.IsPublished() {
			return ErrNotPublishedWindow
		}

		if _, err := c.lockSpace(txCtx, "ReleasePublished", slot.SpaceID); err != nil {
			return err
		}

		freed, err = c.slotRepo.Free(txCtx, slot.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to free window: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		c.record(FlowCourse, outcomeError)
		if errors.Is(err, ErrInternal) {
			c.logger.Error("ReleasePublished: %v", err)
		}
		return false, err
	}

	if freed {
		c.record(FlowCourse, outcomeReleased)
	}
	return freed, nil
}

// releaseSlot разовый слот удаляется, опубликованное окно освобождается
func (c *Coordinator) releaseSlot(ctx context.Context, slot *domain.Slot) error {
	if slot.IsPublished() {
		if _, err := c.slotRepo.Free(ctx, slot.ID); err != nil {
			return fmt.Errorf("%w: failed to free window: %w", ErrInternal, err)
		}
		return nil
	}

	if err := c.slotRepo.Delete(ctx, slot.ID); err != nil {
		return fmt.Errorf("%w: failed to delete slot: %w", ErrInternal, err)
	}
	return nil
}
