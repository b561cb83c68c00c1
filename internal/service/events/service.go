package events

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/integrations/notifications"
	eventRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/event"
	reservationRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/reservation"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events/models"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
)

// Service сервис программируемых событий
type Service struct {
	coordinator     BookingCoordinator
	eventRepo       EventRepository
	inscriptionRepo InscriptionRepository
	reservationRepo ReservationRepository
	spaceRepo       SpaceRepository
	txManager       TransactionManager
	notifier        Notifier
	staff           domain.Staff
	logger          Logger
}

// NewService создает новый экземпляр сервиса событий
func NewService(
	coordinator BookingCoordinator,
	eventRepo EventRepository,
	inscriptionRepo InscriptionRepository,
	reservationRepo ReservationRepository,
	spaceRepo SpaceRepository,
	txManager TransactionManager,
	notifier Notifier,
	staff domain.Staff,
	logger Logger,
) *Service {
	return &Service{
		coordinator:     coordinator,
		eventRepo:       eventRepo,
		inscriptionRepo: inscriptionRepo,
		reservationRepo: reservationRepo,
		spaceRepo:       spaceRepo,
		txManager:       txManager,
		notifier:        notifier,
		staff:           staff,
		logger:          logger,
	}
}

// Create бронирует площадку под событие и создает событие в той же транзакции
func (s *Service) Create(ctx context.Context, req *models.CreateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Create: user=%d, space=%d, start=%s, end=%s",
		req.UserID, req.SpaceID, req.Start.Format("2006-01-02 15:04"), req.End.Format("15:04"))

	if err := validateFields(req.Name, req.Description, req.Capacity, req.MemberPrice, req.OutsiderPrice); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	var created *domain.Event

	occ, err := s.coordinator.Book(ctx, booking.Request{
		SpaceID:          req.SpaceID,
		Start:            req.Start,
		End:              req.End,
		Name:             name,
		Capacity:         req.Capacity,
		OutsidersAllowed: req.OutsidersAllowed,
		CreatedBy:        req.UserID,
		Flow:             booking.FlowEvent,
	}, func(txCtx context.Context, occ *booking.Occupancy) error {
		ev, err := s.eventRepo.Create(txCtx, &domain.Event{
			ReservationID: occ.Reservation.ID,
			Name:          name,
			Description:   req.Description,
			Day:           occ.Reservation.Day,
			StartAt:       occ.Reservation.StartAt,
			EndAt:         occ.Reservation.EndAt,
			MemberPrice:   req.MemberPrice,
			OutsiderPrice: req.OutsiderPrice,
			Capacity:      req.Capacity,
		})
		if err != nil {
			return fmt.Errorf("%w: create event: %w", booking.ErrInternal, err)
		}
		created = ev
		return nil
	})
	if err != nil {
		return nil, s.coordinatorError("Create", err)
	}

	resp := models.FromDomainEvent(created, occ.Reservation)
	resp.Warnings = s.notify(ctx, notifications.Notification{
		Type:     notifications.EventCreated,
		EntityID: created.ID,
		SpaceID:  occ.Reservation.SpaceID,
		ActorID:  req.UserID,
		Start:    created.StartAt,
		End:      created.EndAt,
		Message:  created.Name,
	})

	s.logger.Info("Create: successfully created event id=%d (reservation id=%d)", created.ID, created.ReservationID)
	return resp, nil
}

// GetByID получает событие
func (s *Service) GetByID(ctx context.Context, id int64) (*models.EventResponse, error) {
	ev, err := s.getEvent(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	res, err := s.reservationRepo.GetByID(ctx, ev.ReservationID)
	if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
		s.logger.Error("GetByID: failed to load reservation id=%d: %v", ev.ReservationID, err)
		return nil, fmt.Errorf("%w: GetByID - get reservation: %v", ErrInternal, err)
	}

	return models.FromDomainEvent(ev, res), nil
}

// Update изменяет поля события и переносит его бронирование при смене площадки или времени
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateEventRequest) (*models.EventResponse, error) {
	s.logger.Info("Update: event id=%d by user=%d", id, req.UserID)

	if err := validateFields(req.Name, req.Description, req.Capacity, req.MemberPrice, req.OutsiderPrice); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	ev, err := s.getEvent(ctx, "Update", id)
	if err != nil {
		return nil, err
	}
	if ev.IsCancelled {
		s.logger.Warn("Update: event id=%d is cancelled", id)
		return nil, ErrEventCancelled
	}

	res, err := s.reservationRepo.GetByID(ctx, ev.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Error("Update: reservation id=%d of event id=%d is missing", ev.ReservationID, id)
			return nil, fmt.Errorf("%w: reservation id=%d of event id=%d", domain.ErrIntegrity, ev.ReservationID, id)
		}
		s.logger.Error("Update: failed to load reservation id=%d: %v", ev.ReservationID, err)
		return nil, fmt.Errorf("%w: Update - get reservation: %v", ErrInternal, err)
	}
	if !s.staff.CanManage(res, req.UserID) {
		s.logger.Warn("Update: access denied for user=%d to event id=%d", req.UserID, id)
		return nil, ErrAccessDenied
	}

	name := strings.TrimSpace(req.Name)
	var updated *domain.Event

	occ, err := s.coordinator.Rebook(ctx, booking.RebookRequest{
		ReservationID: ev.ReservationID,
		SpaceID:       req.SpaceID,
		Start:         req.Start,
		End:           req.End,
		Flow:          booking.FlowEvent,
		Apply: func(txCtx context.Context, res *domain.Reservation) error {
			current, err := s.eventRepo.GetByID(txCtx, id)
			if err != nil {
				return fmt.Errorf("%w: reload event: %w", booking.ErrInternal, err)
			}
			if req.Capacity < current.RegisterCount {
				return fmt.Errorf("%w: %d < %d", ErrCapacityBelowRegistered, req.Capacity, current.RegisterCount)
			}

			res.Name = name
			res.Capacity = req.Capacity
			return nil
		},
	}, func(txCtx context.Context, occ *booking.Occupancy) error {
		ev.Name = name
		ev.Description = req.Description
		ev.Day = occ.Reservation.Day
		ev.StartAt = occ.Reservation.StartAt
		ev.EndAt = occ.Reservation.EndAt
		ev.MemberPrice = req.MemberPrice
		ev.OutsiderPrice = req.OutsiderPrice
		ev.Capacity = req.Capacity

		saved, err := s.eventRepo.Update(txCtx, ev)
		if err != nil {
			return fmt.Errorf("%w: update event: %w", booking.ErrInternal, err)
		}
		updated = saved
		return nil
	})
	if err != nil {
		return nil, s.coordinatorError("Update", err)
	}

	resp := models.FromDomainEvent(updated, occ.Reservation)
	resp.Warnings = s.notify(ctx, notifications.Notification{
		Type:     notifications.EventUpdated,
		EntityID: id,
		SpaceID:  occ.Reservation.SpaceID,
		ActorID:  req.UserID,
		Start:    updated.StartAt,
		End:      updated.EndAt,
		Message:  updated.Name,
	})

	s.logger.Info("Update: successfully updated event id=%d", id)
	return resp, nil
}

// Cancel отменяет событие: освобождает площадку, отменяет бронирование и все записи участников.
// Повторная отмена ничего не меняет
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) (*models.ActionResult, error) {
	s.logger.Info("Cancel: event id=%d by user=%d", id, userID)

	var (
		changed   bool
		spaceID   int64
		cancelled int64
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		ev, err := s.eventRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("%w: Cancel - get event: %w", ErrInternal, err)
		}

		res, err := s.reservationRepo.GetByID(txCtx, ev.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: reservation id=%d of event id=%d", domain.ErrIntegrity, ev.ReservationID, id)
			}
			return fmt.Errorf("%w: Cancel - get reservation: %w", ErrInternal, err)
		}
		if !s.staff.CanManage(res, userID) {
			return ErrAccessDenied
		}

		if ev.IsCancelled {
			return nil
		}

		if _, err := s.spaceRepo.GetByID(txCtx, res.SpaceID); err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				return fmt.Errorf("%w: space id=%d", ErrSpaceMissing, res.SpaceID)
			}
			return fmt.Errorf("%w: Cancel - get space: %w", ErrInternal, err)
		}
		spaceID = res.SpaceID

		if _, err := s.coordinator.ReleaseReservation(txCtx, ev.ReservationID); err != nil {
			return err
		}

		changed, err = s.eventRepo.Cancel(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Cancel - cancel event: %w", ErrInternal, err)
		}

		cancelled, err = s.inscriptionRepo.CancelByEvent(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Cancel - cancel inscriptions: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, s.coordinatorError("Cancel", err)
	}

	result := &models.ActionResult{Changed: changed}
	if changed {
		s.logger.Info("Cancel: event id=%d cancelled, %d inscriptions cancelled", id, cancelled)
		result.Warnings = s.notify(ctx, notifications.Notification{
			Type:     notifications.EventCancelled,
			EntityID: id,
			SpaceID:  spaceID,
			ActorID:  userID,
		})
	}
	return result, nil
}

// Inscribe записывает участника на событие
func (s *Service) Inscribe(ctx context.Context, eventID int64, req *models.InscribeRequest) (*models.InscriptionResponse, error) {
	s.logger.Info("Inscribe: member=%d to event id=%d, outsider=%t", req.MemberID, eventID, req.IsOutsider)

	if req.MemberID <= 0 {
		return nil, fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}

	var created *domain.EventInscription

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		ev, err := s.eventRepo.GetByID(txCtx, eventID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return ErrEventNotFound
			}
			return fmt.Errorf("%w: Inscribe - get event: %w", ErrInternal, err)
		}

		if !ev.IsActive() {
			return ErrEventCancelled
		}
		if ev.IsFull() {
			return ErrEventFull
		}

		// Без живого бронирования событие не проводится
		res, err := s.reservationRepo.GetByID(txCtx, ev.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return fmt.Errorf("%w: reservation id=%d of event id=%d", domain.ErrIntegrity, ev.ReservationID, eventID)
			}
			return fmt.Errorf("%w: Inscribe - get reservation: %w", ErrInternal, err)
		}
		if res.IsCancelled {
			return ErrEventCancelled
		}

		if req.IsOutsider && !res.OutsidersAllowed {
			return ErrOutsidersNotAllowed
		}

		if err := s.eventRepo.IncrementRegistered(txCtx, eventID); err != nil {
			if errors.Is(err, eventRepo.ErrEventFull) {
				return ErrEventFull
			}
			return fmt.Errorf("%w: Inscribe - increment registered: %w", ErrInternal, err)
		}

		created, err = s.inscriptionRepo.Create(txCtx, &domain.EventInscription{
			Inscription: domain.Inscription{
				MemberID:   req.MemberID,
				IsOutsider: req.IsOutsider,
				Price:      ev.PriceFor(req.IsOutsider),
			},
			EventID: eventID,
		})
		if err != nil {
			if errors.Is(err, eventRepo.ErrAlreadyInscribed) {
				return ErrAlreadyInscribed
			}
			return fmt.Errorf("%w: Inscribe - create inscription: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) || errors.Is(err, domain.ErrIntegrity) {
			s.logger.Error("Inscribe: event id=%d: %v", eventID, err)
		} else {
			s.logger.Warn("Inscribe: event id=%d: %v", eventID, err)
		}
		return nil, err
	}

	resp := models.FromDomainInscription(created)
	resp.Warnings = s.notify(ctx, notifications.Notification{
		Type:     notifications.InscriptionCreated,
		EntityID: eventID,
		MemberID: req.MemberID,
		Message:  "event",
	})

	s.logger.Info("Inscribe: inscription id=%d created, price=%.2f", created.ID, created.Price)
	return resp, nil
}

// CancelInscription отменяет запись участника и освобождает место. Повторная отмена ничего не меняет
func (s *Service) CancelInscription(ctx context.Context, eventID, inscriptionID int64) (*models.ActionResult, error) {
	s.logger.Info("CancelInscription: inscription id=%d of event id=%d", inscriptionID, eventID)

	var (
		changed  bool
		memberID int64
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		ins, err := s.inscriptionRepo.GetByID(txCtx, inscriptionID)
		if err != nil {
			if errors.Is(err, eventRepo.ErrInscriptionNotFound) {
				return ErrInscriptionNotFound
			}
			return fmt.Errorf("%w: CancelInscription - get inscription: %w", ErrInternal, err)
		}
		if ins.EventID != eventID {
			return ErrInscriptionNotFound
		}
		memberID = ins.MemberID

		changed, err = s.inscriptionRepo.Cancel(txCtx, inscriptionID)
		if err != nil {
			return fmt.Errorf("%w: CancelInscription - cancel: %w", ErrInternal, err)
		}
		if !changed {
			return nil
		}

		if err := s.eventRepo.DecrementRegistered(txCtx, eventID); err != nil {
			if errors.Is(err, eventRepo.ErrEventNotFound) {
				return fmt.Errorf("%w: register count of event id=%d is already zero", domain.ErrIntegrity, eventID)
			}
			return fmt.Errorf("%w: CancelInscription - decrement registered: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) || errors.Is(err, domain.ErrIntegrity) {
			s.logger.Error("CancelInscription: event id=%d: %v", eventID, err)
		} else {
			s.logger.Warn("CancelInscription: event id=%d: %v", eventID, err)
		}
		return nil, err
	}

	result := &models.ActionResult{Changed: changed}
	if changed {
		result.Warnings = s.notify(ctx, notifications.Notification{
			Type:     notifications.InscriptionCancelled,
			EntityID: eventID,
			MemberID: memberID,
			Message:  "event",
		})
	}
	return result, nil
}

func (s *Service) getEvent(ctx context.Context, op string, id int64) (*domain.Event, error) {
	ev, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			s.logger.Warn("%s: event id=%d not found", op, id)
			return nil, ErrEventNotFound
		}
		s.logger.Error("%s: repository error for event id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return ev, nil
}

// coordinatorError логирует ошибку координатора; внутренние ошибки заворачиваются в ErrInternal
func (s *Service) coordinatorError(op string, err error) error {
	if errors.Is(err, domain.ErrIntegrity) {
		s.logger.Error("%s: %v", op, err)
		return err
	}
	if errors.Is(err, booking.ErrInternal) || errors.Is(err, ErrInternal) {
		s.logger.Error("%s: %v", op, err)
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: %s: %v", ErrInternal, op, err)
	}

	s.logger.Warn("%s: %v", op, err)
	return err
}

// notify отправляет уведомление после фиксации. Ошибка не отменяет операцию и возвращается как предупреждение
func (s *Service) notify(ctx context.Context, msg notifications.Notification) []string {
	if s.notifier == nil {
		return nil
	}

	if err := s.notifier.Notify(ctx, msg); err != nil {
		s.logger.Warn("notify: %s entity=%d: %v", msg.Type, msg.EntityID, err)
		return []string{fmt.Sprintf("notification %s was not delivered", msg.Type)}
	}
	return nil
}
