package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/integrations/notifications"
	eventRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/event"
	reservationRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
)

// Service сервис бронирований площадок участниками
type Service struct {
	coordinator     BookingCoordinator
	reservationRepo ReservationRepository
	inscriptionRepo InscriptionRepository
	eventRepo       EventRepository
	txManager       TransactionManager
	notifier        Notifier
	staff           domain.Staff
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	coordinator BookingCoordinator,
	reservationRepo ReservationRepository,
	inscriptionRepo InscriptionRepository,
	eventRepo EventRepository,
	txManager TransactionManager,
	notifier Notifier,
	staff domain.Staff,
	logger Logger,
) *Service {
	return &Service{
		coordinator:     coordinator,
		reservationRepo: reservationRepo,
		inscriptionRepo: inscriptionRepo,
		eventRepo:       eventRepo,
		txManager:       txManager,
		notifier:        notifier,
		staff:           staff,
		logger:          logger,
	}
}

// Create бронирует площадку
func (s *Service) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Create: user=%d, space=%d, start=%s, end=%s",
		req.UserID, req.SpaceID, req.Start.Format("2006-01-02 15:04"), req.End.Format("15:04"))

	if err := validateFields(req.Name, req.Capacity); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	if req.Special && !s.staff.Contains(req.UserID) {
		s.logger.Warn("Create: user=%d is not staff, special reservation denied", req.UserID)
		return nil, ErrSpecialNotAllowed
	}

	occ, err := s.coordinator.Book(ctx, booking.Request{
		SpaceID:          req.SpaceID,
		Start:            req.Start,
		End:              req.End,
		Name:             strings.TrimSpace(req.Name),
		Capacity:         req.Capacity,
		OutsidersAllowed: req.OutsidersAllowed,
		Special:          req.Special,
		CreatedBy:        req.UserID,
		Flow:             booking.FlowReservation,
	}, nil)
	if err != nil {
		return nil, s.coordinatorError("Create", err)
	}

	resp := models.FromDomainReservation(occ.Reservation)
	resp.SlotID = occ.Slot.ID
	resp.Price = &occ.Slot.Price
	resp.Warnings = s.notify(ctx, notifications.Notification{
		Type:     notifications.ReservationCreated,
		EntityID: occ.Reservation.ID,
		SpaceID:  occ.Reservation.SpaceID,
		ActorID:  req.UserID,
		Start:    occ.Reservation.StartAt,
		End:      occ.Reservation.EndAt,
	})

	s.logger.Info("Create: successfully created reservation id=%d", occ.Reservation.ID)
	return resp, nil
}

// GetByID получает бронирование вместе с записями участников
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	inscriptions, err := s.inscriptionRepo.ListByReservation(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list inscriptions for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list inscriptions: %v", ErrInternal, err)
	}

	resp := models.FromDomainReservation(reservation)
	resp.Inscriptions = make([]models.InscriptionResponse, 0, len(inscriptions))
	for _, ins := range inscriptions {
		resp.Inscriptions = append(resp.Inscriptions, *models.FromDomainInscription(ins))
	}

	return resp, nil
}

// List получает бронирования площадки, опционально за день
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	if req.SpaceID <= 0 {
		return nil, fmt.Errorf("%w: spaceId must be positive", ErrInvalidInput)
	}

	filter := domain.ReservationFilter{
		SpaceID:         req.SpaceID,
		IncludeCanceled: req.IncludeCancelled,
	}
	if req.Date != nil {
		day := domain.DayOf(*req.Date)
		filter.Day = &day
	}

	list, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations for space id=%d", len(list), req.SpaceID)
	return models.FromDomainReservationList(list), nil
}

// Update изменяет поля бронирования и переносит его, если изменились площадка или время.
// При конфликте бронирование остается на прежнем месте
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Update: reservation id=%d by user=%d", id, req.UserID)

	if err := validateFields(req.Name, req.Capacity); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	if err := s.checkManageable(ctx, "Update", id, req.UserID); err != nil {
		return nil, err
	}

	occ, err := s.coordinator.Rebook(ctx, booking.RebookRequest{
		ReservationID: id,
		SpaceID:       req.SpaceID,
		Start:         req.Start,
		End:           req.End,
		Flow:          booking.FlowReservation,
		Apply: func(txCtx context.Context, res *domain.Reservation) error {
			active, err := s.inscriptionRepo.CountActive(txCtx, res.ID)
			if err != nil {
				return fmt.Errorf("%w: count inscriptions: %v", ErrInternal, err)
			}
			if req.Capacity < active {
				return fmt.Errorf("%w: %d < %d", ErrCapacityBelowInscriptions, req.Capacity, active)
			}

			res.Name = strings.TrimSpace(req.Name)
			res.Capacity = req.Capacity
			res.OutsidersAllowed = req.OutsidersAllowed
			return nil
		},
	}, nil)
	if err != nil {
		return nil, s.coordinatorError("Update", err)
	}

	resp := models.FromDomainReservation(occ.Reservation)
	resp.SlotID = occ.Slot.ID
	resp.Price = &occ.Slot.Price
	resp.Warnings = s.notify(ctx, notifications.Notification{
		Type:     notifications.ReservationUpdated,
		EntityID: id,
		SpaceID:  occ.Reservation.SpaceID,
		ActorID:  req.UserID,
		Start:    occ.Reservation.StartAt,
		End:      occ.Reservation.EndAt,
	})

	s.logger.Info("Update: successfully updated reservation id=%d", id)
	return resp, nil
}

// Cancel освобождает площадку и отменяет бронирование вместе с записями. Идемпотентна
func (s *Service) Cancel(ctx context.Context, id int64, userID int64) (*models.ActionResult, error) {
	s.logger.Info("Cancel: reservation id=%d by user=%d", id, userID)

	if err := s.checkManageable(ctx, "Cancel", id, userID); err != nil {
		return nil, err
	}

	released, err := s.coordinator.ReleaseReservation(ctx, id)
	if err != nil {
		return nil, s.coordinatorError("Cancel", err)
	}

	result := &models.ActionResult{Changed: released}
	if released {
		result.Warnings = s.notify(ctx, notifications.Notification{
			Type:     notifications.ReservationCancelled,
			EntityID: id,
			ActorID:  userID,
		})
	}

	return result, nil
}

// Inscribe записывает участника на бронирование
func (s *Service) Inscribe(ctx context.Context, reservationID int64, req *models.InscribeRequest) (*models.InscriptionResponse, error) {
	s.logger.Info("Inscribe: member=%d to reservation id=%d, outsider=%t", req.MemberID, reservationID, req.IsOutsider)

	if req.MemberID <= 0 {
		return nil, fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}

	var created *domain.ReservationInscription

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := s.reservationRepo.GetByID(txCtx, reservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: Inscribe - get reservation: %w", ErrInternal, err)
		}

		if reservation.IsCancelled {
			return ErrReservationCancelled
		}

		owned, err := s.ownedByEvent(txCtx, reservation.ID)
		if err != nil {
			return fmt.Errorf("%w: Inscribe - %w", ErrInternal, err)
		}
		if owned {
			return ErrEventReservation
		}

		if req.IsOutsider && !reservation.OutsidersAllowed {
			return ErrOutsidersNotAllowed
		}

		active, err := s.inscriptionRepo.CountActive(txCtx, reservation.ID)
		if err != nil {
			return fmt.Errorf("%w: Inscribe - count inscriptions: %w", ErrInternal, err)
		}
		if active >= reservation.Capacity {
			return ErrReservationFull
		}

		created, err = s.inscriptionRepo.Create(txCtx, &domain.ReservationInscription{
			Inscription: domain.Inscription{
				MemberID:   req.MemberID,
				IsOutsider: req.IsOutsider,
			},
			ReservationID: reservation.ID,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrAlreadyInscribed) {
				return ErrAlreadyInscribed
			}
			return fmt.Errorf("%w: Inscribe - create inscription: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Inscribe: reservation id=%d: %v", reservationID, err)
		} else {
			s.logger.Warn("Inscribe: reservation id=%d: %v", reservationID, err)
		}
		return nil, err
	}

	resp := models.FromDomainInscription(created)
	resp.Warnings = s.notify(ctx, notifications.Notification{
		Type:     notifications.InscriptionCreated,
		EntityID: reservationID,
		MemberID: req.MemberID,
		Message:  "reservation",
	})

	s.logger.Info("Inscribe: inscription id=%d created", created.ID)
	return resp, nil
}

// CancelInscription отменяет запись участника. Повторная отмена ничего не меняет
func (s *Service) CancelInscription(ctx context.Context, reservationID, inscriptionID int64) (*models.ActionResult, error) {
	s.logger.Info("CancelInscription: inscription id=%d of reservation id=%d", inscriptionID, reservationID)

	ins, err := s.inscriptionRepo.GetByID(ctx, inscriptionID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrInscriptionNotFound) {
			return nil, ErrInscriptionNotFound
		}
		s.logger.Error("CancelInscription: repository error: %v", err)
		return nil, fmt.Errorf("%w: CancelInscription - get inscription: %v", ErrInternal, err)
	}

	if ins.ReservationID != reservationID {
		s.logger.Warn("CancelInscription: inscription id=%d belongs to reservation id=%d", inscriptionID, ins.ReservationID)
		return nil, ErrInscriptionNotFound
	}

	cancelled, err := s.inscriptionRepo.Cancel(ctx, inscriptionID)
	if err != nil {
		s.logger.Error("CancelInscription: repository error: %v", err)
		return nil, fmt.Errorf("%w: CancelInscription - cancel: %v", ErrInternal, err)
	}

	result := &models.ActionResult{Changed: cancelled}
	if cancelled {
		result.Warnings = s.notify(ctx, notifications.Notification{
			Type:     notifications.InscriptionCancelled,
			EntityID: reservationID,
			MemberID: ins.MemberID,
			Message:  "reservation",
		})
	}
	return result, nil
}

// checkManageable пропускает изменение бронирования только автору или сотруднику клуба.
// Бронирование события меняется только вместе с событием
func (s *Service) checkManageable(ctx context.Context, op string, id, userID int64) error {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - get reservation: %v", ErrInternal, op, err)
	}

	if !s.staff.CanManage(reservation, userID) {
		s.logger.Warn("%s: access denied for user=%d to reservation id=%d", op, userID, id)
		return ErrAccessDenied
	}

	owned, err := s.ownedByEvent(ctx, id)
	if err != nil {
		s.logger.Error("%s: reservation id=%d: %v", op, id, err)
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
	if owned {
		s.logger.Warn("%s: reservation id=%d belongs to an event", op, id)
		return ErrEventReservation
	}
	return nil
}

// ownedByEvent проверяет, принадлежит ли бронирование событию
func (s *Service) ownedByEvent(ctx context.Context, reservationID int64) (bool, error) {
	_, err := s.eventRepo.GetByReservationID(ctx, reservationID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, eventRepo.ErrEventNotFound) {
		return false, nil
	}
	return false, fmt.Errorf("find event by reservation: %w", err)
}

// coordinatorError логирует ошибку координатора; внутренние ошибки заворачиваются в ErrInternal
func (s *Service) coordinatorError(op string, err error) error {
	if errors.Is(err, booking.ErrInternal) || errors.Is(err, domain.ErrIntegrity) {
		s.logger.Error("%s: %v", op, err)
		if errors.Is(err, domain.ErrIntegrity) {
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
