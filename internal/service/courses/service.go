package courses

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/integrations/notifications"
	courseRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/course"
	slotRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/slot"
	spaceRepo "github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/space"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses/models"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
)

// Service сервис курсов академии
type Service struct {
	coordinator     BookingCoordinator
	courseRepo      CourseRepository
	inscriptionRepo InscriptionRepository
	spaceRepo       SpaceRepository
	slotRepo        SlotRepository
	txManager       TransactionManager
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса курсов
func NewService(
	coordinator BookingCoordinator,
	courseRepo CourseRepository,
	inscriptionRepo InscriptionRepository,
	spaceRepo SpaceRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		coordinator:     coordinator,
		courseRepo:      courseRepo,
		inscriptionRepo: inscriptionRepo,
		spaceRepo:       spaceRepo,
		slotRepo:        slotRepo,
		txManager:       txManager,
		notifier:        notifier,
		logger:          logger,
	}
}

// Create создает курс на доступной площадке
func (s *Service) Create(ctx context.Context, req *models.CreateCourseRequest) (*models.CourseResponse, error) {
	s.logger.Info("Create: user=%d, space=%d, name=%q", req.UserID, req.SpaceID, req.Name)

	if err := validateCourse(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	space, err := s.spaceRepo.GetByID(ctx, req.SpaceID)
	if err != nil {
		if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
			s.logger.Warn("Create: space id=%d not found", req.SpaceID)
			return nil, ErrSpaceNotFound
		}
		s.logger.Error("Create: failed to get space id=%d: %v", req.SpaceID, err)
		return nil, fmt.Errorf("%w: Create - get space: %v", ErrInternal, err)
	}
	if !space.IsAvailable {
		s.logger.Warn("Create: space id=%d is not available", req.SpaceID)
		return nil, ErrSpaceUnavailable
	}

	created, err := s.courseRepo.Create(ctx, &domain.Course{
		Name:     strings.TrimSpace(req.Name),
		SpaceID:  req.SpaceID,
		Price:    req.Price,
		IsActive: true,
	})
	if err != nil {
		s.logger.Error("Create: failed to create course: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created course id=%d", created.ID)
	return models.FromDomainCourse(created), nil
}

// GetByID получает курс вместе с опубликованными окнами
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourseResponse, error) {
	course, err := s.getCourse(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	windows, err := s.slotRepo.ListByCourse(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list windows of course id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list windows: %v", ErrInternal, err)
	}

	resp := models.FromDomainCourse(course)
	resp.Windows = models.FromDomainSlotList(windows)
	return resp, nil
}

// PublishWindows публикует свободные окна курса на диапазон дат.
// Окно, пересекающееся с любым слотом площадки, отклоняет всю публикацию
func (s *Service) PublishWindows(ctx context.Context, courseID int64, req *models.PublishWindowsRequest) (*models.PublishWindowsResponse, error) {
	s.logger.Info("PublishWindows: course id=%d by user=%d, range=%s..%s",
		courseID, req.UserID, req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	intervals, err := expandWindows(req)
	if err != nil {
		s.logger.Warn("PublishWindows: validation failed: %v", err)
		return nil, err
	}

	course, err := s.getCourse(ctx, "PublishWindows", courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, ErrCourseInactive
	}

	created := make([]*domain.Slot, 0, len(intervals))

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		created = created[:0]

		space, err := s.spaceRepo.LockForBooking(txCtx, course.SpaceID)
		if err != nil {
			if errors.Is(err, spaceRepo.ErrSpaceNotFound) {
				return ErrSpaceNotFound
			}
			return fmt.Errorf("%w: PublishWindows - lock space: %w", ErrInternal, err)
		}
		if !space.IsAvailable {
			return ErrSpaceUnavailable
		}

		byDay := make(map[time.Time][]*domain.Slot)
		for _, iv := range intervals {
			day := iv.Day()
			existing, ok := byDay[day]
			if !ok {
				existing, err = s.slotRepo.ListByDay(txCtx, space.ID, day)
				if err != nil {
					return fmt.Errorf("%w: PublishWindows - list day slots: %w", ErrInternal, err)
				}
			}

			for _, slot := range existing {
				if slot.Interval().Overlaps(iv) {
					return domain.NewConflictError(slot)
				}
			}

			courseID := course.ID
			slot, err := s.slotRepo.Create(txCtx, &domain.Slot{
				SpaceID:  space.ID,
				Day:      day,
				StartAt:  iv.Start,
				EndAt:    iv.End,
				Occupied: false,
				Price:    course.Price,
				CourseID: &courseID,
			})
			if err != nil {
				if errors.Is(err, slotRepo.ErrSlotTaken) {
					return &domain.ConflictError{SpaceID: space.ID, Day: day, Start: iv.Start, End: iv.End}
				}
				return fmt.Errorf("%w: PublishWindows - create window: %w", ErrInternal, err)
			}

			byDay[day] = append(existing, slot)
			created = append(created, slot)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			s.logger.Error("PublishWindows: course id=%d: %v", courseID, err)
		} else {
			s.logger.Warn("PublishWindows: course id=%d: %v", courseID, err)
		}
		return nil, err
	}

	s.logger.Info("PublishWindows: published %d windows for course id=%d", len(created), courseID)
	return &models.PublishWindowsResponse{
		CourseID: courseID,
		Slots:    models.FromDomainSlotList(created),
	}, nil
}

// Inscribe записывает участника в опубликованное окно курса, занимая его
func (s *Service) Inscribe(ctx context.Context, courseID int64, req *models.InscribeRequest) (*models.InscriptionResponse, error) {
	s.logger.Info("Inscribe: member=%d to course id=%d", req.MemberID, courseID)

	if req.MemberID <= 0 {
		return nil, fmt.Errorf("%w: memberId must be positive", ErrInvalidInput)
	}

	course, err := s.getCourse(ctx, "Inscribe", courseID)
	if err != nil {
		return nil, err
	}
	if !course.IsActive {
		return nil, ErrCourseInactive
	}

	var created *domain.CourseInscription

	_, err = s.coordinator.OccupyPublished(ctx, booking.PublishedRequest{
		CourseID: course.ID,
		SpaceID:  course.SpaceID,
		Start:    req.Start,
		End:      req.End,
	}, func(txCtx context.Context, window *domain.Slot) error {
		ins, err := s.inscriptionRepo.Create(txCtx, &domain.CourseInscription{
			Inscription: domain.Inscription{
				MemberID:   req.MemberID,
				IsOutsider: req.IsOutsider,
				Price:      window.Price,
			},
			CourseID: course.ID,
			SlotID:   window.ID,
		})
		if err != nil {
			if errors.Is(err, courseRepo.ErrAlreadyInscribed) {
				return ErrAlreadyInscribed
			}
			return fmt.Errorf("%w: create inscription: %w", booking.ErrInternal, err)
		}
		created = ins
		return nil
	})
	if err != nil {
		return nil, s.coordinatorError("Inscribe", err)
	}

	resp := models.FromDomainInscription(created)
	resp.Warnings = s.notify(ctx, notifications.Notification{
		Type:     notifications.InscriptionCreated,
		EntityID: course.ID,
		SpaceID:  course.SpaceID,
		MemberID: req.MemberID,
		Start:    req.Start,
		End:      req.End,
		Message:  "course",
	})

	s.logger.Info("Inscribe: inscription id=%d occupies slot id=%d", created.ID, created.SlotID)
	return resp, nil
}

// CancelInscription отменяет запись и возвращает окно в свободные. Повторная отмена ничего не меняет
func (s *Service) CancelInscription(ctx context.Context, courseID, inscriptionID int64) (*models.ActionResult, error) {
	s.logger.Info("CancelInscription: inscription id=%d of course id=%d", inscriptionID, courseID)

	var (
		changed  bool
		memberID int64
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		ins, err := s.inscriptionRepo.GetByID(txCtx, inscriptionID)
		if err != nil {
			if errors.Is(err, courseRepo.ErrInscriptionNotFound) {
				return ErrInscriptionNotFound
			}
			return fmt.Errorf("%w: CancelInscription - get inscription: %w", ErrInternal, err)
		}
		if ins.CourseID != courseID {
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

		if _, err := s.coordinator.ReleasePublished(txCtx, ins.SlotID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, s.coordinatorError("CancelInscription", err)
	}

	result := &models.ActionResult{Changed: changed}
	if changed {
		result.Warnings = s.notify(ctx, notifications.Notification{
			Type:     notifications.InscriptionCancelled,
			EntityID: courseID,
			MemberID: memberID,
			Message:  "course",
		})
	}
	return result, nil
}

func (s *Service) getCourse(ctx context.Context, op string, id int64) (*domain.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			s.logger.Warn("%s: course id=%d not found", op, id)
			return nil, ErrCourseNotFound
		}
		s.logger.Error("%s: repository error for course id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return course, nil
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
