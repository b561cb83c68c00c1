package events

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = fmt.Errorf("event %w", domain.ErrNotFound)

	// ErrInscriptionNotFound возвращается, когда запись не найдена или принадлежит другому событию
	ErrInscriptionNotFound = fmt.Errorf("event inscription %w", domain.ErrNotFound)

	// ErrEventCancelled возвращается при действиях над отмененным событием
	ErrEventCancelled = fmt.Errorf("event is cancelled: %w", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда пользователь не автор события и не сотрудник клуба
	ErrAccessDenied = fmt.Errorf("event access denied: %w", domain.ErrForbidden)

	// ErrEventFull возвращается, когда мест больше нет
	ErrEventFull = fmt.Errorf("event is full: %w", domain.ErrConflict)

	// ErrAlreadyInscribed возвращается при повторной записи участника
	ErrAlreadyInscribed = fmt.Errorf("member is already inscribed: %w", domain.ErrConflict)

	// ErrOutsidersNotAllowed возвращается при записи стороннего участника, когда это запрещено
	ErrOutsidersNotAllowed = fmt.Errorf("outsiders are not allowed: %w", domain.ErrValidation)

	// ErrCapacityBelowRegistered возвращается при уменьшении вместимости ниже числа записанных
	ErrCapacityBelowRegistered = fmt.Errorf("capacity is below registered count: %w", domain.ErrValidation)

	// ErrSpaceMissing возвращается, когда площадка события исчезла
	ErrSpaceMissing = fmt.Errorf("event space is missing: %w", domain.ErrIntegrity)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("event: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("events service: internal error")
)
