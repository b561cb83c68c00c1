package reservations

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("reservation %w", domain.ErrNotFound)

	// ErrInscriptionNotFound возвращается, когда запись не найдена или принадлежит другому бронированию
	ErrInscriptionNotFound = fmt.Errorf("reservation inscription %w", domain.ErrNotFound)

	// ErrReservationCancelled возвращается при действиях над отмененным бронированием
	ErrReservationCancelled = fmt.Errorf("reservation is cancelled: %w", domain.ErrValidation)

	// ErrOutsidersNotAllowed возвращается при записи стороннего участника, когда это запрещено
	ErrOutsidersNotAllowed = fmt.Errorf("outsiders are not allowed: %w", domain.ErrValidation)

	// ErrCapacityBelowInscriptions возвращается при уменьшении вместимости ниже числа записей
	ErrCapacityBelowInscriptions = fmt.Errorf("capacity is below active inscriptions: %w", domain.ErrValidation)

	// ErrReservationFull возвращается, когда мест больше нет
	ErrReservationFull = fmt.Errorf("reservation is full: %w", domain.ErrConflict)

	// ErrAlreadyInscribed возвращается при повторной записи участника
	ErrAlreadyInscribed = fmt.Errorf("member is already inscribed: %w", domain.ErrConflict)

	// ErrEventReservation возвращается при изменении бронирования события через /reservations
	ErrEventReservation = fmt.Errorf("reservation belongs to an event, manage it via /events: %w", domain.ErrValidation)

	// ErrAccessDenied возвращается, когда пользователь не автор бронирования и не сотрудник клуба
	ErrAccessDenied = fmt.Errorf("reservation access denied: %w", domain.ErrForbidden)

	// ErrSpecialNotAllowed возвращается, когда особое бронирование запрашивает не сотрудник клуба
	ErrSpecialNotAllowed = fmt.Errorf("special reservations are reserved for club staff: %w", domain.ErrForbidden)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("reservation: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
