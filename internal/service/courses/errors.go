package courses

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = fmt.Errorf("course %w", domain.ErrNotFound)

	// ErrCourseInactive возвращается при записи на неактивный курс
	ErrCourseInactive = fmt.Errorf("course is not active: %w", domain.ErrValidation)

	// ErrSpaceNotFound возвращается, когда площадка курса не найдена
	ErrSpaceNotFound = fmt.Errorf("space %w", domain.ErrNotFound)

	// ErrSpaceUnavailable возвращается, когда площадка закрыта или удалена
	ErrSpaceUnavailable = fmt.Errorf("space is not available: %w", domain.ErrValidation)

	// ErrInscriptionNotFound возвращается, когда запись не найдена или принадлежит другому курсу
	ErrInscriptionNotFound = fmt.Errorf("course inscription %w", domain.ErrNotFound)

	// ErrAlreadyInscribed возвращается, когда окно уже занято записью
	ErrAlreadyInscribed = fmt.Errorf("window already has an inscription: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("course: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("courses service: internal error")
)
