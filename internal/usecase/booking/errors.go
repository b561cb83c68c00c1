package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("booking: %w", domain.ErrValidation)

	// ErrSpaceNotFound возвращается, когда площадка не найдена
	ErrSpaceNotFound = fmt.Errorf("booking: space %w", domain.ErrNotFound)

	// ErrSpaceUnavailable возвращается, когда площадка закрыта или удалена
	ErrSpaceUnavailable = fmt.Errorf("booking: space is unavailable: %w", domain.ErrValidation)

	// ErrSpaceNotReservable возвращается, когда площадка не принимает бронирования участников
	ErrSpaceNotReservable = fmt.Errorf("booking: space does not accept member reservations: %w", domain.ErrValidation)

	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("booking: reservation %w", domain.ErrNotFound)

	// ErrReservationCancelled возвращается при попытке изменить отмененное бронирование
	ErrReservationCancelled = fmt.Errorf("booking: reservation is cancelled: %w", domain.ErrValidation)

	// ErrWindowNotFound возвращается, когда опубликованное окно курса не найдено
	ErrWindowNotFound = fmt.Errorf("booking: published window %w", domain.ErrNotFound)

	// ErrNotPublishedWindow возвращается, когда слот не является окном курса
	ErrNotPublishedWindow = fmt.Errorf("booking: slot is not a published window: %w", domain.ErrValidation)

	// ErrSlotMissing возвращается, когда у активного бронирования нет слота
	ErrSlotMissing = fmt.Errorf("booking: occupancy slot is missing: %w", domain.ErrIntegrity)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("booking: internal error")
)
