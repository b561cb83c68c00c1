package reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/inscription"
)

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = fmt.Errorf("reservation.repository: reservation %w", domain.ErrNotFound)

	// ErrInscriptionNotFound возвращается, когда запись участника не найдена
	ErrInscriptionNotFound = inscription.ErrInscriptionNotFound

	// ErrAlreadyInscribed возвращается при повторной активной записи участника
	ErrAlreadyInscribed = inscription.ErrAlreadyInscribed

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
