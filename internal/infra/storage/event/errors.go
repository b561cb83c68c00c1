package event

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/inscription"
)

var (
	// ErrEventNotFound возвращается, когда событие не найдено
	ErrEventNotFound = fmt.Errorf("event.repository: event %w", domain.ErrNotFound)

	// ErrEventFull возвращается, когда счетчик записей достиг вместимости
	ErrEventFull = fmt.Errorf("event.repository: event is full: %w", domain.ErrConflict)

	// ErrInscriptionNotFound возвращается, когда запись участника не найдена
	ErrInscriptionNotFound = inscription.ErrInscriptionNotFound

	// ErrAlreadyInscribed возвращается при повторной активной записи участника
	ErrAlreadyInscribed = inscription.ErrAlreadyInscribed

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("event.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("event.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("event.repository: failed to scan row")
)
