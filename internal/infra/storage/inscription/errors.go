package inscription

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

var (
	// ErrInscriptionNotFound возвращается, когда запись участника не найдена
	ErrInscriptionNotFound = fmt.Errorf("inscription.repository: inscription %w", domain.ErrNotFound)

	// ErrAlreadyInscribed возвращается при нарушении уникальности активной записи
	ErrAlreadyInscribed = fmt.Errorf("inscription.repository: already inscribed: %w", domain.ErrConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("inscription.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("inscription.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("inscription.repository: failed to scan row")
)
