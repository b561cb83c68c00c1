package course

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/infra/storage/inscription"
)

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = fmt.Errorf("course.repository: course %w", domain.ErrNotFound)

	// ErrInscriptionNotFound возвращается, когда запись на курс не найдена
	ErrInscriptionNotFound = inscription.ErrInscriptionNotFound

	// ErrAlreadyInscribed возвращается, когда на окно уже есть активная запись
	ErrAlreadyInscribed = inscription.ErrAlreadyInscribed

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("course.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("course.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("course.repository: failed to scan row")
)
