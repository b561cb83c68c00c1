package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
)

const (
	msgValidation = "некорректные данные запроса"
	msgNotFound   = "ресурс не найден"
	msgConflict   = "конфликт с текущим состоянием"
	msgSpaceBusy  = "площадка уже занята в интервале"
	msgForbidden  = "доступ запрещен"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// ConflictResponse тело ответа 409 при занятой площадке
type ConflictResponse struct {
	Error   string `json:"error"`
	SpaceID int64  `json:"spaceId"`
	Date    string `json:"date"`
	Window  string `json:"window"` // "10:00 - 11:00"
}

// RespondConflict 409 с указанием занятого окна
func RespondConflict(w http.ResponseWriter, conflict *domain.ConflictError) {
	RespondJSON(w, http.StatusConflict, ConflictResponse{
		Error:   msgSpaceBusy + " " + conflict.Window(),
		SpaceID: conflict.SpaceID,
		Date:    conflict.Day.Format(domain.DateFormat),
		Window:  conflict.Window(),
	})
}

// RespondDomainError отвечает по виду доменной ошибки:
// валидация 400, не найдено 404, конфликт 409, остальное 500 без подробностей
func RespondDomainError(w http.ResponseWriter, log Logger, route string, err error) {
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &conflict):
		log.Warn("%s - Conflict: %v", route, err)
		RespondConflict(w, conflict)

	case errors.Is(err, domain.ErrValidation):
		log.Warn("%s - Validation failed: %v", route, err)
		RespondValidationError(w, msgValidation, map[string]string{"reason": err.Error()})

	case errors.Is(err, domain.ErrNotFound):
		log.Warn("%s - Not found: %v", route, err)
		RespondNotFound(w, msgNotFound)

	case errors.Is(err, domain.ErrConflict):
		log.Warn("%s - Conflict: %v", route, err)
		RespondError(w, http.StatusConflict, msgConflict)

	case errors.Is(err, domain.ErrForbidden):
		log.Warn("%s - Forbidden: %v", route, err)
		RespondForbidden(w, msgForbidden)

	case errors.Is(err, domain.ErrIntegrity):
		log.Error("%s - Integrity violation: %v", route, err)
		RespondInternalError(w)

	default:
		log.Error("%s - Internal error: %v", route, err)
		RespondInternalError(w)
	}
}
