package cancel_course_inscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses"
)

const (
	msgInvalidID = "некорректный ID курса или записи"
	msgNotFound  = "запись не найдена"
)

type Handler struct {
	service CourseService
	logger  Logger
}

func NewHandler(service CourseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/courses/{courseId}/inscriptions/{inscriptionId}
// Окно курса возвращается в свободные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courseID, err := handlers.PathID(r, "courseId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	inscriptionID, err := handlers.PathID(r, "inscriptionId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.CancelInscription(r.Context(), courseID, inscriptionID)
	if err != nil {
		if errors.Is(err, courses.ErrInscriptionNotFound) {
			h.logger.Warn("DELETE /courses/{id}/inscriptions/{id} - Inscription not found: course_id=%d, inscription_id=%d",
				courseID, inscriptionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondDomainError(w, h.logger, "DELETE /courses/{id}/inscriptions/{id}", err)
		return
	}

	handlers.RespondNoContent(w, result.Warnings)
}
