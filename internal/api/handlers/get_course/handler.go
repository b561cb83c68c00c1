package get_course

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses"
)

const (
	msgInvalidCourseID = "некорректный ID курса"
	msgNotFound        = "курс не найден"
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

// Handle GET /api/v1/courses/{courseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courseID, err := handlers.PathID(r, "courseId")
	if err != nil {
		h.logger.Warn("GET /courses/{id} - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	result, err := h.service.GetByID(r.Context(), courseID)
	if err != nil {
		if errors.Is(err, courses.ErrCourseNotFound) {
			h.logger.Warn("GET /courses/{id} - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondDomainError(w, h.logger, "GET /courses/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
