package publish_course_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses"
)

const (
	msgInvalidCourseID    = "некорректный ID курса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные параметры расписания"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "курс не найден"
	msgCourseInactive     = "курс не активен"
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

// Handle POST /api/v1/courses/{courseId}/slots
// Публикует окна курса пачкой; при конфликте хотя бы одного окна не публикуется ничего
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	courseID, err := handlers.PathID(r, "courseId")
	if err != nil {
		h.logger.Warn("POST /courses/{id}/slots - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	var req PublishSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courses/{id}/slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /courses/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.PublishWindows(r.Context(), courseID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, courses.ErrCourseNotFound):
			h.logger.Warn("POST /courses/{id}/slots - Course not found: course_id=%d", courseID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, courses.ErrCourseInactive):
			handlers.RespondBadRequest(w, msgCourseInactive)

		default:
			handlers.RespondDomainError(w, h.logger, "POST /courses/{id}/slots", err)
		}
		return
	}

	h.logger.Info("POST /courses/{id}/slots - Windows published: course_id=%d, count=%d", courseID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
