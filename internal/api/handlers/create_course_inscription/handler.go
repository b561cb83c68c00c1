package create_course_inscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
)

const (
	msgInvalidCourseID    = "некорректный ID курса"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные параметры записи"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "курс не найден"
	msgWindowNotFound     = "окно курса не опубликовано"
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

// Handle POST /api/v1/courses/{courseId}/inscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	courseID, err := handlers.PathID(r, "courseId")
	if err != nil {
		h.logger.Warn("POST /courses/{id}/inscriptions - Invalid course ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourseID)
		return
	}

	var req InscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courses/{id}/inscriptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /courses/{id}/inscriptions - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Inscribe(r.Context(), courseID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, courses.ErrCourseNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, booking.ErrWindowNotFound):
			handlers.RespondNotFound(w, msgWindowNotFound)
		case errors.Is(err, courses.ErrCourseInactive):
			handlers.RespondBadRequest(w, msgCourseInactive)
		default:
			handlers.RespondDomainError(w, h.logger, "POST /courses/{id}/inscriptions", err)
			return
		}
		h.logger.Warn("POST /courses/{id}/inscriptions - Rejected: course_id=%d, member_id=%d, error=%v",
			courseID, req.MemberID, err)
		return
	}

	h.logger.Info("POST /courses/{id}/inscriptions - Member inscribed: course_id=%d, inscription_id=%d, slot_id=%d",
		courseID, result.ID, result.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
