package create_course

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/courses"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные параметры курса"
	msgSpaceNotFound      = "площадка не найдена"
	msgSpaceUnavailable   = "площадка недоступна"
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

// Handle POST /api/v1/courses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateCourseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /courses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, courses.ErrSpaceNotFound):
			h.logger.Warn("POST /courses - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, courses.ErrSpaceUnavailable):
			h.logger.Warn("POST /courses - Space unavailable: space_id=%d", req.SpaceID)
			handlers.RespondBadRequest(w, msgSpaceUnavailable)

		default:
			handlers.RespondDomainError(w, h.logger, "POST /courses", err)
		}
		return
	}

	h.logger.Info("POST /courses - Course created successfully: course_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
