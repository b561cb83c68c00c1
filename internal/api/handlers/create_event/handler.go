package create_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные параметры события"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgSpaceNotFound      = "площадка не найдена"
	msgSpaceUnavailable   = "площадка недоступна"
)

type Handler struct {
	service EventService
	logger  Logger
}

func NewHandler(service EventService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		h.logger.Warn("POST /events - Validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("POST /events - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSpaceNotFound):
			h.logger.Warn("POST /events - Space not found: space_id=%d", req.SpaceID)
			handlers.RespondNotFound(w, msgSpaceNotFound)

		case errors.Is(err, booking.ErrSpaceUnavailable):
			h.logger.Warn("POST /events - Space unavailable: space_id=%d", req.SpaceID)
			handlers.RespondBadRequest(w, msgSpaceUnavailable)

		default:
			handlers.RespondDomainError(w, h.logger, "POST /events", err)
		}
		return
	}

	h.logger.Info("POST /events - Event created successfully: event_id=%d, reservation_id=%d, user_id=%d",
		result.ID, result.ReservationID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
