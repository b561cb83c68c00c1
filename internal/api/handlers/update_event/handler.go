package update_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events"
)

const (
	msgInvalidEventID     = "некорректный ID события"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные параметры события"
	msgInvalidDateTime    = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound           = "событие не найдено"
	msgCancelled          = "событие отменено"
	msgCapacityTooLow     = "вместимость меньше числа записанных участников"
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

// Handle PUT /api/v1/events/{eventId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	eventID, err := handlers.PathID(r, "eventId")
	if err != nil {
		h.logger.Warn("PUT /events/{id} - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req UpdateEventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /events/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("PUT /events/{id} - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Update(r.Context(), eventID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			h.logger.Warn("PUT /events/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, events.ErrEventCancelled):
			h.logger.Warn("PUT /events/{id} - Event cancelled: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgCancelled)

		case errors.Is(err, events.ErrCapacityBelowRegistered):
			h.logger.Warn("PUT /events/{id} - Capacity below registered: event_id=%d", eventID)
			handlers.RespondBadRequest(w, msgCapacityTooLow)

		default:
			handlers.RespondDomainError(w, h.logger, "PUT /events/{id}", err)
		}
		return
	}

	h.logger.Info("PUT /events/{id} - Event updated successfully: event_id=%d, user_id=%d", eventID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
