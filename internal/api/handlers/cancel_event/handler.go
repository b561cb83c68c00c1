package cancel_event

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events"
)

const (
	msgInvalidEventID = "некорректный ID события"
	msgNotFound       = "событие не найдено"
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

// Handle DELETE /api/v1/events/{eventId}
// Отменяет событие вместе с бронированием и всеми записями
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	eventID, err := handlers.PathID(r, "eventId")
	if err != nil {
		h.logger.Warn("DELETE /events/{id} - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	result, err := h.service.Cancel(r.Context(), eventID, userID)
	if err != nil {
		if errors.Is(err, events.ErrEventNotFound) {
			h.logger.Warn("DELETE /events/{id} - Event not found: event_id=%d", eventID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondDomainError(w, h.logger, "DELETE /events/{id}", err)
		return
	}

	h.logger.Info("DELETE /events/{id} - Event cancelled: event_id=%d, user_id=%d, changed=%t",
		eventID, userID, result.Changed)
	handlers.RespondNoContent(w, result.Warnings)
}
