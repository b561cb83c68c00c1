package create_event_inscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events"
)

const (
	msgInvalidEventID      = "некорректный ID события"
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgValidationFailed    = "некорректные параметры записи"
	msgNotFound            = "событие не найдено"
	msgCancelled           = "событие отменено"
	msgOutsidersNotAllowed = "сторонние участники не допускаются"
	msgFull                = "свободных мест нет"
	msgAlreadyInscribed    = "участник уже записан"
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

// Handle POST /api/v1/events/{eventId}/inscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := handlers.PathID(r, "eventId")
	if err != nil {
		h.logger.Warn("POST /events/{id}/inscriptions - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventID)
		return
	}

	var req InscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /events/{id}/inscriptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	result, err := h.service.Inscribe(r.Context(), eventID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, events.ErrEventNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, events.ErrEventCancelled):
			handlers.RespondBadRequest(w, msgCancelled)
		case errors.Is(err, events.ErrOutsidersNotAllowed):
			handlers.RespondBadRequest(w, msgOutsidersNotAllowed)
		case errors.Is(err, events.ErrEventFull):
			handlers.RespondError(w, http.StatusConflict, msgFull)
		case errors.Is(err, events.ErrAlreadyInscribed):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyInscribed)
		default:
			handlers.RespondDomainError(w, h.logger, "POST /events/{id}/inscriptions", err)
			return
		}
		h.logger.Warn("POST /events/{id}/inscriptions - Rejected: event_id=%d, member_id=%d, error=%v",
			eventID, req.MemberID, err)
		return
	}

	h.logger.Info("POST /events/{id}/inscriptions - Member inscribed: event_id=%d, inscription_id=%d, price=%.2f",
		eventID, result.ID, result.Price)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
