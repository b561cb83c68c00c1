package cancel_event_inscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events"
)

const (
	msgInvalidID = "некорректный ID события или записи"
	msgNotFound  = "запись не найдена"
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

// Handle DELETE /api/v1/events/{eventId}/inscriptions/{inscriptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	eventID, err := handlers.PathID(r, "eventId")
	if err != nil {
		h.logger.Warn("DELETE /events/{id}/inscriptions/{id} - Invalid event ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	inscriptionID, err := handlers.PathID(r, "inscriptionId")
	if err != nil {
		h.logger.Warn("DELETE /events/{id}/inscriptions/{id} - Invalid inscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.CancelInscription(r.Context(), eventID, inscriptionID)
	if err != nil {
		if errors.Is(err, events.ErrInscriptionNotFound) {
			h.logger.Warn("DELETE /events/{id}/inscriptions/{id} - Inscription not found: event_id=%d, inscription_id=%d",
				eventID, inscriptionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondDomainError(w, h.logger, "DELETE /events/{id}/inscriptions/{id}", err)
		return
	}

	handlers.RespondNoContent(w, result.Warnings)
}
