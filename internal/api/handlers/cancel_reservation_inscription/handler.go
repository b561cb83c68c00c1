package cancel_reservation_inscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations"
)

const (
	msgInvalidID = "некорректный ID бронирования или записи"
	msgNotFound  = "запись не найдена"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/reservations/{reservationId}/inscriptions/{inscriptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/inscriptions/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	inscriptionID, err := handlers.PathID(r, "inscriptionId")
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id}/inscriptions/{id} - Invalid inscription ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.CancelInscription(r.Context(), reservationID, inscriptionID)
	if err != nil {
		if errors.Is(err, reservations.ErrInscriptionNotFound) {
			h.logger.Warn("DELETE /reservations/{id}/inscriptions/{id} - Inscription not found: reservation_id=%d, inscription_id=%d",
				reservationID, inscriptionID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondDomainError(w, h.logger, "DELETE /reservations/{id}/inscriptions/{id}", err)
		return
	}

	handlers.RespondNoContent(w, result.Warnings)
}
