package create_reservation_inscription

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "некорректные параметры записи"
	msgNotFound             = "бронирование не найдено"
	msgCancelled            = "бронирование отменено"
	msgOutsidersNotAllowed  = "сторонние участники не допускаются"
	msgFull                 = "свободных мест нет"
	msgAlreadyInscribed     = "участник уже записан"
	msgEventReservation     = "бронирование принадлежит событию, записывайтесь через /events"
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

// Handle POST /api/v1/reservations/{reservationId}/inscriptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/inscriptions - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req InscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/{id}/inscriptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	result, err := h.service.Inscribe(r.Context(), reservationID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, reservations.ErrReservationCancelled):
			handlers.RespondBadRequest(w, msgCancelled)
		case errors.Is(err, reservations.ErrOutsidersNotAllowed):
			handlers.RespondBadRequest(w, msgOutsidersNotAllowed)
		case errors.Is(err, reservations.ErrReservationFull):
			handlers.RespondError(w, http.StatusConflict, msgFull)
		case errors.Is(err, reservations.ErrAlreadyInscribed):
			handlers.RespondError(w, http.StatusConflict, msgAlreadyInscribed)
		case errors.Is(err, reservations.ErrEventReservation):
			handlers.RespondBadRequest(w, msgEventReservation)
		default:
			handlers.RespondDomainError(w, h.logger, "POST /reservations/{id}/inscriptions", err)
			return
		}
		h.logger.Warn("POST /reservations/{id}/inscriptions - Rejected: reservation_id=%d, member_id=%d, error=%v",
			reservationID, req.MemberID, err)
		return
	}

	h.logger.Info("POST /reservations/{id}/inscriptions - Member inscribed: reservation_id=%d, inscription_id=%d",
		reservationID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
