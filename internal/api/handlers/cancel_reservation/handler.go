package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgNotFound             = "бронирование не найдено"
	msgEventReservation     = "бронирование принадлежит событию, отмените событие через /events"
	msgAccessDenied         = "отменять бронирование может только его автор или сотрудник клуба"
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

// Handle DELETE /api/v1/reservations/{reservationId}
// Освобождает площадку; повторный вызов тоже отвечает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("DELETE /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.Cancel(r.Context(), reservationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrReservationNotFound), errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("DELETE /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrEventReservation):
			h.logger.Warn("DELETE /reservations/{id} - Reservation belongs to an event: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgEventReservation)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("DELETE /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			handlers.RespondDomainError(w, h.logger, "DELETE /reservations/{id}", err)
		}
		return
	}

	h.logger.Info("DELETE /reservations/{id} - Reservation released: reservation_id=%d, user_id=%d, changed=%t",
		reservationID, userID, result.Changed)
	handlers.RespondNoContent(w, result.Warnings)
}
