package update_reservation

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
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "некорректные параметры бронирования"
	msgInvalidDateTime      = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgNotFound             = "бронирование не найдено"
	msgCancelled            = "бронирование отменено"
	msgCapacityTooLow       = "вместимость меньше числа записанных участников"
	msgEventReservation     = "бронирование принадлежит событию, измените событие через /events"
	msgAccessDenied         = "изменять бронирование может только его автор или сотрудник клуба"
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

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	reservationID, err := handlers.PathID(r, "reservationId")
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		h.logger.Warn("PUT /reservations/{id} - Validation failed: %v", details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse date/time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.service.Update(r.Context(), reservationID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrReservationNotFound), errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, booking.ErrReservationCancelled):
			h.logger.Warn("PUT /reservations/{id} - Reservation cancelled: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCancelled)

		case errors.Is(err, reservations.ErrCapacityBelowInscriptions):
			h.logger.Warn("PUT /reservations/{id} - Capacity below inscriptions: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCapacityTooLow)

		case errors.Is(err, reservations.ErrEventReservation):
			h.logger.Warn("PUT /reservations/{id} - Reservation belongs to an event: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgEventReservation)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("PUT /reservations/{id} - Access denied: reservation_id=%d, user_id=%d", reservationID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			handlers.RespondDomainError(w, h.logger, "PUT /reservations/{id}", err)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d, user_id=%d",
		reservationID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
