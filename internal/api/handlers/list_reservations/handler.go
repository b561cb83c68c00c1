package list_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
)

const (
	msgInvalidQuery = "некорректные параметры запроса: spaceId обязателен, date в формате YYYY-MM-DD"
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

// Handle GET /api/v1/reservations
// Query params: spaceId (required), date (optional, YYYY-MM-DD), includeCancelled (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		handlers.RespondDomainError(w, h.logger, "GET /reservations", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
