package list_spaces

import (
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
)

const (
	msgInvalidAvailable = "параметр available должен быть true или false"
)

type Handler struct {
	service SpaceService
	logger  Logger
}

func NewHandler(service SpaceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces
// Query params: category (optional), available (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /spaces - Invalid available filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAvailable)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		handlers.RespondDomainError(w, h.logger, "GET /spaces", err)
		return
	}

	h.logger.Info("GET /spaces - Spaces retrieved: count=%d", len(result.Spaces))
	handlers.RespondJSON(w, http.StatusOK, result)
}
