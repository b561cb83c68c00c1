package update_space

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces"
)

const (
	msgInvalidSpaceID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные параметры площадки"
	msgNotFound           = "площадка не найдена"
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

// Handle PUT /api/v1/spaces/{spaceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := handlers.PathID(r, "spaceId")
	if err != nil {
		h.logger.Warn("PUT /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	var req UpdateSpaceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spaces/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if details := handlers.Validate(&req); details != nil {
		h.logger.Warn("PUT /spaces/{id} - Validation failed: space_id=%d, %v", spaceID, details)
		handlers.RespondValidationError(w, msgValidationFailed, details)
		return
	}

	result, err := h.service.Update(r.Context(), spaceID, req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, spaces.ErrSpaceNotFound) {
			h.logger.Warn("PUT /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondDomainError(w, h.logger, "PUT /spaces/{id}", err)
		return
	}

	h.logger.Info("PUT /spaces/{id} - Space updated successfully: space_id=%d", spaceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
