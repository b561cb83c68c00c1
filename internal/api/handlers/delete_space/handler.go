package delete_space

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/spaces"
)

const (
	msgInvalidSpaceID = "некорректный ID площадки"
	msgNotFound       = "площадка не найдена"
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

// Handle DELETE /api/v1/spaces/{spaceId}
// Мягкое удаление: площадка становится недоступной, история бронирований сохраняется
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := handlers.PathID(r, "spaceId")
	if err != nil {
		h.logger.Warn("DELETE /spaces/{id} - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	if err := h.service.Delete(r.Context(), spaceID); err != nil {
		if errors.Is(err, spaces.ErrSpaceNotFound) {
			h.logger.Warn("DELETE /spaces/{id} - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondDomainError(w, h.logger, "DELETE /spaces/{id}", err)
		return
	}

	h.logger.Info("DELETE /spaces/{id} - Space deleted: space_id=%d", spaceID)
	handlers.RespondNoContent(w, nil)
}
