package get_space_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	getSpaceSchedule "github.com/m04kA/SMC-ClubSpacesService/internal/usecase/get_space_schedule"
)

const (
	msgInvalidSpaceID = "некорректный ID площадки"
	msgMissingDate    = "дата обязательна"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound       = "площадка не найдена"
)

type Handler struct {
	useCase GetSpaceScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetSpaceScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spaces/{spaceId}/schedule
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	spaceID, err := handlers.PathID(r, "spaceId")
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/schedule - Invalid space ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpaceID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /spaces/{id}/schedule - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(spaceID, dateStr)
	if err != nil {
		h.logger.Warn("GET /spaces/{id}/schedule - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, getSpaceSchedule.ErrSpaceNotFound) {
			h.logger.Warn("GET /spaces/{id}/schedule - Space not found: space_id=%d", spaceID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		handlers.RespondDomainError(w, h.logger, "GET /spaces/{id}/schedule", err)
		return
	}

	h.logger.Info("GET /spaces/{id}/schedule - Schedule retrieved: space_id=%d, occupied=%d, free=%d",
		spaceID, len(result.Occupied), len(result.Free))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
