package cancel_event

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/events/models"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Cancel(ctx context.Context, id int64, userID int64) (*models.ActionResult, error) {
	args := m.Called(ctx, id, userID)
	resp, _ := args.Get(0).(*models.ActionResult)
	return resp, args.Error(1)
}

func performRequest(h *Handler, eventID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/events/"+eventID, nil)
	req = mux.SetURLVars(req, map[string]string{"eventId": eventID})
	req = req.WithContext(middleware.WithUserID(req.Context(), 5))

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_NoContentWithWarnings(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, int64(9), int64(5)).
		Return(&models.ActionResult{Changed: true, Warnings: []string{"notification not delivered"}}, nil)

	rec := performRequest(NewHandler(svc, logger.Discard()), "9")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
	assert.Equal(t, `199 - "notification not delivered"`, rec.Header().Get("Warning"))
	svc.AssertExpectations(t)
}

func TestHandle_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, int64(9), int64(5)).Return(nil, events.ErrEventNotFound)

	rec := performRequest(NewHandler(svc, logger.Discard()), "9")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	svc := &mockService{}

	rec := performRequest(NewHandler(svc, logger.Discard()), "nine")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}
