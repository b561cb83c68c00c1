package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClubSpacesService/internal/api/handlers"
	"github.com/m04kA/SMC-ClubSpacesService/internal/api/middleware"
	"github.com/m04kA/SMC-ClubSpacesService/internal/domain"
	"github.com/m04kA/SMC-ClubSpacesService/internal/service/reservations/models"
	"github.com/m04kA/SMC-ClubSpacesService/internal/usecase/booking"
	"github.com/m04kA/SMC-ClubSpacesService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreateReservationRequest) (*models.ReservationResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.ReservationResponse)
	return resp, args.Error(1)
}

func performRequest(h *Handler, body interface{}, userID int64) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", &buf)
	if userID > 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"spaceId":   3,
		"date":      "2026-07-01",
		"startHour": "10:30",
		"endHour":   "11:30",
		"name":      "Doubles",
		"capacity":  2,
	}
}

func TestHandle_Created(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *models.CreateReservationRequest) bool {
		return req.UserID == 7 && req.SpaceID == 3 &&
			req.Start.Equal(time.Date(2026, time.July, 1, 10, 30, 0, 0, time.UTC)) &&
			req.End.Equal(time.Date(2026, time.July, 1, 11, 30, 0, 0, time.UTC))
	})).Return(&models.ReservationResponse{ID: 11, SpaceID: 3}, nil)

	rec := performRequest(NewHandler(svc, logger.Discard()), validBody(), 7)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var resp models.ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(11), resp.ID)
	svc.AssertExpectations(t)
}

func TestHandle_Conflict(t *testing.T) {
	svc := &mockService{}
	conflict := &domain.ConflictError{
		SpaceID: 3,
		Day:     time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC),
		Start:   time.Date(2026, time.July, 1, 10, 0, 0, 0, time.UTC),
		End:     time.Date(2026, time.July, 1, 11, 0, 0, 0, time.UTC),
	}
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("reservations: Create: %w", conflict))

	rec := performRequest(NewHandler(svc, logger.Discard()), validBody(), 7)

	require.Equal(t, http.StatusConflict, rec.Code)
	var resp handlers.ConflictResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "10:00 - 11:00", resp.Window)
	assert.Equal(t, "2026-07-01", resp.Date)
	assert.Equal(t, int64(3), resp.SpaceID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "space not found", err: booking.ErrSpaceNotFound, status: http.StatusNotFound},
		{name: "not reservable", err: booking.ErrSpaceNotReservable, status: http.StatusBadRequest},
		{name: "unavailable", err: booking.ErrSpaceUnavailable, status: http.StatusBadRequest},
		{name: "integrity", err: fmt.Errorf("slot missing: %w", domain.ErrIntegrity), status: http.StatusInternalServerError},
		{name: "internal", err: booking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := performRequest(NewHandler(svc, logger.Discard()), validBody(), 7)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "slot missing")
			}
		})
	}
}

func TestHandle_RejectsBeforeService(t *testing.T) {
	svc := &mockService{}
	h := NewHandler(svc, logger.Discard())

	rec := performRequest(h, validBody(), 0)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	body := validBody()
	delete(body, "name")
	rec = performRequest(h, body, 7)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "details")

	body = validBody()
	body["date"] = "01.07.2026"
	rec = performRequest(h, body, 7)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = validBody()
	body["startHour"] = "2026-07-02T10:00:00Z"
	rec = performRequest(h, body, 7)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body = validBody()
	body["unknown"] = true
	rec = performRequest(h, body, 7)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
