package unpark_vehicle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	unparkVehicle "github.com/m04kA/SMC-ParkingService/internal/usecase/unpark_vehicle"
	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *unparkVehicle.Response
	err  error

	gotTicketID string
}

func (s *stubUseCase) Execute(ctx context.Context, req *unparkVehicle.Request) (*unparkVehicle.Response, error) {
	s.gotTicketID = req.TicketID
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func doRequest(t *testing.T, uc UnparkVehicleUseCase, ticketID string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/tickets/{ticketId}/close", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tickets/"+ticketID+"/close", nil)
	req.Header.Set("X-Terminal-ID", "gate-2")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Closed(t *testing.T) {
	issuedAt := time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &unparkVehicle.Response{
		TicketID:     "t-1",
		LicensePlate: "A001AA",
		SpotID:       101,
		LevelNumber:  1,
		AmountDue:    types.Money(2000),
		IssuedAt:     issuedAt,
		ClosedAt:     issuedAt.Add(2 * time.Hour),
	}}

	rec := doRequest(t, uc, "t-1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "t-1", uc.gotTicketID)

	var resp ClosedTicketResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "20.00", resp.AmountDue)
	assert.Equal(t, int64(101), resp.SpotID)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", unparkVehicle.ErrTicketNotFound, http.StatusNotFound},
		{"already closed", unparkVehicle.ErrTicketAlreadyClosed, http.StatusConflict},
		{"invalid input", unparkVehicle.ErrInvalidInput, http.StatusBadRequest},
		{"internal", unparkVehicle.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubUseCase{err: tt.err}, "t-1")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
