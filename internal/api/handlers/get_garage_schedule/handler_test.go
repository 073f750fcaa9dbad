package get_garage_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/service/garages"
	"github.com/m04kA/SMC-AppointmentService/internal/service/garages/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	gotDate *time.Time
	err     error
}

func (s *fakeService) GetSchedule(_ context.Context, garageID uuid.UUID, date *time.Time) (*models.ScheduleResponse, error) {
	s.gotDate = date
	if s.err != nil {
		return nil, s.err
	}
	return &models.ScheduleResponse{GarageID: garageID, OpenNow: true}, nil
}

func serve(svc *fakeService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/garages/{garageId}/schedule", NewHandler(svc, nopLogger{}).Handle)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestHandler(t *testing.T) {
	garageID := uuid.NewString()
	svc := &fakeService{}

	w := serve(svc, "/garages/"+garageID+"/schedule?date=2024-06-16")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.gotDate)
	assert.Equal(t, time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), *svc.gotDate)
	assert.Contains(t, w.Body.String(), `"openNow":true`)
}

func TestHandler_Errors(t *testing.T) {
	garageID := uuid.NewString()

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/garages/x/schedule").Code)
	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "/garages/"+garageID+"/schedule?date=16-06-2024").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: garages.ErrGarageNotFound}, "/garages/"+garageID+"/schedule").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: garages.ErrInternal}, "/garages/"+garageID+"/schedule").Code)
}
