package get_garage_appointments

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

	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	got *models.GarageAppointmentsRequest
	err error
}

func (s *fakeService) ListGarageAppointments(_ context.Context, req *models.GarageAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func serve(svc *fakeService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/garages/{garageId}/appointments", NewHandler(svc, nopLogger{}).Handle)

	r := httptest.NewRequest(http.MethodGet, path, nil)
	r = r.WithContext(middleware.WithUserEmail(r.Context(), "owner@garage.test"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandler_ParsesFilters(t *testing.T) {
	garageID := uuid.New()
	svc := &fakeService{}

	w := serve(svc, "/garages/"+garageID.String()+"/appointments?date=2024-06-12&week=true&limit=50")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, garageID, svc.got.GarageID)
	assert.Equal(t, "owner@garage.test", svc.got.ActorEmail)
	require.NotNil(t, svc.got.Date)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), *svc.got.Date)
	assert.True(t, svc.got.Week)
	assert.Equal(t, 50, svc.got.Limit)
}

func TestHandler_Errors(t *testing.T) {
	garageID := uuid.NewString()

	tests := []struct {
		name string
		path string
		err  error
		want int
	}{
		{name: "bad garage id", path: "/garages/1/appointments", want: http.StatusBadRequest},
		{name: "bad date", path: "/garages/" + garageID + "/appointments?date=june", want: http.StatusBadRequest},
		{name: "bad week", path: "/garages/" + garageID + "/appointments?week=maybe", want: http.StatusBadRequest},
		{name: "week without date", path: "/garages/" + garageID + "/appointments", err: appointments.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", path: "/garages/" + garageID + "/appointments", err: appointments.ErrGarageNotFound, want: http.StatusNotFound},
		{name: "not owner", path: "/garages/" + garageID + "/appointments", err: appointments.ErrAccessDenied, want: http.StatusForbidden},
		{name: "internal", path: "/garages/" + garageID + "/appointments", err: appointments.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serve(&fakeService{err: tt.err}, tt.path).Code)
		})
	}
}
