package get_customer_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

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
	got *models.ListRequest
	err error
}

func (s *fakeService) ListCustomerAppointments(_ context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil
}

func TestHandler(t *testing.T) {
	svc := &fakeService{}
	r := httptest.NewRequest(http.MethodGet, "/customers/me/appointments?limit=3", nil)
	r = r.WithContext(middleware.WithUserEmail(r.Context(), "customer@mail.test"))
	w := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, &models.ListRequest{Email: "customer@mail.test", Limit: 3}, svc.got)
}

func TestHandler_MissingIdentity(t *testing.T) {
	w := httptest.NewRecorder()

	NewHandler(&fakeService{}, nopLogger{}).Handle(w, httptest.NewRequest(http.MethodGet, "/customers/me/appointments", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_InternalError(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/customers/me/appointments", nil)
	r = r.WithContext(middleware.WithUserEmail(r.Context(), "customer@mail.test"))
	w := httptest.NewRecorder()

	NewHandler(&fakeService{err: appointments.ErrInternal}, nopLogger{}).Handle(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
