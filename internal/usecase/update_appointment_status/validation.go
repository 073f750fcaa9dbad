package update_appointment_status

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует запрос и возвращает целевой статус
// PENDING выставляется только при переназначении
func validateRequest(req *Request) (domain.AppointmentStatus, error) {
	if req.AppointmentID == uuid.Nil {
		return "", fmt.Errorf("%w: appointmentId is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ActingEmployeeEmail) == "" {
		return "", fmt.Errorf("%w: acting employee is unknown", ErrUnauthorized)
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if status == domain.StatusPending {
		return "", fmt.Errorf("%w: %s cannot be set explicitly", ErrInvalidStatus, status)
	}

	return status, nil
}
