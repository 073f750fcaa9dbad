package create_appointment

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.GarageID == uuid.Nil {
		return fmt.Errorf("%w: garageId is required", ErrInvalidInput)
	}

	if req.VehicleID == uuid.Nil {
		return fmt.Errorf("%w: vehicleId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.SelectedDate.IsZero() {
		return fmt.Errorf("%w: selectedDate is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(req.Details) > domain.MaxDetailsLength {
		return fmt.Errorf("%w: details must be at most %d characters", ErrInvalidInput, domain.MaxDetailsLength)
	}

	return nil
}
