package update_appointment_status

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment_status: appointment not found")

	// ErrInvalidStatus возвращается для неизвестного статуса или попытки выставить PENDING
	ErrInvalidStatus = errors.New("update_appointment_status: invalid status")

	// ErrUnauthorized возвращается, когда статус меняет не назначенный сотрудник
	ErrUnauthorized = errors.New("update_appointment_status: only the assigned employee can change the status")

	// ErrAppointmentFinal возвращается для уже отмененной записи
	ErrAppointmentFinal = errors.New("update_appointment_status: appointment is cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment_status: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment_status: internal error")
)
