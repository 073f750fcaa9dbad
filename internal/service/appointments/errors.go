package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointments: appointment not found")

	// ErrGarageNotFound возвращается, когда гараж не найден
	ErrGarageNotFound = errors.New("appointments: garage not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник с таким email не найден
	ErrEmployeeNotFound = errors.New("appointments: employee not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("appointments: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("appointments: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
