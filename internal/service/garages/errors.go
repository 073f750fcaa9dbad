package garages

import "errors"

var (
	// ErrGarageNotFound возвращается, когда гараж не найден
	ErrGarageNotFound = errors.New("garages: garage not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("garages: internal error")
)
