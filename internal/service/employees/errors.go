package employees

import "errors"

var (
	// ErrInvalidArea возвращается для направления вне закрытого списка
	ErrInvalidArea = errors.New("employees: invalid service area")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("employees: internal error")
)
