package create_appointment

import "errors"

var (
	// ErrGarageNotFound возвращается, когда гараж не найден
	ErrGarageNotFound = errors.New("create_appointment: garage not found")

	// ErrVehicleNotFound возвращается, когда автомобиль не найден
	ErrVehicleNotFound = errors.New("create_appointment: vehicle not found")

	// ErrVehicleNotOwned возвращается, когда автомобиль принадлежит другому пользователю
	ErrVehicleNotOwned = errors.New("create_appointment: vehicle belongs to another user")

	// ErrGarageClosed возвращается, когда гараж не работает в выбранную дату
	ErrGarageClosed = errors.New("create_appointment: garage is closed on this date")

	// ErrInvalidArea возвращается для неизвестного направления
	ErrInvalidArea = errors.New("create_appointment: invalid service area")

	// ErrNoEmployeeAvailable возвращается, когда в гараже нет сотрудников нужного направления
	ErrNoEmployeeAvailable = errors.New("create_appointment: no employee available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
