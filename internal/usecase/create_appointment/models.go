package create_appointment

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание записи
type Request struct {
	GarageID      uuid.UUID // ID гаража
	VehicleID     uuid.UUID // ID автомобиля
	SelectedDate  time.Time // Дата записи (без времени)
	Area          string    // Направление работ ("ENGINE", "MECHANIC_ENGINE", ...)
	Details       string    // Описание проблемы
	CustomerEmail string    // Email вызывающего; пусто - проверка владельца не выполняется
}

// Response модель ответа с созданной записью
type Response struct {
	ID            uuid.UUID
	GarageID      uuid.UUID
	VehicleID     uuid.UUID
	EmployeeID    uuid.UUID
	Area          string
	SelectedDate  time.Time
	Details       string
	Status        string
	CustomerEmail string

	// Денормализованные данные для ответа
	EmployeeName string
	GarageName   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
