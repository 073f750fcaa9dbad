package userservice

import "github.com/google/uuid"

// Vehicle модель автомобиля из UserService
type Vehicle struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	OwnerEmail string    `json:"owner_email"`
	Brand      string    `json:"brand"`
	Model      string    `json:"model"`
	VIN        string    `json:"vin"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
