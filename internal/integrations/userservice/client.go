package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetVehicle получает автомобиль по ID вместе с email владельца
func (c *Client) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*Vehicle, error) {
	url := fmt.Sprintf("%s/internal/vehicles/%s", c.baseURL, vehicleID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("UserService request failed for vehicle_id=%s: %v", vehicleID, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrVehicleNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid vehicle ID format", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		var errResp ErrorResponse
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var vehicle Vehicle
	if err := json.NewDecoder(resp.Body).Decode(&vehicle); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if vehicle.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: empty vehicle id", ErrInvalidResponse)
	}

	return &vehicle, nil
}

// IsNotFound проверяет, что ошибка означает отсутствие автомобиля
func IsNotFound(err error) bool {
	return errors.Is(err, ErrVehicleNotFound)
}
