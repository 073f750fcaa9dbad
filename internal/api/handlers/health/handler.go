package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

const checkTimeout = 2 * time.Second

// Check именованная проверка зависимости для /readyz
type Check struct {
	Name  string
	Check func(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

type Handler struct {
	checks []Check
	logger Logger
}

func NewHandler(logger Logger, checks ...Check) *Handler {
	return &Handler{
		checks: checks,
		logger: logger,
	}
}

// Live GET /healthz
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready GET /readyz - проверяет БД, Redis и т.д.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	failures := make(map[string]string)

	for _, c := range h.checks {
		if c.Check == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
		err := c.Check(ctx)
		cancel()
		if err != nil {
			failures[c.Name] = err.Error()
		}
	}

	if len(failures) > 0 {
		h.logger.Warn("GET /readyz - Not ready: %v", failures)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unavailable",
			"checks": failures,
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
