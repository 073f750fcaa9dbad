package notifications

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const DefaultSendTimeout = 10 * time.Second

// Результаты для метрик
const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

// Dispatcher отправляет уведомления в отдельных горутинах
// Вызывающий код не ждёт доставки и не получает ошибок
type Dispatcher struct {
	gateway Gateway
	metrics MetricsRecorder
	logger  Logger
	timeout time.Duration

	mu     sync.RWMutex
	wg     sync.WaitGroup
	closed bool
}

// NewDispatcher создает диспетчер уведомлений
func NewDispatcher(gateway Gateway, metrics MetricsRecorder, logger Logger, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultSendTimeout
	}
	return &Dispatcher{
		gateway: gateway,
		metrics: metrics,
		logger:  logger,
		timeout: timeout,
	}
}

// Dispatch ставит уведомление в отправку и сразу возвращает управление
func (d *Dispatcher) Dispatch(n domain.Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Notify: dispatcher is closed, dropping %s for appointment=%s", n.Event, n.AppointmentID)
		d.metrics.IncNotification(string(n.Event), ResultDropped)
		return
	}
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}

	d.wg.Add(1)
	go d.send(n)
}

func (d *Dispatcher) send(n domain.Notification) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Notify: panic while sending %s for appointment=%s: %v", n.Event, n.AppointmentID, r)
			d.metrics.IncNotification(string(n.Event), ResultFailed)
		}
	}()

	// Контекст не связан с запросом: запрос может завершиться раньше отправки
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.gateway.Send(ctx, n); err != nil {
		d.logger.Error("Notify: failed to send %s to=%s appointment=%s: %v", n.Event, n.Recipient, n.AppointmentID, err)
		d.metrics.IncNotification(string(n.Event), ResultFailed)
		return
	}

	d.logger.Info("Notify: sent %s to=%s appointment=%s", n.Event, n.Recipient, n.AppointmentID)
	d.metrics.IncNotification(string(n.Event), ResultSent)
}

// Shutdown перестаёт принимать уведомления и ждёт завершения начатых отправок
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrShutdownTimeout, ctx.Err())
	}
}
