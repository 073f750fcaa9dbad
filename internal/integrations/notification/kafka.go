package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// Заголовки сообщения
const (
	HeaderEventID   = "event_id"
	HeaderEventType = "event_type"
)

// Event тело сообщения в топике уведомлений
type Event struct {
	EventID       string            `json:"event_id"`
	EventType     string            `json:"event_type"`
	Recipient     string            `json:"recipient"`
	AppointmentID string            `json:"appointment_id"`
	Payload       map[string]string `json:"payload"`
	Subject       string            `json:"subject"`
	Body          string            `json:"body"`
	OccurredAt    time.Time         `json:"occurred_at"`
}

// KafkaGateway публикует уведомления в Kafka для сервиса рассылок
// Ключ сообщения - ID записи, все события одной записи попадают в одну партицию
type KafkaGateway struct {
	writer MessageWriter
	now    func() time.Time
}

// NewKafkaGateway создает транспорт поверх writer
func NewKafkaGateway(writer MessageWriter) *KafkaGateway {
	return &KafkaGateway{writer: writer, now: time.Now}
}

// NewKafkaWriter создает writer для топика с балансировкой по ключу
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// SplitBrokers разбирает список брокеров через запятую
func SplitBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// Send публикует событие
func (g *KafkaGateway) Send(ctx context.Context, n domain.Notification) error {
	if n.Recipient == "" {
		return ErrEmptyRecipient
	}

	msg, err := Render(n)
	if err != nil {
		return err
	}

	event := Event{
		EventID:       n.ID.String(),
		EventType:     string(n.Event),
		Recipient:     n.Recipient,
		AppointmentID: n.AppointmentID.String(),
		Payload:       n.Payload,
		Subject:       msg.Subject,
		Body:          msg.Body,
		OccurredAt:    g.now().UTC(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	err = g.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.AppointmentID),
		Value: value,
		Headers: []kafka.Header{
			{Key: HeaderEventID, Value: []byte(event.EventID)},
			{Key: HeaderEventType, Value: []byte(event.EventType)},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: kafka write %s: %v", ErrSend, event.EventType, err)
	}

	return nil
}

// Close закрывает writer
func (g *KafkaGateway) Close() error {
	return g.writer.Close()
}
