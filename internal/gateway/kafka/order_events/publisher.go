package order_events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"launchpizza/internal/entities"
)

const eventTypeHeader = "event_type"

type Publisher struct {
	producer Producer
	topic    string
}

func New(producer Producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

// Publish отправляет событие синхронно; ключ - id заказа, поэтому события одного заказа
// попадают в одну партицию и читаются по порядку.
func (p *Publisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	payload, err := json.Marshal(toMessage(event))
	if err != nil {
		PublishedTotal.WithLabelValues(event.Type.String(), "marshal_error").Inc()
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(event.Order.ID, 10)),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(eventTypeHeader), Value: []byte(event.Type.String())},
		},
		Timestamp: event.OccurredAt,
	}

	start := time.Now()
	_, _, err = p.producer.SendMessage(msg)
	PublishDuration.WithLabelValues(event.Type.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		PublishedTotal.WithLabelValues(event.Type.String(), "error").Inc()
		return fmt.Errorf("send %s event to %s: %w", event.Type, p.topic, err)
	}

	PublishedTotal.WithLabelValues(event.Type.String(), "ok").Inc()
	return nil
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}

// Noop используется, когда Kafka выключена: события просто отбрасываются.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (Noop) Publish(context.Context, entities.OrderEvent) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
