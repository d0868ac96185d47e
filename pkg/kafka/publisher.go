package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"presscraft/pkg/config"
	"presscraft/pkg/logger"
)

// Event is the envelope of every domain event written to the topic.
type Event struct {
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

// Publisher sends domain events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, eventType, key string, payload interface{}) error
	Close() error
}

type publisher struct {
	writer *kafka.Writer
	log    *logger.Logger
}

// NewPublisher returns a Kafka-backed Publisher, or a no-op one when
// publishing is disabled in the configuration.
func NewPublisher(cfg config.Kafka, log *logger.Logger) Publisher {
	if !cfg.Enabled || len(cfg.Brokers) == 0 {
		log.Info("Kafka publishing disabled")
		return nopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	log.Info("Kafka publisher initialized", logger.StringField("topic", cfg.Topic))
	return &publisher{writer: writer, log: log}
}

func (p *publisher) Publish(ctx context.Context, eventType, key string, payload interface{}) error {
	value, err := json.Marshal(Event{Type: eventType, OccurredAt: time.Now(), Payload: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}

	p.log.Debug("Published event", logger.StringField("type", eventType), logger.StringField("key", key))
	return nil
}

func (p *publisher) Close() error {
	return p.writer.Close()
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, string, interface{}) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}
