// Package broker publishes order lifecycle events to Kafka.
package broker

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/tracing"
	"storefront/internal/usecase/commands"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel/attribute"
)

const publishTimeout = 5 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes events keyed by order id, so all events of one order land on one partition in order.
type Publisher struct {
	writer messageWriter
	topic  string
}

// Closer is implemented by every publisher returned from NewPublisher.
type Closer interface {
	commands.EventPublisher
	Close() error
}

// NewPublisher returns a no-op publisher when no brokers are configured.
func NewPublisher(cfg config.KafkaConfig) Closer {
	if len(cfg.Brokers) == 0 || (len(cfg.Brokers) == 1 && cfg.Brokers[0] == "") {
		slog.Info("Kafka brokers not configured, order events are not published")
		return NoopPublisher{}
	}
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.OrderEventsTopic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: 10 * time.Second,
		ReadTimeout:  10 * time.Second,
	}, cfg.OrderEventsTopic)
}

func newPublisher(w messageWriter, topic string) *Publisher {
	return &Publisher{writer: w, topic: topic}
}

func (p *Publisher) Publish(ctx context.Context, key string, event commands.OrderEvent) error {
	ctx, span := tracing.StartSpan(ctx, "broker.publish")
	defer span.End()
	span.SetAttributes(
		attribute.String("messaging.destination", p.topic),
		attribute.String("event.type", event.Type),
	)

	value, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to marshal order event")
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
	})
	if err != nil {
		return errs.Wrapf(err, "failed to write %s event to %s", event.Type, p.topic)
	}

	slog.Debug("Published order event", "key", key, "type", event.Type)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, commands.OrderEvent) error { return nil }
func (NoopPublisher) Close() error                                               { return nil }
