package kafka

import (
	"context"
	"fmt"
	"time"

	"countdown-server/internal/observability"

	"github.com/segmentio/kafka-go"
)

const defaultWriteTimeout = 5 * time.Second

// Producer writes countdown events to one topic
type Producer struct {
	writer *kafka.Writer
	logger *observability.Logger
}

// ProducerConfig contains configuration for Kafka producer
type ProducerConfig struct {
	Brokers []string
	Topic   string
	// WriteTimeout bounds a single publish. Zero means five seconds.
	WriteTimeout time.Duration
}

// NewProducer creates a new Kafka producer
func NewProducer(config ProducerConfig, logger *observability.Logger) *Producer {
	if config.WriteTimeout == 0 {
		config.WriteTimeout = defaultWriteTimeout
	}

	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(config.Brokers...),
			Topic:        config.Topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			Compression:  kafka.Snappy,
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: config.WriteTimeout,
		},
		logger: logger,
	}
}

// PublishEvent writes one event and waits for the leader ack
func (p *Producer) PublishEvent(ctx context.Context, event EventMessage) error {
	ctx = observability.WithFields(ctx, event.logFields()...)

	msg, err := event.toMessage()
	if err != nil {
		p.logger.Error(ctx, "failed to encode event", err)
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error(ctx, "failed to publish event", err)
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	p.logger.Debug(ctx, "event published")
	return nil
}

// Close flushes pending writes and closes the producer
func (p *Producer) Close() error {
	return p.writer.Close()
}
