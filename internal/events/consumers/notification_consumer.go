package consumers

import (
	"context"
	"fmt"

	"countdown-server/internal/clients/kafka"
	"countdown-server/internal/events"
	"countdown-server/internal/jobs"
	"countdown-server/internal/observability"

	"github.com/google/uuid"
)

// EventSource delivers events to a handler until ctx ends. *kafka.Consumer
// implements it.
type EventSource interface {
	ConsumeEvents(ctx context.Context, handler func(context.Context, kafka.EventMessage) error) error
}

// NotificationEnqueuer queues notification emails
type NotificationEnqueuer interface {
	EnqueueDayUnlockedEmail(ctx context.Context, payload jobs.DayUnlockedEmailPayload) error
}

// NotificationConsumer turns day.unlocked events into creator notification
// jobs. Other event types are acknowledged and ignored.
type NotificationConsumer struct {
	source   EventSource
	enqueuer NotificationEnqueuer
	logger   *observability.Logger
}

func NewNotificationConsumer(source EventSource, enqueuer NotificationEnqueuer, logger *observability.Logger) *NotificationConsumer {
	return &NotificationConsumer{
		source:   source,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// Start consumes until ctx is cancelled
func (c *NotificationConsumer) Start(ctx context.Context) error {
	c.logger.Info(ctx, "starting notification consumer")
	return c.source.ConsumeEvents(ctx, c.HandleEvent)
}

// HandleEvent processes one event. A malformed day.unlocked event is logged
// and skipped; an enqueue failure is returned so the event is not committed.
func (c *NotificationConsumer) HandleEvent(ctx context.Context, event kafka.EventMessage) error {
	if event.Type != events.TypeDayUnlocked {
		return nil
	}

	payload, err := dayUnlockedPayload(event.Data)
	if err != nil {
		c.logger.WarnWithError(ctx, "skipping malformed day.unlocked event", err)
		return nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "assignment_id", Value: payload.AssignmentID.String()},
		observability.Field{Key: "day", Value: payload.Day},
	)
	if err := c.enqueuer.EnqueueDayUnlockedEmail(ctx, payload); err != nil {
		c.logger.Error(ctx, "failed to enqueue day unlocked email", err)
		return err
	}
	return nil
}

func dayUnlockedPayload(data map[string]interface{}) (jobs.DayUnlockedEmailPayload, error) {
	var payload jobs.DayUnlockedEmailPayload
	var err error

	if payload.AssignmentID, err = uuidField(data, "assignment_id"); err != nil {
		return payload, err
	}
	if payload.CountdownID, err = uuidField(data, "countdown_id"); err != nil {
		return payload, err
	}
	if payload.ReceiverID, err = uuidField(data, "receiver_id"); err != nil {
		return payload, err
	}

	// JSON numbers decode as float64
	day, ok := data["day"].(float64)
	if !ok || day < 1 {
		return payload, fmt.Errorf("invalid day %v", data["day"])
	}
	payload.Day = int(day)
	return payload, nil
}

func uuidField(data map[string]interface{}, key string) (uuid.UUID, error) {
	s, _ := data[key].(string)
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", key, err)
	}
	return id, nil
}
