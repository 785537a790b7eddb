package events

import (
	"context"
	"time"

	"countdown-server/internal/clients/kafka"
	"countdown-server/internal/store"

	"github.com/google/uuid"
)

const (
	TypeAssignmentCreated  = "assignment.created"
	TypeInvitationAccepted = "invitation.accepted"
	TypeDayUnlocked        = "day.unlocked"
)

// EventWriter is the transport events are written to. *kafka.Producer
// implements it.
type EventWriter interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Publisher turns domain changes into events. Without a writer (Kafka
// disabled) every publish is a no-op.
type Publisher struct {
	writer EventWriter
	now    func() time.Time
}

// NewPublisher creates a new event publisher. writer may be nil.
func NewPublisher(writer EventWriter) *Publisher {
	return &Publisher{
		writer: writer,
		now:    time.Now,
	}
}

// PublishAssignmentCreated publishes an assignment.created event
func (p *Publisher) PublishAssignmentCreated(ctx context.Context, assignment store.Assignment) error {
	return p.publish(ctx, TypeAssignmentCreated, assignment.CountdownID, map[string]interface{}{
		"assignment_id": assignment.ID.String(),
		"countdown_id":  assignment.CountdownID.String(),
		"receiver_id":   assignment.ReceiverID.String(),
	})
}

// PublishInvitationAccepted publishes an invitation.accepted event
func (p *Publisher) PublishInvitationAccepted(ctx context.Context, invitation store.Invitation, assignment store.Assignment) error {
	return p.publish(ctx, TypeInvitationAccepted, invitation.CountdownID, map[string]interface{}{
		"invitation_id": invitation.ID.String(),
		"assignment_id": assignment.ID.String(),
		"countdown_id":  invitation.CountdownID.String(),
		"receiver_id":   assignment.ReceiverID.String(),
	})
}

// PublishDayUnlocked publishes a day.unlocked event
func (p *Publisher) PublishDayUnlocked(ctx context.Context, assignment store.Assignment, day int) error {
	return p.publish(ctx, TypeDayUnlocked, assignment.CountdownID, map[string]interface{}{
		"assignment_id": assignment.ID.String(),
		"countdown_id":  assignment.CountdownID.String(),
		"receiver_id":   assignment.ReceiverID.String(),
		"day":           day,
	})
}

func (p *Publisher) publish(ctx context.Context, eventType string, countdownID uuid.UUID, data map[string]interface{}) error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.PublishEvent(ctx, kafka.EventMessage{
		ID:          uuid.New().String(),
		Type:        eventType,
		CountdownID: countdownID.String(),
		Data:        data,
		Timestamp:   p.now().UTC().Format(time.RFC3339),
	})
}
