package jobs

import (
	"context"
	"errors"
	"fmt"

	"countdown-server/internal/observability"

	"github.com/hibiken/asynq"
)

// ErrQueueDisabled is returned by a nil Client, used when Redis is not configured.
var ErrQueueDisabled = errors.New("job queue is disabled")

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// EnqueueInvitationEmail enqueues an invitation email job
func (c *Client) EnqueueInvitationEmail(ctx context.Context, payload InvitationEmailPayload) error {
	if c == nil {
		return ErrQueueDisabled
	}
	task, err := NewInvitationEmailTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create invitation email task", err)
		return fmt.Errorf("failed to create invitation email task: %w", err)
	}
	return c.enqueue(ctx, task)
}

// EnqueueDayUnlockedEmail enqueues a creator notification for an unlocked day
func (c *Client) EnqueueDayUnlockedEmail(ctx context.Context, payload DayUnlockedEmailPayload) error {
	if c == nil {
		return ErrQueueDisabled
	}
	task, err := NewDayUnlockedEmailTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create day unlocked email task", err)
		return fmt.Errorf("failed to create day unlocked email task: %w", err)
	}
	return c.enqueue(ctx, task)
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, fmt.Sprintf("failed to enqueue %s task", task.Type()), err)
		return fmt.Errorf("failed to enqueue %s task: %w", task.Type(), err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued %s task: %s (queue: %s)", task.Type(), info.ID, info.Queue))
	return nil
}
