package jobs

import (
	"context"
	"fmt"
	"time"

	"countdown-server/internal/observability"
)

const (
	invitationCleanupInterval = 6 * time.Hour
	// Until then a late click still reports INVITATION_EXPIRED.
	invitationRetention = 7 * 24 * time.Hour
)

// InvitationStore deletes invitations past their expiry
type InvitationStore interface {
	DeleteExpiredInvitations(ctx context.Context, cutoff time.Time) (int64, error)
}

// InvitationCleanupJob purges long-expired invitation tokens
type InvitationCleanupJob struct {
	store  InvitationStore
	now    func() time.Time
	logger *observability.Logger
}

func NewInvitationCleanupJob(store InvitationStore, logger *observability.Logger) *InvitationCleanupJob {
	return &InvitationCleanupJob{
		store:  store,
		now:    time.Now,
		logger: logger,
	}
}

func (j *InvitationCleanupJob) Name() string {
	return "invitation_cleanup"
}

func (j *InvitationCleanupJob) Interval() time.Duration {
	return invitationCleanupInterval
}

func (j *InvitationCleanupJob) Run(ctx context.Context) error {
	deleted, err := j.store.DeleteExpiredInvitations(ctx, j.now().Add(-invitationRetention))
	if err != nil {
		return fmt.Errorf("failed to delete expired invitations: %w", err)
	}
	if deleted > 0 {
		j.logger.Info(observability.WithFields(ctx, observability.Field{Key: "deleted", Value: deleted}),
			"deleted expired invitations")
	}
	return nil
}
