//go:generate go run go.uber.org/mock/mockgen@latest -source=email_worker.go -destination=mocks_test.go -package=workers

package workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"countdown-server/internal/email"
	"countdown-server/internal/jobs"
	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// EmailSender renders and delivers the product emails
type EmailSender interface {
	SendInvitationEmail(ctx context.Context, msg email.InvitationEmail) error
	SendDayUnlockedEmail(ctx context.Context, msg email.DayUnlockedEmail) error
}

// NotificationStore looks up the people and countdown a notification is about
type NotificationStore interface {
	GetCountdownByID(ctx context.Context, countdownID uuid.UUID) (store.Countdown, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
}

// EmailWorker handles email sending jobs
type EmailWorker struct {
	store     NotificationStore
	emails    EmailSender
	webAppURI string
	logger    *observability.Logger
}

// NewEmailWorker creates a new email worker
func NewEmailWorker(store NotificationStore, emails EmailSender, webAppURI string, logger *observability.Logger) *EmailWorker {
	return &EmailWorker{
		store:     store,
		emails:    emails,
		webAppURI: webAppURI,
		logger:    logger,
	}
}

// Register binds the worker's task types on mux
func (w *EmailWorker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(jobs.TypeInvitationEmail, w.ProcessInvitationEmailTask)
	mux.HandleFunc(jobs.TypeDayUnlockedEmail, w.ProcessDayUnlockedEmailTask)
}

// ProcessInvitationEmailTask sends an invitation. The payload is self-contained.
func (w *EmailWorker) ProcessInvitationEmailTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.InvitationEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal invitation email payload", err)
		return fmt.Errorf("failed to unmarshal invitation email payload: %w: %w", err, asynq.SkipRetry)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "invitation_id", Value: payload.InvitationID.String()})

	err := w.emails.SendInvitationEmail(ctx, email.InvitationEmail{
		To:             payload.To,
		CreatorName:    payload.CreatorName,
		CountdownTitle: payload.CountdownTitle,
		InviteURL:      payload.InviteURL,
		ExpiresAt:      payload.ExpiresAt,
	})
	if err != nil {
		return w.sendError(ctx, "invitation", err)
	}

	w.logger.Info(ctx, "invitation email sent")
	return nil
}

// ProcessDayUnlockedEmailTask tells the creator a receiver unlocked a day. A
// countdown or user deleted since the unlock drops the task.
func (w *EmailWorker) ProcessDayUnlockedEmailTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.DayUnlockedEmailPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal day unlocked payload", err)
		return fmt.Errorf("failed to unmarshal day unlocked payload: %w: %w", err, asynq.SkipRetry)
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "assignment_id", Value: payload.AssignmentID.String()},
		observability.Field{Key: "countdown_id", Value: payload.CountdownID.String()},
		observability.Field{Key: "day", Value: payload.Day},
	)

	countdown, err := w.store.GetCountdownByID(ctx, payload.CountdownID)
	if err != nil {
		return w.lookupError(ctx, "countdown", err)
	}
	creator, err := w.store.GetUserByID(ctx, countdown.CreatorID)
	if err != nil {
		return w.lookupError(ctx, "creator", err)
	}

	receiverName := ""
	receiver, err := w.store.GetUserByID(ctx, payload.ReceiverID)
	switch {
	case err == nil:
		receiverName = receiver.Name
	case !errors.Is(err, store.ErrNotFound):
		return w.lookupError(ctx, "receiver", err)
	}

	err = w.emails.SendDayUnlockedEmail(ctx, email.DayUnlockedEmail{
		To:             creator.Email,
		CreatorName:    creator.Name,
		ReceiverName:   receiverName,
		CountdownTitle: countdown.Title,
		Day:            payload.Day,
		CountdownURL:   fmt.Sprintf("%s/countdowns/%s", w.webAppURI, countdown.ID),
	})
	if err != nil {
		return w.sendError(ctx, "day unlocked", err)
	}

	w.logger.Info(ctx, "day unlocked email sent")
	return nil
}

func (w *EmailWorker) lookupError(ctx context.Context, what string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		w.logger.Warn(ctx, fmt.Sprintf("%s no longer exists, dropping notification", what))
		return fmt.Errorf("%s not found: %w", what, asynq.SkipRetry)
	}
	w.logger.Error(ctx, fmt.Sprintf("failed to get %s", what), err)
	return fmt.Errorf("failed to get %s: %w", what, err)
}

// sendError retries delivery failures and drops bad addresses.
func (w *EmailWorker) sendError(ctx context.Context, kind string, err error) error {
	if errors.Is(err, email.ErrInvalidEmailAddress) {
		w.logger.WarnWithError(ctx, fmt.Sprintf("dropping %s email", kind), err)
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}
	w.logger.Error(ctx, fmt.Sprintf("failed to send %s email", kind), err)
	return err
}
