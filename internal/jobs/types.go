package jobs

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	TypeInvitationEmail  = "email:invitation"
	TypeDayUnlockedEmail = "email:day_unlocked"
)

// Queue names
const (
	QueueHigh = "high"
	QueueLow  = "low"
)

// InvitationEmailPayload carries everything the worker needs to render and
// send an invitation without reading the database.
type InvitationEmailPayload struct {
	InvitationID   uuid.UUID `json:"invitation_id"`
	To             string    `json:"to"`
	CreatorName    string    `json:"creator_name"`
	CountdownTitle string    `json:"countdown_title"`
	InviteURL      string    `json:"invite_url"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// NewInvitationEmailTask creates a new invitation email task
func NewInvitationEmailTask(payload InvitationEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeInvitationEmail, data, asynq.Queue(QueueHigh), asynq.MaxRetry(5)), nil
}

// DayUnlockedEmailPayload tells a creator that a receiver opened a day
type DayUnlockedEmailPayload struct {
	AssignmentID uuid.UUID `json:"assignment_id"`
	CountdownID  uuid.UUID `json:"countdown_id"`
	ReceiverID   uuid.UUID `json:"receiver_id"`
	Day          int       `json:"day"`
}

// NewDayUnlockedEmailTask creates a new day unlocked notification task
func NewDayUnlockedEmailTask(payload DayUnlockedEmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeDayUnlockedEmail, data, asynq.Queue(QueueLow), asynq.MaxRetry(3)), nil
}
