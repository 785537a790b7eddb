package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateInvitationParams represents parameters for creating an invitation
type CreateInvitationParams struct {
	Token       string
	CountdownID uuid.UUID
	CreatedBy   uuid.UUID
	Email       *string
	ExpiresAt   time.Time
}

const invitationColumns = `id, token, countdown_id, created_by, email, expires_at, accepted_at, accepted_by, created_at`

const sqlCreateInvitation = `
INSERT INTO invitations (token, countdown_id, created_by, email, expires_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + invitationColumns

func (s *Store) CreateInvitation(ctx context.Context, params CreateInvitationParams) (Invitation, error) {
	var invitation Invitation
	err := s.db.GetContext(ctx, &invitation, sqlCreateInvitation,
		params.Token,
		params.CountdownID,
		params.CreatedBy,
		params.Email,
		params.ExpiresAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create invitation", err)
		return Invitation{}, fmt.Errorf("failed to create invitation: %w", err)
	}
	return invitation, nil
}

const sqlGetInvitationByToken = `
SELECT ` + invitationColumns + `
FROM invitations
WHERE token = $1`

func (s *Store) GetInvitationByToken(ctx context.Context, token string) (Invitation, error) {
	var invitation Invitation
	err := s.db.GetContext(ctx, &invitation, sqlGetInvitationByToken, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Invitation{}, ErrNotFound
		}
		return Invitation{}, fmt.Errorf("failed to get invitation: %w", err)
	}
	return invitation, nil
}

const sqlMarkInvitationAccepted = `
UPDATE invitations
SET accepted_at = CURRENT_TIMESTAMP,
    accepted_by = $2
WHERE id = $1
RETURNING ` + invitationColumns

// MarkInvitationAccepted records the latest redemption. Tokens remain valid
// until they expire.
func (s *Store) MarkInvitationAccepted(ctx context.Context, invitationID, userID uuid.UUID) (Invitation, error) {
	var invitation Invitation
	err := s.db.GetContext(ctx, &invitation, sqlMarkInvitationAccepted, invitationID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Invitation{}, ErrNotFound
		}
		return Invitation{}, fmt.Errorf("failed to mark invitation accepted: %w", err)
	}
	return invitation, nil
}

const sqlDeleteExpiredInvitations = `
DELETE FROM invitations
WHERE expires_at < $1`

// DeleteExpiredInvitations removes invitations that expired before cutoff
func (s *Store) DeleteExpiredInvitations(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeleteExpiredInvitations, cutoff)
	if err != nil {
		s.logger.Error(ctx, "failed to delete expired invitations", err)
		return 0, fmt.Errorf("failed to delete expired invitations: %w", err)
	}
	return res.RowsAffected()
}
