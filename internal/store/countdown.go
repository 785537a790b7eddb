package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCountdownParams represents parameters for creating a countdown
type CreateCountdownParams struct {
	CreatorID   uuid.UUID
	Title       string
	Description string
	CoverImage  string
	ThemeColors JSONB
	StartDate   *time.Time
	EndDate     *time.Time
	TotalDays   int
	Type        string
	QRRewards   LegacyQRRewards
}

// UpdateCountdownParams represents parameters for updating a countdown.
// Nil fields are left untouched; ClearSchedule resets start and end dates.
type UpdateCountdownParams struct {
	Title         *string
	Description   *string
	CoverImage    *string
	ThemeColors   *JSONB
	StartDate     *time.Time
	EndDate       *time.Time
	ClearSchedule bool
	TotalDays     *int
	Type          *string
	QRRewards     *LegacyQRRewards
}

// recipient_ids is read back in text form so UUIDArray can scan it.
const countdownColumns = `id, creator_id, title, description, cover_image, theme_colors, start_date, end_date,
total_days, type, qr_rewards, recipient_ids::text AS recipient_ids, created_at, updated_at`

const sqlCreateCountdown = `
INSERT INTO countdowns (creator_id, title, description, cover_image, theme_colors, start_date, end_date, total_days, type, qr_rewards)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + countdownColumns

func (s *Store) CreateCountdown(ctx context.Context, params CreateCountdownParams) (Countdown, error) {
	if params.ThemeColors == nil {
		params.ThemeColors = JSONB{}
	}
	if params.QRRewards == nil {
		params.QRRewards = LegacyQRRewards{}
	}

	var countdown Countdown
	err := s.db.GetContext(ctx, &countdown, sqlCreateCountdown,
		params.CreatorID,
		params.Title,
		params.Description,
		params.CoverImage,
		params.ThemeColors,
		params.StartDate,
		params.EndDate,
		params.TotalDays,
		params.Type,
		params.QRRewards)
	if err != nil {
		s.logger.Error(ctx, "failed to create countdown", err)
		return Countdown{}, fmt.Errorf("failed to create countdown: %w", err)
	}
	return countdown, nil
}

const sqlGetCountdownByID = `
SELECT ` + countdownColumns + `
FROM countdowns
WHERE id = $1`

func (s *Store) GetCountdownByID(ctx context.Context, countdownID uuid.UUID) (Countdown, error) {
	var countdown Countdown
	err := s.db.GetContext(ctx, &countdown, sqlGetCountdownByID, countdownID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Countdown{}, ErrNotFound
		}
		return Countdown{}, fmt.Errorf("failed to get countdown: %w", err)
	}
	return countdown, nil
}

const sqlGetCountdownsByCreator = `
SELECT ` + countdownColumns + `
FROM countdowns
WHERE creator_id = $1
ORDER BY created_at DESC`

func (s *Store) GetCountdownsByCreator(ctx context.Context, creatorID uuid.UUID) ([]Countdown, error) {
	countdowns := []Countdown{}
	err := s.db.SelectContext(ctx, &countdowns, sqlGetCountdownsByCreator, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get countdowns by creator: %w", err)
	}
	return countdowns, nil
}

const sqlUpdateCountdown = `
UPDATE countdowns
SET title = COALESCE($2, title),
    description = COALESCE($3, description),
    cover_image = COALESCE($4, cover_image),
    theme_colors = COALESCE($5, theme_colors),
    start_date = CASE WHEN $8 THEN NULL ELSE COALESCE($6, start_date) END,
    end_date = CASE WHEN $8 THEN NULL ELSE COALESCE($7, end_date) END,
    total_days = COALESCE($9, total_days),
    type = COALESCE($10, type),
    qr_rewards = COALESCE($11, qr_rewards),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + countdownColumns

func (s *Store) UpdateCountdown(ctx context.Context, countdownID uuid.UUID, params UpdateCountdownParams) (Countdown, error) {
	var countdown Countdown
	err := s.db.GetContext(ctx, &countdown, sqlUpdateCountdown,
		countdownID,
		params.Title,
		params.Description,
		params.CoverImage,
		params.ThemeColors,
		params.StartDate,
		params.EndDate,
		params.ClearSchedule,
		params.TotalDays,
		params.Type,
		params.QRRewards)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Countdown{}, ErrNotFound
		}
		return Countdown{}, fmt.Errorf("failed to update countdown: %w", err)
	}
	return countdown, nil
}

const sqlDeleteCountdown = `
DELETE FROM countdowns
WHERE id = $1`

// DeleteCountdown removes the countdown; day cards, assignments, invitations
// and print cards go with it through ON DELETE CASCADE.
func (s *Store) DeleteCountdown(ctx context.Context, countdownID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCountdown, countdownID)
	if err != nil {
		return fmt.Errorf("failed to delete countdown: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read deleted rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlAddCountdownRecipients = `
UPDATE countdowns
SET recipient_ids = ARRAY(SELECT DISTINCT unnest(recipient_ids || ($2::text)::uuid[])),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + countdownColumns

// AddCountdownRecipients merges receiver ids into the countdown's recipient list.
func (s *Store) AddCountdownRecipients(ctx context.Context, countdownID uuid.UUID, receiverIDs []uuid.UUID) (Countdown, error) {
	var countdown Countdown
	err := s.db.GetContext(ctx, &countdown, sqlAddCountdownRecipients, countdownID, UUIDArray(receiverIDs).Literal())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Countdown{}, ErrNotFound
		}
		return Countdown{}, fmt.Errorf("failed to add countdown recipients: %w", err)
	}
	return countdown, nil
}
