package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// UpsertPrintCardParams represents parameters for saving a print card design
type UpsertPrintCardParams struct {
	CanvasJSON      RawJSON
	PreviewImageURL string
}

const printCardColumns = `id, countdown_id, day, canvas_json, preview_image_url, created_at, updated_at`

const sqlGetPrintCardsByCountdown = `
SELECT ` + printCardColumns + `
FROM print_cards
WHERE countdown_id = $1
ORDER BY day ASC`

func (s *Store) GetPrintCardsByCountdown(ctx context.Context, countdownID uuid.UUID) ([]PrintCard, error) {
	cards := []PrintCard{}
	err := s.db.SelectContext(ctx, &cards, sqlGetPrintCardsByCountdown, countdownID)
	if err != nil {
		return nil, fmt.Errorf("failed to get print cards: %w", err)
	}
	return cards, nil
}

const sqlGetPrintCard = `
SELECT ` + printCardColumns + `
FROM print_cards
WHERE countdown_id = $1 AND day = $2`

func (s *Store) GetPrintCard(ctx context.Context, countdownID uuid.UUID, day int) (PrintCard, error) {
	var card PrintCard
	err := s.db.GetContext(ctx, &card, sqlGetPrintCard, countdownID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return PrintCard{}, ErrNotFound
		}
		return PrintCard{}, fmt.Errorf("failed to get print card: %w", err)
	}
	return card, nil
}

const sqlUpsertPrintCard = `
INSERT INTO print_cards (countdown_id, day, canvas_json, preview_image_url)
VALUES ($1, $2, $3, $4)
ON CONFLICT (countdown_id, day) DO UPDATE
SET canvas_json = EXCLUDED.canvas_json,
    preview_image_url = EXCLUDED.preview_image_url,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + printCardColumns

func (s *Store) UpsertPrintCard(ctx context.Context, countdownID uuid.UUID, day int, params UpsertPrintCardParams) (PrintCard, error) {
	var card PrintCard
	err := s.db.GetContext(ctx, &card, sqlUpsertPrintCard, countdownID, day, params.CanvasJSON, params.PreviewImageURL)
	if err != nil {
		s.logger.Error(ctx, "failed to upsert print card", err)
		return PrintCard{}, fmt.Errorf("failed to upsert print card: %w", err)
	}
	return card, nil
}

const sqlDeletePrintCardsAfter = `
DELETE FROM print_cards
WHERE countdown_id = $1 AND day > $2`

func (s *Store) DeletePrintCardsAfter(ctx context.Context, countdownID uuid.UUID, totalDays int) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeletePrintCardsAfter, countdownID, totalDays)
	if err != nil {
		return 0, fmt.Errorf("failed to prune print cards: %w", err)
	}
	return res.RowsAffected()
}
