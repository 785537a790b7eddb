package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UpsertDayCardParams is the full content of one day. Payloads that do not
// match Type are expected to be nil.
type UpsertDayCardParams struct {
	Day           int
	Title         string
	Description   string
	CoverImage    string
	Type          string
	CGScript      RawJSON
	QRReward      *QRReward
	VoucherDetail *VoucherDetail
}

const dayCardColumns = `id, countdown_id, day, title, description, cover_image, type, cg_script, qr_reward,
voucher_detail, created_at, updated_at`

const sqlGetDayCardsByCountdown = `
SELECT ` + dayCardColumns + `
FROM day_cards
WHERE countdown_id = $1
ORDER BY day ASC`

func (s *Store) GetDayCardsByCountdown(ctx context.Context, countdownID uuid.UUID) ([]DayCard, error) {
	cards := []DayCard{}
	err := s.db.SelectContext(ctx, &cards, sqlGetDayCardsByCountdown, countdownID)
	if err != nil {
		return nil, fmt.Errorf("failed to get day cards: %w", err)
	}
	return cards, nil
}

const sqlGetDayCard = `
SELECT ` + dayCardColumns + `
FROM day_cards
WHERE countdown_id = $1 AND day = $2`

func (s *Store) GetDayCard(ctx context.Context, countdownID uuid.UUID, day int) (DayCard, error) {
	var card DayCard
	err := s.db.GetContext(ctx, &card, sqlGetDayCard, countdownID, day)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DayCard{}, ErrNotFound
		}
		return DayCard{}, fmt.Errorf("failed to get day card: %w", err)
	}
	return card, nil
}

const sqlUpsertDayCard = `
INSERT INTO day_cards (countdown_id, day, title, description, cover_image, type, cg_script, qr_reward, voucher_detail)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (countdown_id, day) DO UPDATE
SET title = EXCLUDED.title,
    description = EXCLUDED.description,
    cover_image = EXCLUDED.cover_image,
    type = EXCLUDED.type,
    cg_script = EXCLUDED.cg_script,
    qr_reward = EXCLUDED.qr_reward,
    voucher_detail = EXCLUDED.voucher_detail,
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + dayCardColumns

const sqlDeleteDayCardsAfter = `
DELETE FROM day_cards
WHERE countdown_id = $1 AND day > $2`

// UpsertDayCard writes a single day, replacing any stored content for it.
func (s *Store) UpsertDayCard(ctx context.Context, countdownID uuid.UUID, params UpsertDayCardParams) (DayCard, error) {
	return upsertDayCard(ctx, s.db, countdownID, params)
}

// SaveDayCards upserts every given day and then deletes cards beyond totalDays,
// all in one transaction. Days not present in cards are left as they are.
func (s *Store) SaveDayCards(ctx context.Context, countdownID uuid.UUID, totalDays int, cards []UpsertDayCardParams) ([]DayCard, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				s.logger.Error(ctx, "failed to rollback transaction", rbErr)
			}
		}
	}()

	saved := make([]DayCard, 0, len(cards))
	for _, params := range cards {
		var card DayCard
		card, err = upsertDayCard(ctx, tx, countdownID, params)
		if err != nil {
			s.logger.Error(ctx, "failed to upsert day card", err)
			return nil, err
		}
		saved = append(saved, card)
	}

	if _, err = tx.ExecContext(ctx, sqlDeleteDayCardsAfter, countdownID, totalDays); err != nil {
		s.logger.Error(ctx, "failed to prune day cards", err)
		return nil, fmt.Errorf("failed to prune day cards: %w", err)
	}

	if err = tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return saved, nil
}

// DeleteDayCardsAfter removes cards orphaned by a shorter countdown.
func (s *Store) DeleteDayCardsAfter(ctx context.Context, countdownID uuid.UUID, totalDays int) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlDeleteDayCardsAfter, countdownID, totalDays)
	if err != nil {
		return 0, fmt.Errorf("failed to prune day cards: %w", err)
	}
	return res.RowsAffected()
}

func upsertDayCard(ctx context.Context, q sqlx.QueryerContext, countdownID uuid.UUID, params UpsertDayCardParams) (DayCard, error) {
	var card DayCard
	err := sqlx.GetContext(ctx, q, &card, sqlUpsertDayCard,
		countdownID,
		params.Day,
		params.Title,
		params.Description,
		params.CoverImage,
		params.Type,
		params.CGScript,
		params.QRReward,
		params.VoucherDetail)
	if err != nil {
		return DayCard{}, fmt.Errorf("failed to upsert day card %d: %w", params.Day, err)
	}
	return card, nil
}
