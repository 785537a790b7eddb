package processor

import (
	"context"
	"errors"
	"time"

	"countdown-server/internal/daycards"
	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/google/uuid"
)

// PrintCardView is a day's printable card, or an unconfigured placeholder
type PrintCardView struct {
	Day             int           `json:"day"`
	Configured      bool          `json:"configured"`
	CanvasJSON      store.RawJSON `json:"canvasJson"`
	PreviewImageURL string        `json:"previewImageUrl"`
	UpdatedAt       *time.Time    `json:"updatedAt,omitempty"`
}

func printCardView(card store.PrintCard) PrintCardView {
	updatedAt := card.UpdatedAt
	return PrintCardView{
		Day:             card.Day,
		Configured:      true,
		CanvasJSON:      card.CanvasJSON,
		PreviewImageURL: card.PreviewImageURL,
		UpdatedAt:       &updatedAt,
	}
}

func placeholderPrintCard(day int) PrintCardView {
	return PrintCardView{Day: day}
}

// ListPrintCards returns one entry per day of the countdown.
func (p *CountdownProcessor) ListPrintCards(ctx context.Context, creatorID, countdownID uuid.UUID) ([]PrintCardView, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "countdown_id", Value: countdownID.String()})

	countdown, err := p.getOwnedCountdown(ctx, creatorID, countdownID)
	if err != nil {
		return nil, err
	}

	stored, err := p.store.GetPrintCardsByCountdown(ctx, countdownID)
	if err != nil {
		p.logger.Error(ctx, "failed to get print cards", err)
		return nil, err
	}

	byDay := make(map[int]store.PrintCard, len(stored))
	for _, card := range stored {
		byDay[card.Day] = card
	}

	views := make([]PrintCardView, countdown.TotalDays)
	for d := 1; d <= countdown.TotalDays; d++ {
		if card, ok := byDay[d]; ok {
			views[d-1] = printCardView(card)
		} else {
			views[d-1] = placeholderPrintCard(d)
		}
	}
	return views, nil
}

func (p *CountdownProcessor) GetPrintCard(ctx context.Context, creatorID, countdownID uuid.UUID, day int) (PrintCardView, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "day", Value: day},
	)

	countdown, err := p.getOwnedCountdown(ctx, creatorID, countdownID)
	if err != nil {
		return PrintCardView{}, err
	}
	if err := daycards.ValidateDay(day, countdown.TotalDays); err != nil {
		return PrintCardView{}, err
	}

	card, err := p.store.GetPrintCard(ctx, countdownID, day)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return placeholderPrintCard(day), nil
		}
		p.logger.Error(ctx, "failed to get print card", err)
		return PrintCardView{}, err
	}
	return printCardView(card), nil
}

func (p *CountdownProcessor) SavePrintCard(ctx context.Context, creatorID, countdownID uuid.UUID, day int, canvasJSON store.RawJSON, previewImageURL string) (PrintCardView, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "day", Value: day},
	)

	countdown, err := p.getOwnedCountdown(ctx, creatorID, countdownID)
	if err != nil {
		return PrintCardView{}, err
	}
	if err := daycards.ValidateDay(day, countdown.TotalDays); err != nil {
		return PrintCardView{}, err
	}

	card, err := p.store.UpsertPrintCard(ctx, countdownID, day, store.UpsertPrintCardParams{
		CanvasJSON:      canvasJSON,
		PreviewImageURL: previewImageURL,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to save print card", err)
		return PrintCardView{}, err
	}
	return printCardView(card), nil
}
