package processor

import (
	"context"
	"fmt"
	"net/url"

	"countdown-server/internal/daycards"
	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/google/uuid"
)

// DayCardInput is the editable content of one day
type DayCardInput struct {
	Day           int
	Title         string
	Description   string
	CoverImage    string
	Type          string
	CGScript      store.RawJSON
	QRReward      *store.QRReward
	VoucherDetail *store.VoucherDetail
}

// QRCode is the unlock token for one day, plus the link to encode in a QR image
type QRCode struct {
	Day     int    `json:"day"`
	QRToken string `json:"qrToken"`
	QRURL   string `json:"qrUrl"`
}

// SaveDayCards replaces the countdown's day content with cards. Cards are
// upserted by day in a single transaction and days beyond totalDays are
// dropped.
func (p *CountdownProcessor) SaveDayCards(ctx context.Context, creatorID, countdownID uuid.UUID, cards []DayCardInput) (daycards.CountdownView, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "card_count", Value: len(cards)},
	)

	countdown, err := p.getOwnedCountdown(ctx, creatorID, countdownID)
	if err != nil {
		return daycards.CountdownView{}, err
	}

	params := make([]store.UpsertDayCardParams, 0, len(cards))
	for _, card := range cards {
		normalized, err := p.normalizeCard(countdown, card)
		if err != nil {
			return daycards.CountdownView{}, err
		}
		params = append(params, normalized)
	}

	stored, err := p.store.SaveDayCards(ctx, countdownID, countdown.TotalDays, params)
	if err != nil {
		p.logger.Error(ctx, "failed to save day cards", err)
		return daycards.CountdownView{}, err
	}

	p.logger.Info(ctx, "day cards saved")
	return daycards.CreatorView(countdown, stored, p.now()), nil
}

// SaveDayCard upserts a single day and returns it assembled.
func (p *CountdownProcessor) SaveDayCard(ctx context.Context, creatorID, countdownID uuid.UUID, card DayCardInput) (daycards.Card, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "day", Value: card.Day},
	)

	countdown, err := p.getOwnedCountdown(ctx, creatorID, countdownID)
	if err != nil {
		return daycards.Card{}, err
	}

	params, err := p.normalizeCard(countdown, card)
	if err != nil {
		return daycards.Card{}, err
	}

	saved, err := p.store.UpsertDayCard(ctx, countdownID, params)
	if err != nil {
		p.logger.Error(ctx, "failed to save day card", err)
		return daycards.Card{}, err
	}

	available := daycards.AvailableDay(countdown.StartDate, countdown.TotalDays, p.now())
	assembled := daycards.Assemble(countdown.TotalDays, []store.DayCard{saved}, countdown)
	return daycards.ForCreator(assembled[saved.Day-1:saved.Day], countdown.StartDate, available)[0], nil
}

// GenerateQR returns the unlock token for day. The token is derived, not
// stored, so repeated calls return the same value.
func (p *CountdownProcessor) GenerateQR(ctx context.Context, creatorID, countdownID uuid.UUID, day int) (QRCode, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "day", Value: day},
	)

	countdown, err := p.getOwnedCountdown(ctx, creatorID, countdownID)
	if err != nil {
		return QRCode{}, err
	}
	if err := daycards.ValidateDay(day, countdown.TotalDays); err != nil {
		return QRCode{}, err
	}

	token := p.tokens.Derive(countdownID, day)
	return QRCode{
		Day:     day,
		QRToken: token,
		QRURL:   fmt.Sprintf("%s/unlock/%s?token=%s", p.config.WebAppURI, countdownID, url.QueryEscape(token)),
	}, nil
}

func (p *CountdownProcessor) normalizeCard(countdown store.Countdown, card DayCardInput) (store.UpsertDayCardParams, error) {
	if err := daycards.ValidateDay(card.Day, countdown.TotalDays); err != nil {
		return store.UpsertDayCardParams{}, err
	}

	cardType := card.Type
	if cardType == "" {
		cardType = countdown.Type
	}
	if !daycards.ValidType(cardType) {
		if card.Type != "" {
			return store.UpsertDayCardParams{}, fmt.Errorf("%w: day %d has type %q", ErrInvalidDayType, card.Day, card.Type)
		}
		cardType = daycards.TypeStory
	}

	return daycards.Normalize(store.UpsertDayCardParams{
		Day:           card.Day,
		Title:         card.Title,
		Description:   card.Description,
		CoverImage:    card.CoverImage,
		Type:          cardType,
		CGScript:      card.CGScript,
		QRReward:      card.QRReward,
		VoucherDetail: card.VoucherDetail,
	}), nil
}
