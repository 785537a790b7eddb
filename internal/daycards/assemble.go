package daycards

import (
	"time"

	"countdown-server/internal/store"
)

const (
	TypeStory   = "story"
	TypeQR      = "qr"
	TypeVoucher = "voucher"
)

// ValidType reports whether t is a known day type.
func ValidType(t string) bool {
	switch t {
	case TypeStory, TypeQR, TypeVoucher:
		return true
	}
	return false
}

// Card is the API shape of a single day. Exactly one of CGScript, QRReward and
// VoucherDetail is set, matching Type; the other two serialize as null.
type Card struct {
	Day           int                  `json:"day"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	CoverImage    string               `json:"coverImage"`
	Type          string               `json:"type"`
	CGScript      store.RawJSON        `json:"cgScript"`
	QRReward      *store.QRReward      `json:"qrReward"`
	VoucherDetail *store.VoucherDetail `json:"voucherDetail"`
	Unlocked      *bool                `json:"unlocked,omitempty"`
	QRUnlocked    *bool                `json:"qrUnlocked,omitempty"`
	NextUnlockAt  *time.Time           `json:"nextUnlockAt,omitempty"`

	hasContent bool
}

// HasContent reports whether the card came from storage (or a legacy reward)
// rather than being synthesized as an empty default.
func (c Card) HasContent() bool {
	return c.hasContent
}

// Assemble produces exactly totalDays cards, days 1..totalDays in order, from a
// sparse and possibly unordered set of stored cards. Missing days become empty
// defaults typed after the countdown's legacy type; stored days outside the
// range are ignored.
func Assemble(totalDays int, stored []store.DayCard, countdown store.Countdown) []Card {
	byDay := make(map[int]store.DayCard, len(stored))
	for _, sc := range stored {
		if sc.Day >= 1 && sc.Day <= totalDays {
			byDay[sc.Day] = sc
		}
	}

	legacyRewards := make(map[int]store.LegacyQRReward, len(countdown.QRRewards))
	for _, r := range countdown.QRRewards {
		if _, seen := legacyRewards[r.Day]; !seen {
			legacyRewards[r.Day] = r
		}
	}

	fallbackType := countdown.Type
	if !ValidType(fallbackType) {
		fallbackType = TypeStory
	}

	cards := make([]Card, totalDays)
	for d := 1; d <= totalDays; d++ {
		card := Card{Day: d, Type: fallbackType}
		sc, ok := byDay[d]
		if ok {
			card.Title = sc.Title
			card.Description = sc.Description
			card.CoverImage = sc.CoverImage
			card.hasContent = true
			if ValidType(sc.Type) {
				card.Type = sc.Type
			}
		}

		switch card.Type {
		case TypeQR:
			card.QRReward = qrRewardFor(sc, ok, legacyRewards, d, &card)
		case TypeVoucher:
			card.VoucherDetail = voucherFor(sc, ok)
		default:
			card.CGScript = scriptFor(sc, ok)
		}
		cards[d-1] = card
	}
	return cards
}

func qrRewardFor(sc store.DayCard, stored bool, legacy map[int]store.LegacyQRReward, d int, card *Card) *store.QRReward {
	if stored && sc.QRReward != nil {
		r := *sc.QRReward
		return &r
	}
	if lr, found := legacy[d]; found {
		card.hasContent = true
		if card.Title == "" {
			card.Title = lr.Title
		}
		return &store.QRReward{
			Title:    lr.Title,
			Message:  lr.Message,
			ImageURL: lr.ImageURL,
			QRCode:   lr.QRCode,
		}
	}
	return &store.QRReward{}
}

func voucherFor(sc store.DayCard, stored bool) *store.VoucherDetail {
	if stored && sc.VoucherDetail != nil && sc.VoucherDetail.HasContent() {
		v := *sc.VoucherDetail
		return &v
	}
	return &store.VoucherDetail{}
}

func scriptFor(sc store.DayCard, stored bool) store.RawJSON {
	if stored && !sc.CGScript.IsNull() {
		return append(store.RawJSON(nil), sc.CGScript...)
	}
	return store.RawJSON(`{}`)
}

// Normalize clears the payloads that do not belong to card.Type and fills the
// selected one with its empty default, so a card is never persisted with
// mixed payloads.
func Normalize(card store.UpsertDayCardParams) store.UpsertDayCardParams {
	if !ValidType(card.Type) {
		card.Type = TypeStory
	}
	switch card.Type {
	case TypeQR:
		card.CGScript = nil
		card.VoucherDetail = nil
		if card.QRReward == nil {
			card.QRReward = &store.QRReward{}
		}
	case TypeVoucher:
		card.CGScript = nil
		card.QRReward = nil
		if card.VoucherDetail == nil {
			card.VoucherDetail = &store.VoucherDetail{}
		}
	default:
		card.QRReward = nil
		card.VoucherDetail = nil
		if card.CGScript.IsNull() {
			card.CGScript = store.RawJSON(`{}`)
		}
	}
	return card
}
