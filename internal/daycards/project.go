package daycards

import (
	"time"

	"countdown-server/internal/store"
)

// CountdownView is the countdown payload with its assembled day cards.
type CountdownView struct {
	store.Countdown
	DayCards     []Card `json:"dayCards"`
	AvailableDay int    `json:"availableDay"`
}

// ForCreator returns the owner's view: full content for every day, annotated
// with the time gate. QR state is ignored.
func ForCreator(cards []Card, startDate *time.Time, availableDay int) []Card {
	out := make([]Card, len(cards))
	for i, card := range cards {
		unlocked := card.Day <= availableDay
		card.Unlocked = &unlocked
		card.NextUnlockAt = nil
		if !unlocked && startDate != nil {
			at := UnlockAt(*startDate, card.Day)
			card.NextUnlockAt = &at
		}
		out[i] = card
	}
	return out
}

// ForReceiverSummary returns the receiver's whole-countdown view. Story scripts
// are never included; reward and voucher payloads only for days the receiver
// has unlocked with a QR token.
func ForReceiverSummary(cards []Card, startDate *time.Time, availableDay int, unlockedDays store.IntArray) []Card {
	out := make([]Card, len(cards))
	for i, card := range cards {
		unlocked := card.Day <= availableDay
		qrUnlocked := unlockedDays.Contains(card.Day)
		card.Unlocked = &unlocked
		card.QRUnlocked = &qrUnlocked
		card.NextUnlockAt = nil
		if !unlocked && startDate != nil {
			at := UnlockAt(*startDate, card.Day)
			card.NextUnlockAt = &at
		}

		card.CGScript = nil
		if !qrUnlocked {
			card.QRReward = nil
			card.VoucherDetail = nil
		}
		out[i] = card
	}
	return out
}

// ForReceiverDay returns a single fully unlocked day with its payload intact.
func ForReceiverDay(card Card) Card {
	unlocked := true
	card.Unlocked = &unlocked
	card.QRUnlocked = &unlocked
	card.NextUnlockAt = nil
	return card
}

// CreatorView builds the owner's countdown payload.
func CreatorView(countdown store.Countdown, stored []store.DayCard, now time.Time) CountdownView {
	available := AvailableDay(countdown.StartDate, countdown.TotalDays, now)
	cards := Assemble(countdown.TotalDays, stored, countdown)
	return CountdownView{
		Countdown:    countdown,
		DayCards:     ForCreator(cards, countdown.StartDate, available),
		AvailableDay: available,
	}
}

// ReceiverView builds a receiver's countdown payload. Creator-only fields
// (legacy rewards, recipient list) are dropped.
func ReceiverView(countdown store.Countdown, stored []store.DayCard, unlockedDays store.IntArray, now time.Time) CountdownView {
	available := AvailableDay(countdown.StartDate, countdown.TotalDays, now)
	cards := Assemble(countdown.TotalDays, stored, countdown)
	countdown.QRRewards = nil
	countdown.RecipientIDs = nil
	return CountdownView{
		Countdown:    countdown,
		DayCards:     ForReceiverSummary(cards, countdown.StartDate, available, unlockedDays),
		AvailableDay: available,
	}
}
