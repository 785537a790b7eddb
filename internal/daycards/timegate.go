package daycards

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultTotalDays = 24
	MinTotalDays     = 1
	MaxTotalDays     = 90
)

const day = 24 * time.Hour

var ErrDayOutOfRange = errors.New("day out of range")

// ClampTotalDays forces n into [MinTotalDays, MaxTotalDays].
func ClampTotalDays(n int) int {
	if n < MinTotalDays {
		return MinTotalDays
	}
	if n > MaxTotalDays {
		return MaxTotalDays
	}
	return n
}

// AvailableDay returns the highest day index that is chronologically open at now,
// in [0, totalDays]. A countdown without a start date is fully available.
func AvailableDay(startDate *time.Time, totalDays int, now time.Time) int {
	if startDate == nil || startDate.IsZero() {
		return totalDays
	}
	if now.Before(*startDate) {
		return 0
	}
	elapsed := int(now.Sub(*startDate)/day) + 1
	if elapsed > totalDays {
		return totalDays
	}
	return elapsed
}

// UnlockAt is the instant day n opens: startDate + (n-1) days.
func UnlockAt(startDate time.Time, n int) time.Time {
	return startDate.Add(time.Duration(n-1) * day)
}

// EndDate derives the last day's unlock instant.
func EndDate(startDate time.Time, totalDays int) time.Time {
	return UnlockAt(startDate, totalDays)
}

// ValidateDay reports ErrDayOutOfRange unless n is in [1, totalDays].
func ValidateDay(n, totalDays int) error {
	if n < 1 || n > totalDays {
		return fmt.Errorf("%w: day %d not in [1, %d]", ErrDayOutOfRange, n, totalDays)
	}
	return nil
}
