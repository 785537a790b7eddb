package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"countdown-server/internal/daycards"
	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/google/uuid"
)

// ReceiverStore defines the database operations required by ReceiverProcessor
type ReceiverStore interface {
	GetAssignmentByID(ctx context.Context, assignmentID uuid.UUID) (store.Assignment, error)
	GetAssignmentsByReceiver(ctx context.Context, receiverID uuid.UUID) ([]store.Assignment, error)
	AddUnlockedDay(ctx context.Context, assignmentID uuid.UUID, day int) (store.Assignment, error)
	GetCountdownByID(ctx context.Context, countdownID uuid.UUID) (store.Countdown, error)
	GetDayCardsByCountdown(ctx context.Context, countdownID uuid.UUID) ([]store.DayCard, error)
	GetDayCard(ctx context.Context, countdownID uuid.UUID, day int) (store.DayCard, error)
}

// TokenVerifier checks QR unlock tokens
type TokenVerifier interface {
	ParseDay(token string) (int, error)
	Verify(token string, countdownID uuid.UUID, day int) error
}

// AttemptLimiter throttles unlock attempts per key
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// EventPublisher defines the domain events emitted by ReceiverProcessor
type EventPublisher interface {
	PublishDayUnlocked(ctx context.Context, assignment store.Assignment, day int) error
}

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNotShared          = errors.New("this countdown is not shared with you")
	ErrCountdownNotFound  = errors.New("countdown not found")
	ErrInvalidQRToken     = errors.New("invalid QR code")
	ErrDayNotAvailable    = errors.New("day is not available yet")
	ErrDayNotUnlocked     = errors.New("day has not been unlocked")
	ErrDayContentNotFound = errors.New("day content not found")
	ErrTooManyAttempts    = errors.New("too many unlock attempts")
)

// DayNotAvailableError reports when a time-gated day opens
type DayNotAvailableError struct {
	Day          int
	NextUnlockAt time.Time
}

func (e *DayNotAvailableError) Error() string {
	return fmt.Sprintf("day %d is not available until %s", e.Day, e.NextUnlockAt.Format(time.RFC3339))
}

func (e *DayNotAvailableError) Is(target error) bool {
	return target == ErrDayNotAvailable
}

type ReceiverProcessor struct {
	store   ReceiverStore
	tokens  TokenVerifier
	limiter AttemptLimiter
	events  EventPublisher
	logger  *observability.Logger
	now     func() time.Time
}

func New(store ReceiverStore, tokens TokenVerifier, limiter AttemptLimiter, events EventPublisher, logger *observability.Logger) ReceiverProcessor {
	return ReceiverProcessor{
		store:   store,
		tokens:  tokens,
		limiter: limiter,
		events:  events,
		logger:  logger,
		now:     time.Now,
	}
}

// CountdownSummary is the countdown header shown in a receiver's list
type CountdownSummary struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CoverImage  string      `json:"coverImage"`
	ThemeColors store.JSONB `json:"themeColors"`
	StartDate   *time.Time  `json:"startDate"`
	EndDate     *time.Time  `json:"endDate"`
	TotalDays   int         `json:"totalDays"`
}

type AssignmentSummary struct {
	AssignmentID uuid.UUID        `json:"assignmentId"`
	Status       string           `json:"status"`
	UnlockedDays store.IntArray   `json:"unlockedDays"`
	AvailableDay int              `json:"availableDay"`
	Countdown    CountdownSummary `json:"countdown"`
}

type AssignedCountdown struct {
	Assignment store.Assignment       `json:"assignment"`
	Countdown  daycards.CountdownView `json:"countdown"`
}

type UnlockResult struct {
	Success         bool           `json:"success"`
	Day             int            `json:"day"`
	AlreadyUnlocked bool           `json:"alreadyUnlocked"`
	UnlockedDays    store.IntArray `json:"unlockedDays"`
}

// ListAssignments returns every countdown shared with the receiver. Assignments
// whose countdown has been deleted are skipped.
func (p *ReceiverProcessor) ListAssignments(ctx context.Context, receiverID uuid.UUID) ([]AssignmentSummary, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "receiver_id", Value: receiverID.String()})

	assignments, err := p.store.GetAssignmentsByReceiver(ctx, receiverID)
	if err != nil {
		p.logger.Error(ctx, "failed to list assignments", err)
		return nil, err
	}

	now := p.now()
	summaries := make([]AssignmentSummary, 0, len(assignments))
	for _, assignment := range assignments {
		countdown, err := p.store.GetCountdownByID(ctx, assignment.CountdownID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			p.logger.Error(ctx, "failed to get countdown for assignment", err)
			return nil, err
		}
		summaries = append(summaries, AssignmentSummary{
			AssignmentID: assignment.ID,
			Status:       assignment.Status,
			UnlockedDays: nonNilDays(assignment.UnlockedDays),
			AvailableDay: daycards.AvailableDay(countdown.StartDate, countdown.TotalDays, now),
			Countdown: CountdownSummary{
				ID:          countdown.ID,
				Title:       countdown.Title,
				Description: countdown.Description,
				CoverImage:  countdown.CoverImage,
				ThemeColors: countdown.ThemeColors,
				StartDate:   countdown.StartDate,
				EndDate:     countdown.EndDate,
				TotalDays:   countdown.TotalDays,
			},
		})
	}
	return summaries, nil
}

// GetCountdown returns the receiver projection of an assigned countdown.
func (p *ReceiverProcessor) GetCountdown(ctx context.Context, receiverID, assignmentID uuid.UUID) (AssignedCountdown, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "receiver_id", Value: receiverID.String()},
		observability.Field{Key: "assignment_id", Value: assignmentID.String()},
	)

	assignment, countdown, err := p.loadAssignment(ctx, receiverID, assignmentID)
	if err != nil {
		return AssignedCountdown{}, err
	}

	stored, err := p.store.GetDayCardsByCountdown(ctx, countdown.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get day cards", err)
		return AssignedCountdown{}, err
	}

	assignment.UnlockedDays = nonNilDays(assignment.UnlockedDays)
	return AssignedCountdown{
		Assignment: assignment,
		Countdown:  daycards.ReceiverView(countdown, stored, assignment.UnlockedDays, p.now()),
	}, nil
}

// GetDay returns one day's full content. Checks run in order: ownership, day
// range, time gate, QR gate, then existence.
func (p *ReceiverProcessor) GetDay(ctx context.Context, receiverID, assignmentID uuid.UUID, day int) (daycards.Card, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "receiver_id", Value: receiverID.String()},
		observability.Field{Key: "assignment_id", Value: assignmentID.String()},
		observability.Field{Key: "day", Value: day},
	)

	assignment, countdown, err := p.loadAssignment(ctx, receiverID, assignmentID)
	if err != nil {
		return daycards.Card{}, err
	}

	if err := daycards.ValidateDay(day, countdown.TotalDays); err != nil {
		return daycards.Card{}, err
	}

	if day > daycards.AvailableDay(countdown.StartDate, countdown.TotalDays, p.now()) {
		return daycards.Card{}, &DayNotAvailableError{
			Day:          day,
			NextUnlockAt: daycards.UnlockAt(*countdown.StartDate, day),
		}
	}

	if !assignment.UnlockedDays.Contains(day) {
		return daycards.Card{}, ErrDayNotUnlocked
	}

	var stored []store.DayCard
	card, err := p.store.GetDayCard(ctx, countdown.ID, day)
	switch {
	case err == nil:
		stored = []store.DayCard{card}
	case errors.Is(err, store.ErrNotFound):
	default:
		p.logger.Error(ctx, "failed to get day card", err)
		return daycards.Card{}, err
	}

	assembled := daycards.Assemble(countdown.TotalDays, stored, countdown)[day-1]
	if !assembled.HasContent() {
		return daycards.Card{}, ErrDayContentNotFound
	}
	return daycards.ForReceiverDay(assembled), nil
}

// UnlockDay records a QR unlock for the day encoded in qrToken. Unlocking an
// already unlocked day succeeds without writing or emitting an event.
func (p *ReceiverProcessor) UnlockDay(ctx context.Context, receiverID, assignmentID uuid.UUID, qrToken string) (UnlockResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "receiver_id", Value: receiverID.String()},
		observability.Field{Key: "assignment_id", Value: assignmentID.String()},
	)

	allowed, err := p.limiter.Allow(ctx, "unlock:"+receiverID.String())
	if err != nil {
		p.logger.WarnWithError(ctx, "unlock rate limit check failed, allowing attempt", err)
	} else if !allowed {
		p.logger.Warn(ctx, "unlock attempts throttled")
		return UnlockResult{}, ErrTooManyAttempts
	}

	assignment, countdown, err := p.loadAssignment(ctx, receiverID, assignmentID)
	if err != nil {
		return UnlockResult{}, err
	}

	day, err := p.tokens.ParseDay(qrToken)
	if err != nil {
		p.logger.WarnWithError(ctx, "malformed qr token", err)
		return UnlockResult{}, fmt.Errorf("%w: %v", ErrInvalidQRToken, err)
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "day", Value: day})

	if err := daycards.ValidateDay(day, countdown.TotalDays); err != nil {
		return UnlockResult{}, err
	}

	if err := p.tokens.Verify(qrToken, countdown.ID, day); err != nil {
		p.logger.WarnWithError(ctx, "qr token rejected", err)
		return UnlockResult{}, fmt.Errorf("%w: %v", ErrInvalidQRToken, err)
	}

	if assignment.UnlockedDays.Contains(day) {
		return UnlockResult{
			Success:         true,
			Day:             day,
			AlreadyUnlocked: true,
			UnlockedDays:    nonNilDays(assignment.UnlockedDays),
		}, nil
	}

	updated, err := p.store.AddUnlockedDay(ctx, assignment.ID, day)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return UnlockResult{}, ErrAssignmentNotFound
		}
		p.logger.Error(ctx, "failed to record unlocked day", err)
		return UnlockResult{}, err
	}

	if err := p.events.PublishDayUnlocked(ctx, updated, day); err != nil {
		p.logger.Error(ctx, "failed to publish day unlocked event", err)
	}

	p.logger.Info(ctx, "day unlocked")
	return UnlockResult{
		Success:      true,
		Day:          day,
		UnlockedDays: nonNilDays(updated.UnlockedDays),
	}, nil
}

func (p *ReceiverProcessor) loadAssignment(ctx context.Context, receiverID, assignmentID uuid.UUID) (store.Assignment, store.Countdown, error) {
	assignment, err := p.store.GetAssignmentByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Assignment{}, store.Countdown{}, ErrAssignmentNotFound
		}
		p.logger.Error(ctx, "failed to get assignment", err)
		return store.Assignment{}, store.Countdown{}, err
	}
	if assignment.ReceiverID != receiverID {
		return store.Assignment{}, store.Countdown{}, ErrNotShared
	}

	countdown, err := p.store.GetCountdownByID(ctx, assignment.CountdownID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Assignment{}, store.Countdown{}, ErrCountdownNotFound
		}
		p.logger.Error(ctx, "failed to get countdown", err)
		return store.Assignment{}, store.Countdown{}, err
	}
	return assignment, countdown, nil
}

func nonNilDays(days store.IntArray) store.IntArray {
	if days == nil {
		return store.IntArray{}
	}
	return days
}
