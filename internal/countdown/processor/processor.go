package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"countdown-server/internal/daycards"
	"countdown-server/internal/jobs"
	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/google/uuid"
)

// CountdownStore defines the database operations required by CountdownProcessor
type CountdownStore interface {
	CreateCountdown(ctx context.Context, params store.CreateCountdownParams) (store.Countdown, error)
	GetCountdownByID(ctx context.Context, countdownID uuid.UUID) (store.Countdown, error)
	GetCountdownsByCreator(ctx context.Context, creatorID uuid.UUID) ([]store.Countdown, error)
	UpdateCountdown(ctx context.Context, countdownID uuid.UUID, params store.UpdateCountdownParams) (store.Countdown, error)
	DeleteCountdown(ctx context.Context, countdownID uuid.UUID) error
	AddCountdownRecipients(ctx context.Context, countdownID uuid.UUID, receiverIDs []uuid.UUID) (store.Countdown, error)
	// Day content
	GetDayCardsByCountdown(ctx context.Context, countdownID uuid.UUID) ([]store.DayCard, error)
	UpsertDayCard(ctx context.Context, countdownID uuid.UUID, params store.UpsertDayCardParams) (store.DayCard, error)
	SaveDayCards(ctx context.Context, countdownID uuid.UUID, totalDays int, cards []store.UpsertDayCardParams) ([]store.DayCard, error)
	DeleteDayCardsAfter(ctx context.Context, countdownID uuid.UUID, totalDays int) (int64, error)
	// Print cards
	GetPrintCardsByCountdown(ctx context.Context, countdownID uuid.UUID) ([]store.PrintCard, error)
	GetPrintCard(ctx context.Context, countdownID uuid.UUID, day int) (store.PrintCard, error)
	UpsertPrintCard(ctx context.Context, countdownID uuid.UUID, day int, params store.UpsertPrintCardParams) (store.PrintCard, error)
	DeletePrintCardsAfter(ctx context.Context, countdownID uuid.UUID, totalDays int) (int64, error)
	// Sharing
	GetUserByID(ctx context.Context, userID uuid.UUID) (store.User, error)
	GetReceiverIDsByEmails(ctx context.Context, emails []string) ([]uuid.UUID, error)
	UpsertAssignment(ctx context.Context, countdownID, receiverID uuid.UUID) (store.Assignment, bool, error)
	GetAssignmentsByCountdown(ctx context.Context, countdownID uuid.UUID) ([]store.Assignment, error)
	GetAssignmentByCountdownAndReceiver(ctx context.Context, countdownID, receiverID uuid.UUID) (store.Assignment, error)
	CreateInvitation(ctx context.Context, params store.CreateInvitationParams) (store.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (store.Invitation, error)
	MarkInvitationAccepted(ctx context.Context, invitationID, userID uuid.UUID) (store.Invitation, error)
}

// TokenScheme derives the QR unlock token for a day
type TokenScheme interface {
	Derive(countdownID uuid.UUID, day int) string
}

// EventPublisher defines the domain events emitted by CountdownProcessor
type EventPublisher interface {
	PublishAssignmentCreated(ctx context.Context, assignment store.Assignment) error
	PublishInvitationAccepted(ctx context.Context, invitation store.Invitation, assignment store.Assignment) error
}

// InvitationMailer queues invitation emails for background delivery
type InvitationMailer interface {
	EnqueueInvitationEmail(ctx context.Context, payload jobs.InvitationEmailPayload) error
}

var (
	ErrCountdownNotFound  = errors.New("countdown not found")
	ErrForbidden          = errors.New("you do not have access to this countdown")
	ErrTitleRequired      = errors.New("title is required")
	ErrInvalidDayType     = errors.New("invalid day type")
	ErrInvalidSchedule    = errors.New("end date is before start date")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation expired")
	ErrNotReceiver        = errors.New("only receivers can accept invitations")
)

const defaultInvitationTTL = 30 * 24 * time.Hour

type Config struct {
	WebAppURI     string
	InvitationTTL time.Duration
}

type CountdownProcessor struct {
	store  CountdownStore
	tokens TokenScheme
	events EventPublisher
	mailer InvitationMailer
	config Config
	logger *observability.Logger
	now    func() time.Time
}

func New(store CountdownStore, tokens TokenScheme, events EventPublisher, mailer InvitationMailer, config Config, logger *observability.Logger) CountdownProcessor {
	if config.InvitationTTL == 0 {
		config.InvitationTTL = defaultInvitationTTL
	}
	config.WebAppURI = strings.TrimRight(config.WebAppURI, "/")
	return CountdownProcessor{
		store:  store,
		tokens: tokens,
		events: events,
		mailer: mailer,
		config: config,
		logger: logger,
		now:    time.Now,
	}
}

// CreateCountdownRequest represents a request to create a countdown
type CreateCountdownRequest struct {
	Title       string
	Description string
	CoverImage  string
	ThemeColors map[string]interface{}
	StartDate   *time.Time
	EndDate     *time.Time
	TotalDays   *int
	Type        string
	QRRewards   []store.LegacyQRReward
}

// UpdateCountdownRequest represents a partial update. Nil fields are unchanged.
type UpdateCountdownRequest struct {
	Title          *string
	Description    *string
	CoverImage     *string
	ThemeColors    map[string]interface{}
	StartDate      *time.Time
	ClearStartDate bool
	EndDate        *time.Time
	TotalDays      *int
	Type           *string
	QRRewards      []store.LegacyQRReward
}

// CountdownDetails is the GET /countdowns/:id payload. The owner always gets
// an assignments key, empty or not; receivers never do.
type CountdownDetails struct {
	Countdown   daycards.CountdownView
	Assignments []store.Assignment
	IsOwner     bool
}

func (d CountdownDetails) MarshalJSON() ([]byte, error) {
	if !d.IsOwner {
		return json.Marshal(struct {
			Countdown daycards.CountdownView `json:"countdown"`
		}{d.Countdown})
	}
	assignments := d.Assignments
	if assignments == nil {
		assignments = []store.Assignment{}
	}
	return json.Marshal(struct {
		Countdown   daycards.CountdownView `json:"countdown"`
		Assignments []store.Assignment     `json:"assignments"`
	}{d.Countdown, assignments})
}

func (p *CountdownProcessor) CreateCountdown(ctx context.Context, creatorID uuid.UUID, req CreateCountdownRequest) (store.Countdown, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return store.Countdown{}, ErrTitleRequired
	}

	countdownType := req.Type
	if countdownType == "" {
		countdownType = daycards.TypeStory
	}
	if !daycards.ValidType(countdownType) {
		return store.Countdown{}, ErrInvalidDayType
	}

	totalDays := daycards.DefaultTotalDays
	if req.TotalDays != nil {
		totalDays = daycards.ClampTotalDays(*req.TotalDays)
	}

	endDate, err := resolveEndDate(req.StartDate, req.EndDate, totalDays)
	if err != nil {
		return store.Countdown{}, err
	}

	countdown, err := p.store.CreateCountdown(ctx, store.CreateCountdownParams{
		CreatorID:   creatorID,
		Title:       title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
		ThemeColors: store.JSONB(req.ThemeColors),
		StartDate:   req.StartDate,
		EndDate:     endDate,
		TotalDays:   totalDays,
		Type:        countdownType,
		QRRewards:   store.LegacyQRRewards(req.QRRewards),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create countdown", err)
		return store.Countdown{}, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdown.ID.String()},
		observability.Field{Key: "total_days", Value: countdown.TotalDays},
	), "countdown created")
	return countdown, nil
}

func (p *CountdownProcessor) ListCountdowns(ctx context.Context, creatorID uuid.UUID) ([]store.Countdown, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	countdowns, err := p.store.GetCountdownsByCreator(ctx, creatorID)
	if err != nil {
		p.logger.Error(ctx, "failed to list countdowns", err)
		return nil, err
	}
	return countdowns, nil
}

// GetCountdown returns the owner's full view, or the receiver projection when
// callerID holds an assignment for the countdown.
func (p *CountdownProcessor) GetCountdown(ctx context.Context, callerID, countdownID uuid.UUID) (CountdownDetails, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "caller_id", Value: callerID.String()},
	)

	countdown, err := p.getCountdown(ctx, countdownID)
	if err != nil {
		return CountdownDetails{}, err
	}

	stored, err := p.store.GetDayCardsByCountdown(ctx, countdownID)
	if err != nil {
		p.logger.Error(ctx, "failed to get day cards", err)
		return CountdownDetails{}, err
	}

	if countdown.CreatorID == callerID {
		assignments, err := p.store.GetAssignmentsByCountdown(ctx, countdownID)
		if err != nil {
			p.logger.Error(ctx, "failed to get assignments", err)
			return CountdownDetails{}, err
		}
		return CountdownDetails{
			Countdown:   daycards.CreatorView(countdown, stored, p.now()),
			Assignments: assignments,
			IsOwner:     true,
		}, nil
	}

	assignment, err := p.store.GetAssignmentByCountdownAndReceiver(ctx, countdownID, callerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return CountdownDetails{}, ErrForbidden
		}
		p.logger.Error(ctx, "failed to get assignment", err)
		return CountdownDetails{}, err
	}
	return CountdownDetails{
		Countdown: daycards.ReceiverView(countdown, stored, assignment.UnlockedDays, p.now()),
	}, nil
}

func (p *CountdownProcessor) UpdateCountdown(ctx context.Context, creatorID, countdownID uuid.UUID, req UpdateCountdownRequest) (daycards.CountdownView, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "creator_id", Value: creatorID.String()},
	)

	existing, err := p.getOwnedCountdown(ctx, creatorID, countdownID)
	if err != nil {
		return daycards.CountdownView{}, err
	}

	params := store.UpdateCountdownParams{
		Description:   req.Description,
		CoverImage:    req.CoverImage,
		ClearSchedule: req.ClearStartDate,
	}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return daycards.CountdownView{}, ErrTitleRequired
		}
		params.Title = &title
	}
	if req.Type != nil {
		if !daycards.ValidType(*req.Type) {
			return daycards.CountdownView{}, ErrInvalidDayType
		}
		params.Type = req.Type
	}
	if req.ThemeColors != nil {
		colors := store.JSONB(req.ThemeColors)
		params.ThemeColors = &colors
	}
	if req.QRRewards != nil {
		rewards := store.LegacyQRRewards(req.QRRewards)
		params.QRRewards = &rewards
	}

	totalDays := existing.TotalDays
	if req.TotalDays != nil {
		totalDays = daycards.ClampTotalDays(*req.TotalDays)
		params.TotalDays = &totalDays
	}

	if !req.ClearStartDate {
		startDate := existing.StartDate
		if req.StartDate != nil {
			startDate = req.StartDate
			params.StartDate = req.StartDate
		}
		endDate := req.EndDate
		// A creator-set end date survives a day-count change; a new start date re-derives it.
		if endDate == nil && req.StartDate == nil && hasEndDateOverride(existing) {
			endDate = existing.EndDate
		}
		scheduleChanged := req.StartDate != nil || req.TotalDays != nil
		if req.EndDate != nil || scheduleChanged {
			resolved, err := resolveEndDate(startDate, endDate, totalDays)
			if err != nil {
				return daycards.CountdownView{}, err
			}
			params.EndDate = resolved
		}
	}

	updated, err := p.store.UpdateCountdown(ctx, countdownID, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return daycards.CountdownView{}, ErrCountdownNotFound
		}
		p.logger.Error(ctx, "failed to update countdown", err)
		return daycards.CountdownView{}, err
	}

	if updated.TotalDays < existing.TotalDays {
		if err := p.pruneAfter(ctx, countdownID, updated.TotalDays); err != nil {
			return daycards.CountdownView{}, err
		}
	}

	stored, err := p.store.GetDayCardsByCountdown(ctx, countdownID)
	if err != nil {
		p.logger.Error(ctx, "failed to get day cards", err)
		return daycards.CountdownView{}, err
	}
	return daycards.CreatorView(updated, stored, p.now()), nil
}

func (p *CountdownProcessor) DeleteCountdown(ctx context.Context, creatorID, countdownID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "creator_id", Value: creatorID.String()},
	)

	if _, err := p.getOwnedCountdown(ctx, creatorID, countdownID); err != nil {
		return err
	}
	if err := p.store.DeleteCountdown(ctx, countdownID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCountdownNotFound
		}
		p.logger.Error(ctx, "failed to delete countdown", err)
		return err
	}
	p.logger.Info(ctx, "countdown deleted")
	return nil
}

func (p *CountdownProcessor) getCountdown(ctx context.Context, countdownID uuid.UUID) (store.Countdown, error) {
	countdown, err := p.store.GetCountdownByID(ctx, countdownID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Countdown{}, ErrCountdownNotFound
		}
		p.logger.Error(ctx, "failed to get countdown", err)
		return store.Countdown{}, err
	}
	return countdown, nil
}

func (p *CountdownProcessor) getOwnedCountdown(ctx context.Context, creatorID, countdownID uuid.UUID) (store.Countdown, error) {
	countdown, err := p.getCountdown(ctx, countdownID)
	if err != nil {
		return store.Countdown{}, err
	}
	if countdown.CreatorID != creatorID {
		return store.Countdown{}, ErrForbidden
	}
	return countdown, nil
}

// pruneAfter drops day and print cards orphaned by a shorter countdown.
func (p *CountdownProcessor) pruneAfter(ctx context.Context, countdownID uuid.UUID, totalDays int) error {
	removed, err := p.store.DeleteDayCardsAfter(ctx, countdownID, totalDays)
	if err != nil {
		p.logger.Error(ctx, "failed to prune day cards", err)
		return err
	}
	if _, err := p.store.DeletePrintCardsAfter(ctx, countdownID, totalDays); err != nil {
		p.logger.Error(ctx, "failed to prune print cards", err)
		return err
	}
	if removed > 0 {
		p.logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "pruned_days", Value: removed},
		), "pruned day cards beyond total days")
	}
	return nil
}

// resolveEndDate keeps an explicit end date, otherwise derives it from the start.
// hasEndDateOverride reports whether the stored end date differs from the one
// derived from startDate and totalDays.
func hasEndDateOverride(c store.Countdown) bool {
	if c.EndDate == nil {
		return false
	}
	if c.StartDate == nil {
		return true
	}
	return !c.EndDate.Equal(daycards.EndDate(*c.StartDate, c.TotalDays))
}

func resolveEndDate(startDate, endDate *time.Time, totalDays int) (*time.Time, error) {
	if endDate != nil {
		if startDate != nil && endDate.Before(*startDate) {
			return nil, fmt.Errorf("%w: %s < %s", ErrInvalidSchedule, endDate.Format(time.RFC3339), startDate.Format(time.RFC3339))
		}
		return endDate, nil
	}
	if startDate == nil {
		return nil, nil
	}
	derived := daycards.EndDate(*startDate, totalDays)
	return &derived, nil
}
