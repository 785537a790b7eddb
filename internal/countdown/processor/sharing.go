package processor

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"countdown-server/internal/jobs"
	"countdown-server/internal/observability"
	"countdown-server/internal/store"

	"github.com/google/uuid"
)

const invitationTokenBytes = 32

// AssignResult lists the countdown's recipients and assignments after an assign call
type AssignResult struct {
	Recipients  []uuid.UUID        `json:"recipients"`
	Assignments []store.Assignment `json:"assignments"`
}

// InvitationLink is returned to the creator after creating an invitation
type InvitationLink struct {
	Token     string    `json:"token"`
	InviteURL string    `json:"inviteUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// InvitationCountdown is the public preview of an invited countdown
type InvitationCountdown struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CoverImage  string    `json:"coverImage"`
	CreatorName string    `json:"creatorName"`
}

type InvitationPreview struct {
	Valid     bool                `json:"valid"`
	Countdown InvitationCountdown `json:"countdown"`
}

// Assign shares the countdown with the union of receiverIDs and the receivers
// registered under emails. Unknown ids and emails that do not belong to a
// receiver are skipped. Existing assignments keep their unlock progress.
func (p *CountdownProcessor) Assign(ctx context.Context, creatorID, countdownID uuid.UUID, receiverIDs []uuid.UUID, emails []string) (AssignResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "creator_id", Value: creatorID.String()},
	)

	if _, err := p.getOwnedCountdown(ctx, creatorID, countdownID); err != nil {
		return AssignResult{}, err
	}

	resolved, err := p.resolveReceivers(ctx, receiverIDs, emails)
	if err != nil {
		return AssignResult{}, err
	}

	countdown, err := p.store.AddCountdownRecipients(ctx, countdownID, resolved)
	if err != nil {
		p.logger.Error(ctx, "failed to add countdown recipients", err)
		return AssignResult{}, err
	}

	for _, receiverID := range resolved {
		assignment, created, err := p.store.UpsertAssignment(ctx, countdownID, receiverID)
		if err != nil {
			p.logger.Error(observability.WithFields(ctx,
				observability.Field{Key: "receiver_id", Value: receiverID.String()},
			), "failed to upsert assignment", err)
			return AssignResult{}, err
		}
		if created {
			p.publishAssignmentCreated(ctx, assignment)
		}
	}

	assignments, err := p.store.GetAssignmentsByCountdown(ctx, countdownID)
	if err != nil {
		p.logger.Error(ctx, "failed to get assignments", err)
		return AssignResult{}, err
	}

	recipients := []uuid.UUID(countdown.RecipientIDs)
	if recipients == nil {
		recipients = []uuid.UUID{}
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "requested", Value: len(receiverIDs) + len(emails)},
		observability.Field{Key: "resolved", Value: len(resolved)},
	), "countdown assigned")
	return AssignResult{Recipients: recipients, Assignments: assignments}, nil
}

func (p *CountdownProcessor) resolveReceivers(ctx context.Context, receiverIDs []uuid.UUID, emails []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool)
	resolved := []uuid.UUID{}

	for _, id := range receiverIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		user, err := p.store.GetUserByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			p.logger.Error(ctx, "failed to look up receiver", err)
			return nil, err
		}
		// Ids get the same role filter as emails; a creator account cannot redeem an assignment.
		if user.Role != store.RoleReceiver {
			continue
		}
		resolved = append(resolved, id)
	}

	normalized := make([]string, 0, len(emails))
	for _, email := range emails {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			normalized = append(normalized, email)
		}
	}
	if len(normalized) == 0 {
		return resolved, nil
	}

	byEmail, err := p.store.GetReceiverIDsByEmails(ctx, normalized)
	if err != nil {
		p.logger.Error(ctx, "failed to resolve receiver emails", err)
		return nil, err
	}
	for _, id := range byEmail {
		if !seen[id] {
			seen[id] = true
			resolved = append(resolved, id)
		}
	}
	return resolved, nil
}

// CreateInvitation creates a shareable invitation link. When email is set an
// invitation email is queued; a queueing failure does not invalidate the link.
func (p *CountdownProcessor) CreateInvitation(ctx context.Context, creatorID, countdownID uuid.UUID, email *string) (InvitationLink, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "countdown_id", Value: countdownID.String()},
		observability.Field{Key: "creator_id", Value: creatorID.String()},
	)

	countdown, err := p.getOwnedCountdown(ctx, creatorID, countdownID)
	if err != nil {
		return InvitationLink{}, err
	}

	token, err := newInvitationToken()
	if err != nil {
		p.logger.Error(ctx, "failed to generate invitation token", err)
		return InvitationLink{}, err
	}

	if email != nil {
		trimmed := strings.ToLower(strings.TrimSpace(*email))
		email = &trimmed
		if trimmed == "" {
			email = nil
		}
	}

	invitation, err := p.store.CreateInvitation(ctx, store.CreateInvitationParams{
		Token:       token,
		CountdownID: countdownID,
		CreatedBy:   creatorID,
		Email:       email,
		ExpiresAt:   p.now().Add(p.config.InvitationTTL),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create invitation", err)
		return InvitationLink{}, err
	}

	link := InvitationLink{
		Token:     invitation.Token,
		InviteURL: fmt.Sprintf("%s/invite/%s", p.config.WebAppURI, invitation.Token),
		ExpiresAt: invitation.ExpiresAt,
	}

	if email != nil {
		p.queueInvitationEmail(ctx, countdown, invitation, link)
	}
	return link, nil
}

func (p *CountdownProcessor) queueInvitationEmail(ctx context.Context, countdown store.Countdown, invitation store.Invitation, link InvitationLink) {
	creatorName := ""
	if creator, err := p.store.GetUserByID(ctx, countdown.CreatorID); err == nil {
		creatorName = creator.Name
	} else {
		p.logger.WarnWithError(ctx, "failed to load creator for invitation email", err)
	}

	err := p.mailer.EnqueueInvitationEmail(ctx, jobs.InvitationEmailPayload{
		InvitationID:   invitation.ID,
		To:             *invitation.Email,
		CreatorName:    creatorName,
		CountdownTitle: countdown.Title,
		InviteURL:      link.InviteURL,
		ExpiresAt:      invitation.ExpiresAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to enqueue invitation email", err)
	}
}

// CheckInvitation returns the public preview for a pending invitation token.
func (p *CountdownProcessor) CheckInvitation(ctx context.Context, token string) (InvitationPreview, error) {
	invitation, err := p.getValidInvitation(ctx, token)
	if err != nil {
		return InvitationPreview{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "countdown_id", Value: invitation.CountdownID.String()})

	countdown, err := p.getCountdown(ctx, invitation.CountdownID)
	if err != nil {
		return InvitationPreview{}, err
	}

	creatorName := ""
	creator, err := p.store.GetUserByID(ctx, countdown.CreatorID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to get countdown creator", err)
		return InvitationPreview{}, err
	}
	if err == nil {
		creatorName = creator.Name
	}

	return InvitationPreview{
		Valid: true,
		Countdown: InvitationCountdown{
			ID:          countdown.ID,
			Title:       countdown.Title,
			Description: countdown.Description,
			CoverImage:  countdown.CoverImage,
			CreatorName: creatorName,
		},
	}, nil
}

// AcceptInvitation assigns the countdown to the calling receiver. Tokens stay
// redeemable until they expire; accepting twice keeps the existing assignment.
func (p *CountdownProcessor) AcceptInvitation(ctx context.Context, callerID uuid.UUID, callerRole, token string) (store.Assignment, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "receiver_id", Value: callerID.String()})

	if callerRole != store.RoleReceiver {
		return store.Assignment{}, ErrNotReceiver
	}

	invitation, err := p.getValidInvitation(ctx, token)
	if err != nil {
		return store.Assignment{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "countdown_id", Value: invitation.CountdownID.String()})

	if _, err := p.getCountdown(ctx, invitation.CountdownID); err != nil {
		return store.Assignment{}, err
	}

	assignment, created, err := p.store.UpsertAssignment(ctx, invitation.CountdownID, callerID)
	if err != nil {
		p.logger.Error(ctx, "failed to upsert assignment", err)
		return store.Assignment{}, err
	}

	if _, err := p.store.AddCountdownRecipients(ctx, invitation.CountdownID, []uuid.UUID{callerID}); err != nil {
		p.logger.Error(ctx, "failed to add countdown recipient", err)
		return store.Assignment{}, err
	}

	accepted, err := p.store.MarkInvitationAccepted(ctx, invitation.ID, callerID)
	if err != nil {
		p.logger.Error(ctx, "failed to mark invitation accepted", err)
		return store.Assignment{}, err
	}

	if created {
		p.publishAssignmentCreated(ctx, assignment)
	}
	if err := p.events.PublishInvitationAccepted(ctx, accepted, assignment); err != nil {
		p.logger.Error(ctx, "failed to publish invitation accepted event", err)
	}

	p.logger.Info(ctx, "invitation accepted")
	return assignment, nil
}

func (p *CountdownProcessor) getValidInvitation(ctx context.Context, token string) (store.Invitation, error) {
	if token == "" {
		return store.Invitation{}, ErrInvitationNotFound
	}
	invitation, err := p.store.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Invitation{}, ErrInvitationNotFound
		}
		p.logger.Error(ctx, "failed to get invitation", err)
		return store.Invitation{}, err
	}
	if !p.now().Before(invitation.ExpiresAt) {
		return store.Invitation{}, ErrInvitationExpired
	}
	return invitation, nil
}

func (p *CountdownProcessor) publishAssignmentCreated(ctx context.Context, assignment store.Assignment) {
	if err := p.events.PublishAssignmentCreated(ctx, assignment); err != nil {
		p.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "assignment_id", Value: assignment.ID.String()},
		), "failed to publish assignment created event", err)
	}
}

func newInvitationToken() (string, error) {
	b := make([]byte, invitationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
