package email

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/mail"
	"time"

	"countdown-server/internal/observability"
)

var (
	ErrInvalidEmailAddress = errors.New("invalid email address")
	ErrSendingEmail        = errors.New("error sending email")
)

const (
	templateInvitation  = "invitation"
	templateDayUnlocked = "day_unlocked"
)

const invitationHTML = `
<html>
	<body>
		<h1>{{.CreatorName}} made you a countdown</h1>
		<p>You have been invited to open <strong>{{.CountdownTitle}}</strong>, a gift that unwraps one day at a time.</p>
		<p><a href="{{.InviteURL}}" style="background-color: #B91C1C; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open your countdown</a></p>
		<p>This invitation is valid until {{.ExpiresOn}}.</p>
		<p>If you were not expecting a gift, you can safely ignore this email.</p>
	</body>
</html>
`

const dayUnlockedHTML = `
<html>
	<body>
		<h1>Day {{.Day}} was opened</h1>
		<p>Hi {{.CreatorName}},</p>
		<p>{{.ReceiverName}} just scanned the code for day {{.Day}} of <strong>{{.CountdownTitle}}</strong>.</p>
		<p><a href="{{.CountdownURL}}">See your countdown</a></p>
	</body>
</html>
`

var templates = template.Must(template.Must(
	template.New(templateInvitation).Parse(invitationHTML)).
	New(templateDayUnlocked).Parse(dayUnlockedHTML))

// InvitationEmail is an invitation to a receiver who may not have an account yet
type InvitationEmail struct {
	To             string
	CreatorName    string
	CountdownTitle string
	InviteURL      string
	ExpiresAt      time.Time
}

// DayUnlockedEmail tells a creator that a receiver unlocked a day with its QR code
type DayUnlockedEmail struct {
	To             string
	CreatorName    string
	ReceiverName   string
	CountdownTitle string
	Day            int
	CountdownURL   string
}

// Service renders and sends the product's transactional emails
type Service struct {
	sender        Sender
	defaultSender string
	logger        *observability.Logger
}

func New(sender Sender, defaultSender string, logger *observability.Logger) *Service {
	return &Service{
		sender:        sender,
		defaultSender: defaultSender,
		logger:        logger,
	}
}

// SendInvitationEmail sends a countdown invitation
func (s *Service) SendInvitationEmail(ctx context.Context, msg InvitationEmail) error {
	data := struct {
		InvitationEmail
		ExpiresOn string
	}{msg, msg.ExpiresAt.UTC().Format("January 2, 2006")}

	subject := fmt.Sprintf("%s sent you a gift countdown", fallback(msg.CreatorName, "Someone"))
	return s.send(ctx, msg.To, subject, templateInvitation, data)
}

// SendDayUnlockedEmail notifies the creator about a QR unlock
func (s *Service) SendDayUnlockedEmail(ctx context.Context, msg DayUnlockedEmail) error {
	msg.ReceiverName = fallback(msg.ReceiverName, "Your receiver")
	subject := fmt.Sprintf("Day %d of %s was opened", msg.Day, msg.CountdownTitle)
	return s.send(ctx, msg.To, subject, templateDayUnlocked, msg)
}

func (s *Service) send(ctx context.Context, to, subject, templateName string, data interface{}) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email_template", Value: templateName})

	if _, err := mail.ParseAddress(to); err != nil {
		s.logger.WarnWithError(ctx, "refusing to send to invalid address", err)
		return fmt.Errorf("%w: %q", ErrInvalidEmailAddress, to)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error(ctx, "failed to render email template", err)
		return fmt.Errorf("failed to render %s template: %w", templateName, err)
	}

	if _, err := s.sender.SendEmail(ctx, s.defaultSender, to, subject, buf.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrSendingEmail, err)
	}
	return nil
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
