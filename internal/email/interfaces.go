package email

import "context"

// Sender delivers a rendered message. *mail.ResendClient implements it.
type Sender interface {
	SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error)
}
