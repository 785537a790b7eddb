package mail

import (
	"context"
	"errors"
	"fmt"

	"countdown-server/internal/observability"

	"github.com/resendlabs/resend-go"
)

var ErrMissingAPIKey = errors.New("resend api key is empty")

// ResendClient delivers countdown mail through Resend
type ResendClient struct {
	client *resend.Client
	logger *observability.Logger
}

func NewResendClient(apiKey string, logger *observability.Logger) (*ResendClient, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &ResendClient{
		client: resend.NewClient(apiKey),
		logger: logger,
	}, nil
}

// SendEmail sends one HTML message and returns the provider's message id.
// The Resend SDK takes no context, so a cancelled ctx is checked up front.
func (c *ResendClient) SendEmail(ctx context.Context, from, to, subject, htmlContent string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "email_subject", Value: subject})

	sent, err := c.client.Emails.Send(&resend.SendEmailRequest{
		From:    from,
		To:      []string{to},
		Subject: subject,
		Html:    htmlContent,
	})
	if err != nil {
		c.logger.Error(ctx, "resend rejected message", err)
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "email_id", Value: sent.Id}), "email handed to resend")
	return sent.Id, nil
}
