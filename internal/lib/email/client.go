// Package email provides an email sending client.
//
// It uses Resend (resend-go) as the email provider and renders
// email bodies from HTML templates embedded in the binary.
package email

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/config"
	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
	"github.com/rs/zerolog"
)

// Sender is the address mails are sent from. Resend requires a verified domain
// for anything other than onboarding@resend.dev.
const Sender = "LightBnB <onboarding@resend.dev>"

// sender is the part of the Resend API the client uses.
type sender interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Client wraps the Resend client and a logger.
type Client struct {
	emails sender
	logger *zerolog.Logger
}

// NewClient creates an email Client. Without a Resend API key the client
// only logs what it would have sent.
func NewClient(cfg *config.Config, logger *zerolog.Logger) *Client {
	c := &Client{logger: logger}
	if cfg.Integration.ResendAPIKey != "" {
		c.emails = resend.NewClient(cfg.Integration.ResendAPIKey).Emails
	}
	return c
}

// Enabled reports whether mails are actually delivered.
func (c *Client) Enabled() bool {
	return c.emails != nil
}

// SendEmail renders templateName with data and sends it to a single recipient.
func (c *Client) SendEmail(ctx context.Context, to, subject string, templateName Template, data map[string]string) error {
	body, err := Render(templateName, data)
	if err != nil {
		return err
	}

	if !c.Enabled() {
		c.logger.Warn().
			Str("to", to).
			Str("template", string(templateName)).
			Msg("email delivery disabled, skipping send")
		return nil
	}

	params := &resend.SendEmailRequest{
		From:    Sender,
		To:      []string{to},
		Subject: subject,
		Html:    body,
	}

	sent, err := c.emails.SendWithContext(ctx, params)
	if err != nil {
		return errors.Wrapf(err, "failed to send %s email", templateName)
	}

	c.logger.Debug().Str("email_id", sent.Id).Str("template", string(templateName)).Msg("email sent")
	return nil
}
