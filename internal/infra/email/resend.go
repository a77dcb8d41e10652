// Package email delivers rendered notifications through the Resend API.
package email

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/tracing"
	"storefront/internal/usecase/notification"

	"github.com/resend/resend-go/v2"
	"go.opentelemetry.io/otel/attribute"
)

type Mailer struct {
	client *resend.Client
	from   string
}

func NewMailer(cfg config.EmailConfig) (*Mailer, error) {
	client := resend.NewCustomClient(&http.Client{Timeout: cfg.Timeout}, cfg.APIKey)
	if cfg.BaseURL != "" {
		// Request paths resolve relative to the base, so it must end in a slash.
		base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/") + "/")
		if err != nil {
			return nil, errs.Wrapf(err, "invalid email API URL %q", cfg.BaseURL)
		}
		client.BaseURL = base
	}
	return &Mailer{client: client, from: cfg.From}, nil
}

var _ notification.Mailer = (*Mailer)(nil)

func (m *Mailer) Send(ctx context.Context, msg notification.Message) error {
	ctx, span := tracing.StartSpan(ctx, "email.send")
	defer span.End()
	span.SetAttributes(attribute.String("email.tag", msg.Tag))

	req := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.Tag != "" {
		req.Tags = []resend.Tag{{Name: "category", Value: msg.Tag}}
	}

	sent, err := m.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return errs.Wrap(err, "send email")
	}
	span.SetAttributes(attribute.String("email.id", sent.Id))
	return nil
}
