// Package payment authenticates and decodes payment provider webhook deliveries.
package payment

import (
	"encoding/json"
	"errors"
	"time"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// SignatureHeader carries "t=<unix>,v1=<hex hmac>[,v1=...]".
const SignatureHeader = "Stripe-Signature"

type Parser struct {
	secret    string
	tolerance time.Duration
}

func NewParser(cfg config.StripeConfig) *Parser {
	tolerance := cfg.Tolerance
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &Parser{secret: cfg.WebhookSecret, tolerance: tolerance}
}

var _ commands.PaymentEventParser = (*Parser)(nil)

// Parse verifies the signature over the raw payload before decoding anything. Only the session
// fields the order is built from are read, so events pinned to another API version are accepted.
func (p *Parser) Parse(payload []byte, signatureHeader string) (*commands.PaymentEvent, error) {
	ev, err := webhook.ConstructEventWithOptions(payload, signatureHeader, p.secret, webhook.ConstructEventOptions{
		Tolerance:                p.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return nil, errs.Mark(err, errs.ErrInvalidSignature)
		}
		return nil, errs.Mark(errs.Wrap(err, "failed to decode payment event"), errs.ErrMalformedEvent)
	}
	if ev.ID == "" || ev.Type == "" {
		return nil, errs.Mark(errs.New("payment event without id or type"), errs.ErrMalformedEvent)
	}

	out := &commands.PaymentEvent{ID: ev.ID, Type: string(ev.Type)}
	if ev.Type != stripe.EventTypeCheckoutSessionCompleted {
		return out, nil
	}
	if ev.Data == nil {
		return nil, errs.Mark(errs.Newf("event %s has no data", ev.ID), errs.ErrMalformedEvent)
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(ev.Data.Raw, &sess); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode checkout session"), errs.ErrMalformedEvent)
	}
	if sess.ID == "" {
		return nil, errs.Mark(errs.Newf("event %s has a checkout session without id", ev.ID), errs.ErrMalformedEvent)
	}
	out.Checkout = toCheckout(&sess)
	return out, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}

// SignatureHeaderValue builds a header for payload signed at t. Used by tests and local tooling.
func SignatureHeaderValue(secret string, t time.Time, payload []byte) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: t,
	}).Header
}
