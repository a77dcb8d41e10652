//go:build unit

package payment_test

import (
	"testing"
	"time"

	"storefront/internal/infra/payment"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "whsec_test"

// Signature age is measured against the wall clock.
var signedAt = time.Now().Add(-time.Minute)

const completedEvent = `{
  "id": "evt_1",
  "type": "checkout.session.completed",
  "data": {
    "object": {
      "id": "cs_test_a1",
      "payment_intent": "pi_1",
      "customer_email": null,
      "customer_details": {"email": "Ada@Example.com", "name": "Ada L"},
      "collected_information": {
        "shipping_details": {
          "name": "Ada Lovelace",
          "address": {"line1": "1 Main St", "city": "Portland", "state": "OR", "postal_code": "97201", "country": "US"}
        }
      },
      "amount_subtotal": 5000,
      "amount_total": 4500,
      "total_details": {"amount_discount": 1000, "amount_shipping": 500},
      "metadata": {"items_0": "tee-black,M,black,2", "discount_code": "SUMMER20"}
    }
  }
}`

func newParser(tolerance time.Duration) *payment.Parser {
	return payment.NewParser(config.StripeConfig{WebhookSecret: secret, Tolerance: tolerance})
}

func TestParser_Parse(t *testing.T) {
	t.Run("success: checkout session completed", func(t *testing.T) {
		payload := []byte(completedEvent)
		ev, err := newParser(5*time.Minute).Parse(payload, payment.SignatureHeaderValue(secret, signedAt, payload))
		require.NoError(t, err)

		assert.Equal(t, "evt_1", ev.ID)
		assert.Equal(t, commands.EventCheckoutSessionCompleted, ev.Type)
		require.NotNil(t, ev.Checkout)
		sess := ev.Checkout
		assert.Equal(t, "cs_test_a1", sess.SessionID)
		assert.Equal(t, "pi_1", sess.PaymentIntentID)
		assert.Equal(t, "Ada@Example.com", sess.CustomerEmail)
		assert.Equal(t, "Ada Lovelace", sess.ShippingName)
		assert.Equal(t, "Portland", sess.ShippingAddress.City)
		assert.Equal(t, int64(5000), sess.AmountSubtotal)
		assert.Equal(t, int64(500), sess.AmountShipping)
		assert.Equal(t, int64(1000), sess.AmountDiscount)
		assert.Equal(t, int64(4500), sess.AmountTotal)
		assert.Equal(t, "SUMMER20", sess.Metadata["discount_code"])
	})

	t.Run("success: other event types carry no session", func(t *testing.T) {
		payload := []byte(`{"id":"evt_2","type":"payment_intent.created","data":{"object":{}}}`)
		ev, err := newParser(5*time.Minute).Parse(payload, payment.SignatureHeaderValue(secret, signedAt, payload))
		require.NoError(t, err)
		assert.Nil(t, ev.Checkout)
	})

	t.Run("success: any of several v1 signatures may match", func(t *testing.T) {
		payload := []byte(completedEvent)
		header := payment.SignatureHeaderValue(secret, signedAt, payload) + ",v1=deadbeef"
		header = "v1=00ff," + header
		_, err := newParser(5*time.Minute).Parse(payload, header)
		assert.NoError(t, err)
	})

	testCases := []struct {
		name    string
		header  func(payload []byte) string
		payload string
		wantErr error
	}{
		{
			name:    "error: missing header",
			header:  func([]byte) string { return "" },
			payload: completedEvent,
			wantErr: errs.ErrInvalidSignature,
		},
		{
			name:    "error: wrong secret",
			header:  func(p []byte) string { return payment.SignatureHeaderValue("whsec_other", signedAt, p) },
			payload: completedEvent,
			wantErr: errs.ErrInvalidSignature,
		},
		{
			name:    "error: tampered body",
			header:  func([]byte) string { return payment.SignatureHeaderValue(secret, signedAt, []byte(completedEvent)) },
			payload: completedEvent + " ",
			wantErr: errs.ErrInvalidSignature,
		},
		{
			name:    "error: stale timestamp",
			header:  func(p []byte) string { return payment.SignatureHeaderValue(secret, signedAt.Add(-time.Hour), p) },
			payload: completedEvent,
			wantErr: errs.ErrInvalidSignature,
		},
		{
			name:    "error: malformed header",
			header:  func([]byte) string { return "not-a-signature" },
			payload: completedEvent,
			wantErr: errs.ErrInvalidSignature,
		},
		{
			name:    "error: signed garbage",
			header:  func(p []byte) string { return payment.SignatureHeaderValue(secret, signedAt, p) },
			payload: `{"id":`,
			wantErr: errs.ErrMalformedEvent,
		},
		{
			name:    "error: completed session without id",
			header:  func(p []byte) string { return payment.SignatureHeaderValue(secret, signedAt, p) },
			payload: `{"id":"evt_3","type":"checkout.session.completed","data":{"object":{"amount_total":1}}}`,
			wantErr: errs.ErrMalformedEvent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			payload := []byte(tc.payload)
			_, err := newParser(5*time.Minute).Parse(payload, tc.header(payload))
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
