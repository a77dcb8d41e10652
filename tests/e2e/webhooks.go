//go:build e2e

package e2e

import (
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/infra/fulfillment"
	"storefront/internal/infra/payment"
	"storefront/tests/common/httptest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	StripeWebhookURL   = "/api/webhooks/stripe"
	PrintfulWebhookURL = "/api/webhooks/printful"
)

// CheckoutFixture describes a paid checkout session. Amounts are minor units.
type CheckoutFixture struct {
	SessionID    string
	Email        string
	Items        []order.CartItem
	UserID       *uuid.UUID
	DiscountCode string
	GiftMessage  string
	Subtotal     int64
	Shipping     int64
	Discount     int64
}

func NewCheckoutFixture(email string) CheckoutFixture {
	return CheckoutFixture{
		SessionID: "cs_test_" + uuid.NewString(),
		Email:     email,
		Items: []order.CartItem{
			{ProductID: "classic-tee-black", Size: "M", Color: "Black", Quantity: 2},
		},
		Subtotal: 5600,
		Shipping: 500,
	}
}

func (f CheckoutFixture) eventPayload() ([]byte, error) {
	md, err := order.EncodeCartItems(f.Items)
	if err != nil {
		return nil, err
	}
	if f.UserID != nil {
		md[order.MetadataUserID] = f.UserID.String()
	}
	if f.DiscountCode != "" {
		md[order.MetadataDiscountCode] = f.DiscountCode
	}
	if f.GiftMessage != "" {
		md[order.MetadataGiftMessage] = f.GiftMessage
	}

	session := map[string]any{
		"id":              f.SessionID,
		"object":          "checkout.session",
		"payment_intent":  "pi_" + uuid.NewString()[:8],
		"customer_email":  f.Email,
		"amount_subtotal": f.Subtotal,
		"amount_total":    f.Subtotal + f.Shipping - f.Discount,
		"metadata":        md,
		"customer_details": map[string]any{
			"email": f.Email,
			"name":  "Ada Lovelace",
		},
		"collected_information": map[string]any{
			"shipping_details": map[string]any{
				"name": "Ada Lovelace",
				"address": map[string]any{
					"line1":       "1 Main St",
					"city":        "Springfield",
					"state":       "IL",
					"postal_code": "62701",
					"country":     "US",
				},
			},
		},
		"total_details": map[string]any{
			"amount_discount": f.Discount,
			"amount_shipping": f.Shipping,
		},
	}

	return json.Marshal(map[string]any{
		"id":   "evt_" + uuid.NewString(),
		"type": "checkout.session.completed",
		"data": map[string]any{"object": session},
	})
}

// PostCheckout delivers a correctly signed checkout.session.completed event.
func (s *SharedSuite) PostCheckout(f CheckoutFixture) *nethttptest.ResponseRecorder {
	t := s.T()
	payload, err := f.eventPayload()
	require.NoError(t, err)
	return s.PostStripePayload(payload, payment.SignatureHeaderValue(s.Config.Stripe.WebhookSecret, time.Now(), payload))
}

func (s *SharedSuite) PostStripePayload(payload []byte, signature string) *nethttptest.ResponseRecorder {
	return httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, StripeWebhookURL, payload,
		map[string]string{payment.SignatureHeader: signature})
}

// PostShipped delivers a signed package_shipped event for a fulfillment order.
func (s *SharedSuite) PostShipped(fulfillmentOrderID string, shipment FakeShipment) *nethttptest.ResponseRecorder {
	t := s.T()
	payload, err := json.Marshal(map[string]any{
		"type":    order.EventPackageShipped,
		"created": time.Now().Unix(),
		"data": map[string]any{
			"order": map[string]any{
				"id":        json.Number(fulfillmentOrderID),
				"status":    "fulfilled",
				"shipments": []FakeShipment{shipment},
			},
			"shipment": shipment,
		},
	})
	require.NoError(t, err)
	return s.PostPrintfulPayload(payload, fulfillment.SignatureHeaderValue(TestPrintfulWebhookSecret, payload))
}

func (s *SharedSuite) PostPrintfulPayload(payload []byte, signature string) *nethttptest.ResponseRecorder {
	return httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, PrintfulWebhookURL, payload,
		map[string]string{fulfillment.SignatureHeader: signature})
}
