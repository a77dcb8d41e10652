//go:build unit

package fulfillment_test

import (
	"testing"

	"storefront/internal/domain/order"
	"storefront/internal/infra/fulfillment"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const packageShipped = `{
  "type": "package_shipped",
  "created": 1717412400,
  "retries": 0,
  "store": 77,
  "data": {
    "shipment": {"id": 10, "carrier": "UPS", "tracking_number": "1Z1", "tracking_url": "https://t/1Z1", "ship_date": "2024-06-03"},
    "order": {"id": 98765, "external_id": "cs_test_1", "status": "fulfilled"}
  }
}`

const orderUpdated = `{
  "type": "order_updated",
  "data": {
    "order": {"id": "98765", "external_id": "cs_test_1", "status": "inprocess",
      "shipments": [{"tracking_number": "A"}, {"tracking_number": "B", "status": "delivered"}]}
  }
}`

func TestWebhookParser_Parse(t *testing.T) {
	parser := fulfillment.NewWebhookParser(config.PrintfulConfig{WebhookSecret: "pf-secret"})

	t.Run("success: package shipped", func(t *testing.T) {
		payload := []byte(packageShipped)
		ev, err := parser.Parse(payload, fulfillment.SignatureHeaderValue("pf-secret", payload))
		require.NoError(t, err)

		assert.Equal(t, order.EventPackageShipped, ev.Type)
		assert.Equal(t, "98765", ev.OrderID)
		assert.Equal(t, "cs_test_1", ev.ExternalID)
		assert.Equal(t, "fulfilled", ev.Status)
		require.NotNil(t, ev.Shipment)
		assert.Equal(t, "1Z1", ev.Shipment.TrackingNumber)
		require.NotNil(t, ev.Shipment.ShipDate)
	})

	t.Run("success: order updated takes the latest shipment", func(t *testing.T) {
		payload := []byte(orderUpdated)
		ev, err := parser.Parse(payload, "sha256="+fulfillment.SignatureHeaderValue("pf-secret", payload))
		require.NoError(t, err)

		assert.Equal(t, "98765", ev.OrderID)
		require.NotNil(t, ev.Shipment)
		assert.Equal(t, "B", ev.Shipment.TrackingNumber)
		assert.Equal(t, "delivered", ev.Shipment.Status)
	})

	t.Run("error: bad signature", func(t *testing.T) {
		_, err := parser.Parse([]byte(packageShipped), fulfillment.SignatureHeaderValue("other", []byte(packageShipped)))
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)

		_, err = parser.Parse([]byte(packageShipped), "")
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)

		_, err = parser.Parse([]byte(packageShipped), "not-hex")
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
	})

	t.Run("error: signed but undecodable", func(t *testing.T) {
		payload := []byte(`{"type":`)
		_, err := parser.Parse(payload, fulfillment.SignatureHeaderValue("pf-secret", payload))
		assert.ErrorIs(t, err, errs.ErrMalformedEvent)
	})

	t.Run("no secret accepts unsigned deliveries", func(t *testing.T) {
		open := fulfillment.NewWebhookParser(config.PrintfulConfig{})
		ev, err := open.Parse([]byte(packageShipped), "")
		require.NoError(t, err)
		assert.Equal(t, "98765", ev.OrderID)
	})
}
