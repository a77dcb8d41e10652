package fulfillment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
)

const SignatureHeader = "X-PF-Webhook-Signature"

type webhookJSON struct {
	Type string `json:"type"`
	Data struct {
		Shipment *shipmentJSON `json:"shipment"`
		Order    *orderJSON    `json:"order"`
	} `json:"data"`
}

// WebhookParser authenticates deliveries with a hex HMAC-SHA256 of the raw body.
// Without a configured secret every delivery is accepted and a warning is logged once.
type WebhookParser struct {
	secret []byte
}

func NewWebhookParser(cfg config.PrintfulConfig) *WebhookParser {
	if cfg.WebhookSecret == "" {
		slog.Warn("fulfillment webhook secret not configured, deliveries are not authenticated")
	}
	return &WebhookParser{secret: []byte(cfg.WebhookSecret)}
}

func (p *WebhookParser) Parse(payload []byte, signatureHeader string) (*commands.FulfillmentEvent, error) {
	if len(p.secret) > 0 {
		if err := p.verify(payload, signatureHeader); err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidSignature)
		}
	}

	var wh webhookJSON
	if err := json.Unmarshal(payload, &wh); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode fulfillment webhook"), errs.ErrMalformedEvent)
	}

	ev := &commands.FulfillmentEvent{Type: wh.Type}
	if o := wh.Data.Order; o != nil {
		ev.OrderID = string(o.ID)
		ev.ExternalID = o.ExternalID
		ev.Status = o.Status
		if shipments := shipmentsOf(*o); len(shipments) > 0 {
			latest := shipments[len(shipments)-1]
			ev.Shipment = &latest
		}
	}
	if s := wh.Data.Shipment; s != nil {
		shipment := s.toShipment()
		ev.Shipment = &shipment
	}
	return ev, nil
}

func (p *WebhookParser) verify(payload []byte, header string) error {
	header = strings.TrimSpace(header)
	if header == "" {
		return errs.New("missing fulfillment webhook signature")
	}
	got, err := hex.DecodeString(strings.TrimPrefix(header, "sha256="))
	if err != nil {
		return errs.Wrap(err, "malformed fulfillment webhook signature")
	}
	if !hmac.Equal(got, Sign(p.secret, payload)) {
		return errs.New("fulfillment webhook signature mismatch")
	}
	return nil
}

func Sign(secret, payload []byte) []byte {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)
	return mac.Sum(nil)
}

// SignatureHeaderValue is the header value a correctly signing provider would send.
func SignatureHeaderValue(secret string, payload []byte) string {
	return hex.EncodeToString(Sign([]byte(secret), payload))
}
