package fulfillment

import (
	"bytes"
	"encoding/json"
	"time"

	"storefront/internal/domain/order"
)

// flexID accepts ids the provider sends either as numbers or as strings.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

type recipientJSON struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city"`
	StateCode   string `json:"state_code,omitempty"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
	Email       string `json:"email,omitempty"`
}

type itemJSON struct {
	SyncVariantID int64  `json:"sync_variant_id"`
	Quantity      int    `json:"quantity"`
	Name          string `json:"name,omitempty"`
	RetailPrice   string `json:"retail_price,omitempty"`
}

type giftJSON struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type retailCostsJSON struct {
	Currency string `json:"currency"`
	Subtotal string `json:"subtotal"`
	Discount string `json:"discount"`
	Shipping string `json:"shipping"`
	Total    string `json:"total"`
}

type createOrderJSON struct {
	ExternalID  string          `json:"external_id"`
	Recipient   recipientJSON   `json:"recipient"`
	Items       []itemJSON      `json:"items"`
	Gift        *giftJSON       `json:"gift,omitempty"`
	RetailCosts retailCostsJSON `json:"retail_costs"`
}

type shipmentJSON struct {
	ID                flexID `json:"id"`
	Carrier           string `json:"carrier"`
	Service           string `json:"service"`
	TrackingNumber    string `json:"tracking_number"`
	TrackingURL       string `json:"tracking_url"`
	Status            string `json:"status"`
	ShipDate          string `json:"ship_date"`
	ShippedAt         int64  `json:"shipped_at"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

type orderJSON struct {
	ID         flexID         `json:"id"`
	ExternalID string         `json:"external_id"`
	Status     string         `json:"status"`
	Shipments  []shipmentJSON `json:"shipments"`
}

type envelopeJSON struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s shipmentJSON) toShipment() order.Shipment {
	out := order.Shipment{
		TrackingNumber: s.TrackingNumber,
		TrackingURL:    s.TrackingURL,
		Carrier:        s.Carrier,
		Status:         s.Status,
	}
	switch {
	case s.ShippedAt > 0:
		t := time.Unix(s.ShippedAt, 0).UTC()
		out.ShipDate = &t
	case s.ShipDate != "":
		if t, err := time.Parse(time.DateOnly, s.ShipDate); err == nil {
			out.ShipDate = &t
		}
	}
	if s.EstimatedDelivery != "" {
		if t, err := time.Parse(time.DateOnly, s.EstimatedDelivery); err == nil {
			out.EstimatedDelivery = &t
		}
	}
	return out
}

func shipmentsOf(o orderJSON) []order.Shipment {
	out := make([]order.Shipment, 0, len(o.Shipments))
	for _, s := range o.Shipments {
		out = append(out, s.toShipment())
	}
	return out
}
