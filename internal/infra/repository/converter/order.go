package converter

import (
	"encoding/json"

	"storefront/internal/domain/order"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/pgconv"
)

// LineItemJSON is the persisted shape of orders.items elements.
type LineItemJSON struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Image     string `json:"image,omitempty"`
}

// AddressJSON is the persisted shape of orders.shipping_address.
type AddressJSON struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

func OrderToCreateParams(o *order.Order) (sqlc.CreateOrderParams, error) {
	items, err := json.Marshal(lineItemsToJSON(o.Items()))
	if err != nil {
		return sqlc.CreateOrderParams{}, errs.Wrap(err, "failed to encode order items")
	}
	address, err := json.Marshal(addressToJSON(o.ShippingAddress()))
	if err != nil {
		return sqlc.CreateOrderParams{}, errs.Wrap(err, "failed to encode shipping address")
	}

	totals := o.Totals()
	return sqlc.CreateOrderParams{
		ID:                    o.ID(),
		UserID:                pgconv.UUIDPtrToPgtype(o.UserID()),
		StripeSessionID:       o.SessionID(),
		StripePaymentIntentID: pgconv.StringPtrToPgtype(o.PaymentIntentID()),
		PrintfulOrderID:       pgconv.StringPtrToPgtype(o.FulfillmentOrderID()),
		Status:                o.Status().String(),
		Items:                 items,
		Subtotal:              totals.Subtotal(),
		ShippingCost:          totals.ShippingCost(),
		DiscountAmount:        totals.DiscountAmount(),
		Total:                 totals.Total(),
		DiscountCode:          pgconv.StringPtrToPgtype(o.DiscountCode()),
		GiftMessage:           pgconv.StringPtrToPgtype(o.GiftMessage()),
		ShippingName:          o.ShippingName(),
		ShippingAddress:       address,
		CustomerEmail:         o.CustomerEmail(),
		TrackingToken:         o.TrackingToken(),
		CreatedAt:             pgconv.TimeToPgtype(o.CreatedAt()),
	}, nil
}

func OrderToFulfillmentStateParams(o *order.Order, expected order.Status) sqlc.UpdateOrderFulfillmentStateParams {
	tr := o.Tracking()
	return sqlc.UpdateOrderFulfillmentStateParams{
		Status:            o.Status().String(),
		TrackingNumber:    pgconv.StringPtrToPgtype(tr.Number),
		TrackingUrl:       pgconv.StringPtrToPgtype(tr.URL),
		Carrier:           pgconv.StringPtrToPgtype(tr.Carrier),
		ShippedAt:         pgconv.TimePtrToPgtype(tr.ShippedAt),
		EstimatedDelivery: pgconv.DatePtrToPgtype(tr.EstimatedDelivery),
		UpdatedAt:         pgconv.TimeToPgtype(o.UpdatedAt()),
		ID:                o.ID(),
		ExpectedStatus:    expected.String(),
	}
}

func OrderFromRow(row sqlc.Orders) (*order.Order, error) {
	status, err := order.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	items, err := DecodeLineItems(row.Items)
	if err != nil {
		return nil, err
	}
	address, err := DecodeAddress(row.ShippingAddress)
	if err != nil {
		return nil, err
	}
	totals, err := order.NewTotals(row.Subtotal, row.ShippingCost, row.DiscountAmount)
	if err != nil {
		return nil, err
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:                 row.ID,
		UserID:             pgconv.UUIDPtrFromPgtype(row.UserID),
		SessionID:          row.StripeSessionID,
		PaymentIntentID:    pgconv.StringPtrFromPgtype(row.StripePaymentIntentID),
		FulfillmentOrderID: pgconv.StringPtrFromPgtype(row.PrintfulOrderID),
		Status:             status,
		Tracking: order.Tracking{
			Number:            pgconv.StringPtrFromPgtype(row.TrackingNumber),
			URL:               pgconv.StringPtrFromPgtype(row.TrackingUrl),
			Carrier:           pgconv.StringPtrFromPgtype(row.Carrier),
			ShippedAt:         pgconv.TimePtrFromPgtype(row.ShippedAt),
			EstimatedDelivery: pgconv.DatePtrFromPgtype(row.EstimatedDelivery),
		},
		Items:           items,
		Totals:          totals,
		DiscountCode:    pgconv.StringPtrFromPgtype(row.DiscountCode),
		GiftMessage:     pgconv.StringPtrFromPgtype(row.GiftMessage),
		ShippingName:    row.ShippingName,
		ShippingAddress: address,
		CustomerEmail:   row.CustomerEmail,
		TrackingToken:   row.TrackingToken,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func DecodeLineItems(raw []byte) ([]order.LineItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var items []LineItemJSON
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errs.Wrap(err, "failed to decode order items")
	}
	out := make([]order.LineItem, len(items))
	for i, it := range items {
		out[i] = order.LineItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Image:     it.Image,
		}
	}
	return out, nil
}

func DecodeAddress(raw []byte) (order.Address, error) {
	if len(raw) == 0 {
		return order.Address{}, nil
	}
	var a AddressJSON
	if err := json.Unmarshal(raw, &a); err != nil {
		return order.Address{}, errs.Wrap(err, "failed to decode shipping address")
	}
	return order.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}, nil
}

func lineItemsToJSON(items []order.LineItem) []LineItemJSON {
	out := make([]LineItemJSON, len(items))
	for i, it := range items {
		out[i] = LineItemJSON{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Image:     it.Image,
		}
	}
	return out
}

func addressToJSON(a order.Address) AddressJSON {
	return AddressJSON{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
