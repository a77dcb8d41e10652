package response

import (
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/queries"
)

type TrackingResponse struct {
	Status         string  `json:"status"`
	TrackingNumber *string `json:"tracking_number"`
	TrackingURL    *string `json:"tracking_url"`
	Carrier        *string `json:"carrier"`
}

func FromTrackingResult(r *commands.TrackingResult) *TrackingResponse {
	return &TrackingResponse{
		Status:         r.Status,
		TrackingNumber: r.TrackingNumber,
		TrackingURL:    r.TrackingURL,
		Carrier:        r.Carrier,
	}
}

type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	Image     string `json:"image,omitempty"`
}

type AddressResponse struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type OrderResponse struct {
	ID                string              `json:"id"`
	Status            string              `json:"status"`
	Items             []OrderItemResponse `json:"items"`
	Subtotal          int64               `json:"subtotal"`
	ShippingCost      int64               `json:"shipping_cost"`
	DiscountAmount    int64               `json:"discount_amount"`
	Total             int64               `json:"total"`
	DiscountCode      *string             `json:"discount_code,omitempty"`
	GiftMessage       *string             `json:"gift_message,omitempty"`
	ShippingName      string              `json:"shipping_name"`
	ShippingAddress   AddressResponse     `json:"shipping_address"`
	CustomerEmail     string              `json:"customer_email"`
	TrackingNumber    *string             `json:"tracking_number,omitempty"`
	TrackingURL       *string             `json:"tracking_url,omitempty"`
	Carrier           *string             `json:"carrier,omitempty"`
	ShippedAt         *int64              `json:"shipped_at,omitempty"`
	EstimatedDelivery *int64              `json:"estimated_delivery,omitempty"`
	CreatedAt         int64               `json:"created_at"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]OrderItemResponse, len(v.Items))
	for i, it := range v.Items {
		items[i] = OrderItemResponse(it)
	}
	resp := &OrderResponse{
		ID:              v.ID.String(),
		Status:          v.Status,
		Items:           items,
		Subtotal:        v.Subtotal,
		ShippingCost:    v.ShippingCost,
		DiscountAmount:  v.DiscountAmount,
		Total:           v.Total,
		DiscountCode:    v.DiscountCode,
		GiftMessage:     v.GiftMessage,
		ShippingName:    v.ShippingName,
		ShippingAddress: AddressResponse(v.ShippingAddress),
		CustomerEmail:   v.CustomerEmail,
		TrackingNumber:  v.TrackingNumber,
		TrackingURL:     v.TrackingURL,
		Carrier:         v.Carrier,
		CreatedAt:       v.CreatedAt.Unix(),
	}
	if v.ShippedAt != nil {
		ts := v.ShippedAt.Unix()
		resp.ShippedAt = &ts
	}
	if v.EstimatedDelivery != nil {
		ts := v.EstimatedDelivery.Unix()
		resp.EstimatedDelivery = &ts
	}
	return resp
}

func FromOrderList(views []*queries.OrderView) []*OrderResponse {
	res := make([]*OrderResponse, len(views))
	for i, v := range views {
		res[i] = FromOrderView(v)
	}
	return res
}

type ClaimOrdersResponse struct {
	Claimed int64 `json:"claimed"`
}

type RetryFulfillmentResponse struct {
	OrderID            string `json:"order_id"`
	FulfillmentOrderID string `json:"printful_order_id"`
	DroppedItems       int    `json:"dropped_items"`
}

func FromRetryResult(r *commands.RetryResult) *RetryFulfillmentResponse {
	return &RetryFulfillmentResponse{
		OrderID:            r.OrderID.String(),
		FulfillmentOrderID: r.FulfillmentOrderID,
		DroppedItems:       r.DroppedItems,
	}
}
