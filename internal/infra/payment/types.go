package payment

import (
	"storefront/internal/domain/order"
	"storefront/internal/usecase/commands"

	"github.com/stripe/stripe-go/v82"
)

func toCheckout(s *stripe.CheckoutSession) *commands.CheckoutSession {
	out := &commands.CheckoutSession{
		SessionID:      s.ID,
		CustomerEmail:  s.CustomerEmail,
		AmountSubtotal: s.AmountSubtotal,
		AmountTotal:    s.AmountTotal,
		Metadata:       s.Metadata,
	}
	if s.PaymentIntent != nil {
		out.PaymentIntentID = s.PaymentIntent.ID
	}
	if s.CustomerDetails != nil && s.CustomerDetails.Email != "" {
		out.CustomerEmail = s.CustomerDetails.Email
	}

	if ci := s.CollectedInformation; ci != nil && ci.ShippingDetails != nil {
		out.ShippingName = ci.ShippingDetails.Name
		out.ShippingAddress = toAddress(ci.ShippingDetails.Address)
	}
	if out.ShippingName == "" && s.CustomerDetails != nil {
		out.ShippingName = s.CustomerDetails.Name
	}

	if s.TotalDetails != nil {
		out.AmountDiscount = s.TotalDetails.AmountDiscount
		out.AmountShipping = s.TotalDetails.AmountShipping
	}
	if out.AmountShipping == 0 && s.ShippingCost != nil {
		out.AmountShipping = s.ShippingCost.AmountTotal
	}
	if out.Metadata == nil {
		out.Metadata = map[string]string{}
	}
	return out
}

func toAddress(a *stripe.Address) order.Address {
	if a == nil {
		return order.Address{}
	}
	return order.Address{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}
