package order

import (
	"strings"
	"time"

	"storefront/internal/pkg/ptr"
)

const (
	EventPackageShipped = "package_shipped"
	EventOrderUpdated   = "order_updated"

	EstimatedDeliveryBusinessDays = 7
)

// Shipment is the fulfillment provider's view of a parcel.
type Shipment struct {
	TrackingNumber    string
	TrackingURL       string
	Carrier           string
	Status            string
	ShipDate          *time.Time
	EstimatedDelivery *time.Time
}

// FulfillmentUpdate carries everything needed to reconcile an order with the provider,
// whether it came from a webhook or from polling.
type FulfillmentUpdate struct {
	EventType      string
	ProviderStatus string
	Shipment       *Shipment
}

type Transition string

const (
	TransitionNone       Transition = ""
	TransitionProcessing Transition = "processing"
	TransitionShipped    Transition = "shipped"
	TransitionDelivered  Transition = "delivered"
	TransitionCancelled  Transition = "cancelled"
)

type Reconciliation struct {
	PreviousStatus Status
	Status         Status
	Tracking       Tracking
	Changed        bool
	Transition     Transition
}

// MapFulfillmentStatus translates provider vocabulary. The second result is false when the
// update carries no status information we act on.
func MapFulfillmentStatus(eventType, providerStatus, shipmentStatus string) (Status, bool) {
	if strings.EqualFold(shipmentStatus, "delivered") {
		return StatusDelivered, true
	}
	if eventType == EventPackageShipped {
		return StatusShipped, true
	}
	switch strings.ToLower(providerStatus) {
	case "fulfilled", "shipped":
		return StatusShipped, true
	case "canceled", "cancelled":
		return StatusCancelled, true
	case "inprocess", "pending":
		return StatusProcessing, true
	default:
		return "", false
	}
}

// Reconcile computes the order's next status and tracking from an update without mutating it.
// Changed is true only when the status or the tracking number differs from stored values.
func (o *Order) Reconcile(u FulfillmentUpdate) Reconciliation {
	var shipmentStatus string
	if u.Shipment != nil {
		shipmentStatus = u.Shipment.Status
	}

	next := o.status
	if mapped, ok := MapFulfillmentStatus(u.EventType, u.ProviderStatus, shipmentStatus); ok && o.status.CanTransitionTo(mapped) {
		next = mapped
	}

	tracking := o.tracking
	if s := u.Shipment; s != nil {
		if s.TrackingNumber != "" {
			tracking.Number = ptr.Of(s.TrackingNumber)
		}
		if s.TrackingURL != "" {
			tracking.URL = ptr.Of(s.TrackingURL)
		}
		if s.Carrier != "" {
			tracking.Carrier = ptr.Of(s.Carrier)
		}
		if s.ShipDate != nil {
			tracking.ShippedAt = s.ShipDate
			if s.EstimatedDelivery == nil {
				tracking.EstimatedDelivery = ptr.Of(AddBusinessDays(*s.ShipDate, EstimatedDeliveryBusinessDays))
			}
		}
		if s.EstimatedDelivery != nil {
			tracking.EstimatedDelivery = s.EstimatedDelivery
		}
	}

	r := Reconciliation{
		PreviousStatus: o.status,
		Status:         next,
		Tracking:       tracking,
		Changed:        next != o.status || !ptr.Equal(tracking.Number, o.tracking.Number),
	}
	if next != o.status {
		r.Transition = Transition(next)
	}
	return r
}

// Apply records a persisted reconciliation on the in-memory order.
func (o *Order) Apply(r Reconciliation, now time.Time) {
	if !r.Changed {
		return
	}
	o.status = r.Status
	o.tracking = r.Tracking
	o.updatedAt = now
}

func (o *Order) AttachFulfillment(fulfillmentOrderID string, now time.Time) {
	o.fulfillmentOrderID = ptr.Of(fulfillmentOrderID)
	o.updatedAt = now
}

// AddBusinessDays counts forward skipping Saturdays and Sundays.
func AddBusinessDays(from time.Time, days int) time.Time {
	d := from
	for added := 0; added < days; {
		d = d.AddDate(0, 0, 1)
		if wd := d.Weekday(); wd != time.Saturday && wd != time.Sunday {
			added++
		}
	}
	return d
}
