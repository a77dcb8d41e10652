package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WebhookEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_webhook_events_total",
		Help: "Webhook deliveries by provider and outcome",
	}, []string{"provider", "outcome"})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "Total number of orders created from completed checkouts",
	})

	OrderStatusChangesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_status_changes_total",
		Help: "Persisted order status transitions by target status",
	}, []string{"status"})

	DiscountRedemptionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_discount_redemptions_total",
		Help: "Discount redemption attempts by result",
	}, []string{"result"})

	DiscountValidationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_discount_validations_total",
		Help: "Discount code validations by outcome",
	}, []string{"outcome"})

	FulfillmentRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_fulfillment_requests_total",
		Help: "Calls to the fulfillment provider by operation and result",
	}, []string{"operation", "result"})

	EmailsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_emails_sent_total",
		Help: "Transactional emails by template and result",
	}, []string{"template", "result"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "storefront_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
