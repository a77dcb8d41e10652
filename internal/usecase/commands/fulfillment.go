package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/metrics"
	"storefront/internal/pkg/ptr"
	"storefront/internal/pkg/tracing"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type RetryResult struct {
	OrderID            uuid.UUID
	FulfillmentOrderID string
	DroppedItems       int
}

type FulfillmentCommands interface {
	// HandleWebhook authenticates a raw provider delivery. Everything after authentication is acknowledged.
	HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error
	HandleEvent(ctx context.Context, ev FulfillmentEvent) error
	RetryFulfillment(ctx context.Context, orderID uuid.UUID, actor *Actor) (*RetryResult, error)
}

type fulfillmentUseCaseImpl struct {
	orderReconciler
	parser  FulfillmentEventParser
	catalog catalog.Service
	client  FulfillmentClient
	locker  Locker
}

func NewFulfillmentUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	parser FulfillmentEventParser,
	cat catalog.Service,
	client FulfillmentClient,
	notifier Notifier,
	publisher EventPublisher,
	locker Locker,
) FulfillmentCommands {
	return &fulfillmentUseCaseImpl{
		orderReconciler: orderReconciler{uow: uow, clock: clk, notifier: notifier, publisher: publisher},
		parser:          parser,
		catalog:         cat,
		client:          client,
		locker:          locker,
	}
}

func (uc *fulfillmentUseCaseImpl) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	ev, err := uc.parser.Parse(payload, signatureHeader)
	if err != nil {
		if errs.Is(err, errs.ErrInvalidSignature) {
			metrics.WebhookEventsTotal.WithLabelValues("printful", "rejected").Inc()
			return err
		}
		slog.Warn("undecodable fulfillment webhook acknowledged", "error", err.Error())
		metrics.WebhookEventsTotal.WithLabelValues("printful", "ignored").Inc()
		return nil
	}
	return uc.HandleEvent(ctx, *ev)
}

// HandleEvent never returns an error for a well-formed event. Failures are logged so the provider
// does not keep redelivering an event that was already attempted.
func (uc *fulfillmentUseCaseImpl) HandleEvent(ctx context.Context, ev FulfillmentEvent) error {
	ctx, span := tracing.StartSpan(ctx, "fulfillment.handle_event")
	defer span.End()

	if ev.Type != order.EventPackageShipped && ev.Type != order.EventOrderUpdated {
		slog.Info("ignoring fulfillment event", "type", ev.Type)
		metrics.WebhookEventsTotal.WithLabelValues("printful", "ignored").Inc()
		return nil
	}
	if ev.OrderID == "" {
		slog.Warn("fulfillment event without order id", "type", ev.Type)
		metrics.WebhookEventsTotal.WithLabelValues("printful", "ignored").Inc()
		return nil
	}

	o, err := uc.uow.CommandReads().OrderByFulfillmentID(ctx, ev.OrderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			slog.Info("no order for fulfillment event", "fulfillment_order_id", ev.OrderID, "type", ev.Type)
			metrics.WebhookEventsTotal.WithLabelValues("printful", "unmatched").Inc()
			return nil
		}
		slog.Error("failed to look up order for fulfillment event",
			"fulfillment_order_id", ev.OrderID,
			"error", err.Error())
		metrics.WebhookEventsTotal.WithLabelValues("printful", "error").Inc()
		return nil
	}

	_, written, err := uc.reconcileAndPersist(ctx, o, order.FulfillmentUpdate{
		EventType:      ev.Type,
		ProviderStatus: ev.Status,
		Shipment:       ev.Shipment,
	})
	if err != nil {
		slog.Error("failed to persist fulfillment update",
			"order_id", o.ID(),
			"fulfillment_order_id", ev.OrderID,
			"error", err.Error())
		metrics.WebhookEventsTotal.WithLabelValues("printful", "error").Inc()
		return nil
	}

	outcome := "unchanged"
	if written {
		outcome = "processed"
	}
	metrics.WebhookEventsTotal.WithLabelValues("printful", outcome).Inc()
	return nil
}

// RetryFulfillment rebuilds the provider request from the stored order. The fulfillment id is attached
// with a conditional update, so of two racing retries at most one wins.
func (uc *fulfillmentUseCaseImpl) RetryFulfillment(ctx context.Context, orderID uuid.UUID, actor *Actor) (*RetryResult, error) {
	ctx, span := tracing.StartSpan(ctx, "fulfillment.retry")
	defer span.End()

	if !actor.IsAdmin() {
		return nil, errs.ErrForbidden
	}

	release, ok, err := uc.locker.Acquire(ctx, "fulfillment-retry:"+orderID.String())
	switch {
	case err != nil:
		slog.Warn("retry lock unavailable, continuing without it", "order_id", orderID, "error", err.Error())
	case !ok:
		return nil, errs.ErrFulfillmentInFlight
	default:
		defer release()
	}

	o, err := uc.uow.CommandReads().OrderByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	if o.HasFulfillment() {
		return nil, errs.ErrFulfillmentExists
	}

	mapped, dropped := catalog.MapFulfillmentLines(uc.catalog, o.Items())
	if len(mapped) == 0 {
		return nil, errs.ErrNothingToFulfill
	}

	totals := o.Totals()
	fo, err := uc.client.CreateOrder(ctx, FulfillmentOrderRequest{
		ExternalID: o.SessionID(),
		Recipient: Recipient{
			Name:    o.ShippingName(),
			Email:   o.CustomerEmail(),
			Address: o.ShippingAddress(),
		},
		Items:       mapped,
		GiftMessage: o.GiftMessage(),
		RetailCosts: RetailCosts{
			Subtotal: totals.Subtotal(),
			Shipping: totals.ShippingCost(),
			Discount: totals.DiscountAmount(),
			Total:    totals.Total(),
		},
	})
	if err != nil {
		slog.Error("fulfillment retry failed", "order_id", orderID, "actor", actor.UserID, "error", err.Error())
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}

	var attached bool
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var aerr error
		attached, aerr = tx.Orders().AttachFulfillment(ctx, tx.DB(), orderID, fo.ID, uc.clock.Now())
		return aerr
	})
	if err != nil {
		slog.Error("fulfillment order created but not attached",
			"order_id", orderID,
			"fulfillment_order_id", fo.ID,
			"error", err.Error())
		return nil, err
	}
	if !attached {
		slog.Warn("another retry attached a fulfillment order first",
			"order_id", orderID,
			"orphan_fulfillment_order_id", fo.ID)
		return nil, errs.ErrFulfillmentExists
	}

	o.AttachFulfillment(fo.ID, uc.clock.Now())
	slog.Info("fulfillment retry succeeded",
		"order_id", orderID,
		"fulfillment_order_id", fo.ID,
		"actor", actor.UserID,
		"dropped_items", len(dropped))

	return &RetryResult{
		OrderID:            orderID,
		FulfillmentOrderID: ptr.Coalesce(o.FulfillmentOrderID(), fo.ID),
		DroppedItems:       len(dropped),
	}, nil
}
