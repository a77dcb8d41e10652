package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/metrics"
	"storefront/internal/usecase/shared"
)

// orderReconciler is shared by the fulfillment webhook and tracking refresh so both paths apply
// provider updates, send transition emails and emit events the same way.
type orderReconciler struct {
	uow       shared.UnitOfWork
	clock     clock.Clock
	notifier  Notifier
	publisher EventPublisher
}

// reconcileAndPersist applies u to o and writes it when anything changed. The write is guarded by the
// previously read status, so of two concurrent identical updates only one reports written=true.
// On a failed write o is left as it was read.
func (r *orderReconciler) reconcileAndPersist(ctx context.Context, o *order.Order, u order.FulfillmentUpdate) (rec order.Reconciliation, written bool, err error) {
	rec = o.Reconcile(u)
	if !rec.Changed {
		return rec, false, nil
	}

	before := *o
	o.Apply(rec, r.clock.Now())

	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ok, werr := tx.Orders().UpdateFulfillmentState(ctx, tx.DB(), o, rec.PreviousStatus)
		if werr != nil {
			return werr
		}
		written = ok
		return nil
	})
	if err != nil || !written {
		*o = before
		if err == nil {
			slog.Info("order changed concurrently, skipping update",
				"order_id", o.ID(),
				"expected_status", rec.PreviousStatus.String())
		}
		return rec, false, err
	}

	slog.Info("order reconciled",
		"order_id", o.ID(),
		"from", rec.PreviousStatus.String(),
		"to", rec.Status.String(),
		"tracking_number", o.Tracking().Number)

	if rec.Transition != order.TransitionNone {
		metrics.OrderStatusChangesTotal.WithLabelValues(rec.Status.String()).Inc()
		r.publish(ctx, o, EventOrderStatusChanged, rec.PreviousStatus)
		r.notifyTransition(ctx, o, rec.Transition)
	}
	return rec, true, nil
}

func (r *orderReconciler) notifyTransition(ctx context.Context, o *order.Order, t order.Transition) {
	if o.CustomerEmail() == "" {
		return
	}
	var err error
	switch t {
	case order.TransitionShipped:
		err = r.notifier.OrderShipped(ctx, o)
	case order.TransitionDelivered:
		err = r.notifier.OrderDelivered(ctx, o)
	default:
		return
	}
	if err != nil {
		slog.Error("failed to send transition email",
			"order_id", o.ID(),
			"transition", string(t),
			"error", err.Error())
	}
}

func (r *orderReconciler) publish(ctx context.Context, o *order.Order, eventType string, previous order.Status) {
	ev := OrderEvent{
		Type:           eventType,
		OrderID:        o.ID(),
		SessionID:      o.SessionID(),
		Status:         o.Status().String(),
		TrackingNumber: o.Tracking().Number,
		Total:          o.Totals().Total(),
		UserID:         o.UserID(),
		OccurredAt:     r.clock.Now(),
	}
	if previous != "" {
		ev.PreviousStatus = previous.String()
	}
	if err := r.publisher.Publish(ctx, o.ID().String(), ev); err != nil {
		slog.Warn("failed to publish order event",
			"order_id", o.ID(),
			"type", eventType,
			"error", err.Error())
	}
}
