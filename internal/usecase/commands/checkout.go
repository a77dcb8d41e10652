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

var (
	ErrCheckoutInFlight   = errs.New("checkout session is being processed by another delivery")
	ErrIdempotencyLookup  = errs.New("failed to look up existing order for session")
	ErrUnpricedCheckout   = errs.New("checkout amounts are inconsistent")
	errDiscountCapReached = errs.New("discount usage cap reached")
)

type CheckoutResult struct {
	OrderID          uuid.UUID
	AlreadyProcessed bool
	// Saved is false when the order could not be stored. The delivery is still acknowledged.
	Saved              bool
	FulfillmentOrderID *string
}

type CheckoutCommands interface {
	// HandlePaymentWebhook verifies and dispatches a raw payment provider delivery.
	HandlePaymentWebhook(ctx context.Context, payload []byte, signatureHeader string) error
	CompleteCheckout(ctx context.Context, sess CheckoutSession) (*CheckoutResult, error)
}

type checkoutUseCaseImpl struct {
	orderReconciler
	parser      PaymentEventParser
	catalog     catalog.Service
	fulfillment FulfillmentClient
	locker      Locker
}

func NewCheckoutUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	parser PaymentEventParser,
	cat catalog.Service,
	fulfillment FulfillmentClient,
	notifier Notifier,
	publisher EventPublisher,
	locker Locker,
) CheckoutCommands {
	return &checkoutUseCaseImpl{
		orderReconciler: orderReconciler{uow: uow, clock: clk, notifier: notifier, publisher: publisher},
		parser:          parser,
		catalog:         cat,
		fulfillment:     fulfillment,
		locker:          locker,
	}
}

func (uc *checkoutUseCaseImpl) HandlePaymentWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	ev, err := uc.parser.Parse(payload, signatureHeader)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("stripe", "rejected").Inc()
		return err
	}

	if ev.Type != EventCheckoutSessionCompleted {
		slog.Info("ignoring payment event", "event_id", ev.ID, "type", ev.Type)
		metrics.WebhookEventsTotal.WithLabelValues("stripe", "ignored").Inc()
		return nil
	}
	if ev.Checkout == nil {
		metrics.WebhookEventsTotal.WithLabelValues("stripe", "error").Inc()
		return errs.Mark(errs.Newf("event %s carries no checkout session", ev.ID), errs.ErrMalformedEvent)
	}

	res, err := uc.CompleteCheckout(ctx, *ev.Checkout)
	if err != nil {
		metrics.WebhookEventsTotal.WithLabelValues("stripe", "error").Inc()
		slog.Error("checkout completion failed",
			"event_id", ev.ID,
			"session_id", ev.Checkout.SessionID,
			"error", err.Error())
		return err
	}

	outcome := "processed"
	if res.AlreadyProcessed {
		outcome = "duplicate"
	}
	metrics.WebhookEventsTotal.WithLabelValues("stripe", outcome).Inc()
	return nil
}

// CompleteCheckout turns a paid session into an order exactly once per session id.
func (uc *checkoutUseCaseImpl) CompleteCheckout(ctx context.Context, sess CheckoutSession) (*CheckoutResult, error) {
	ctx, span := tracing.StartSpan(ctx, "checkout.complete")
	defer span.End()

	release, ok, err := uc.locker.Acquire(ctx, "checkout:"+sess.SessionID)
	switch {
	case err != nil:
		slog.Warn("checkout lock unavailable, continuing without it", "session_id", sess.SessionID, "error", err.Error())
	case !ok:
		return nil, ErrCheckoutInFlight
	default:
		defer release()
	}

	existing, err := uc.uow.CommandReads().OrderBySessionID(ctx, sess.SessionID)
	if err == nil {
		slog.Info("checkout session already processed", "session_id", sess.SessionID, "order_id", existing.ID())
		return &CheckoutResult{OrderID: existing.ID(), AlreadyProcessed: true, Saved: true}, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrIdempotencyLookup)
	}

	md, err := order.ParseCheckoutMetadata(sess.Metadata)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrMalformedEvent)
	}

	totals, err := order.NewTotals(sess.AmountSubtotal, sess.AmountShipping, sess.AmountDiscount)
	if err != nil {
		return nil, errs.Mark(err, ErrUnpricedCheckout)
	}
	if sess.AmountTotal != totals.Total() {
		slog.Warn("provider total differs from computed total",
			"session_id", sess.SessionID,
			"provider_total", sess.AmountTotal,
			"computed_total", totals.Total())
	}

	items := catalog.ResolveLineItems(uc.catalog, md.Items)
	userID := md.UserID
	if userID == nil {
		userID = uc.resolveUserByEmail(ctx, sess.CustomerEmail)
	}

	fulfillmentID := uc.submitFulfillment(ctx, sess, items, md.GiftMessage, totals)

	o, err := order.NewOrder(order.NewOrderParams{
		UserID:             userID,
		SessionID:          sess.SessionID,
		PaymentIntentID:    ptr.NonEmpty(sess.PaymentIntentID),
		FulfillmentOrderID: fulfillmentID,
		Items:              items,
		Totals:             totals,
		DiscountCode:       md.DiscountCode,
		GiftMessage:        md.GiftMessage,
		ShippingName:       sess.ShippingName,
		ShippingAddress:    sess.ShippingAddress,
		CustomerEmail:      sess.CustomerEmail,
	}, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrMalformedEvent)
	}

	redeemed, err := uc.save(ctx, o)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			slog.Info("order for session was stored concurrently", "session_id", sess.SessionID)
			return &CheckoutResult{AlreadyProcessed: true, Saved: true}, nil
		}
		slog.Error("failed to save order",
			"session_id", sess.SessionID,
			"fulfillment_order_id", ptr.Coalesce(fulfillmentID, ""),
			"error", err.Error())
		return &CheckoutResult{OrderID: o.ID(), Saved: false, FulfillmentOrderID: fulfillmentID}, nil
	}

	metrics.OrdersCreatedTotal.Inc()
	if redeemed {
		metrics.DiscountRedemptionsTotal.WithLabelValues("applied").Inc()
	}
	slog.Info("order created",
		"order_id", o.ID(),
		"session_id", sess.SessionID,
		"total", o.Totals().Total(),
		"fulfillment_order_id", ptr.Coalesce(fulfillmentID, ""))

	uc.publish(ctx, o, EventOrderCreated, "")
	if o.CustomerEmail() != "" {
		if err := uc.notifier.OrderConfirmed(ctx, o); err != nil {
			slog.Error("failed to send confirmation email", "order_id", o.ID(), "error", err.Error())
		}
	}

	return &CheckoutResult{OrderID: o.ID(), Saved: true, FulfillmentOrderID: fulfillmentID}, nil
}

// save inserts the order and redeems its discount code in one transaction. Eligibility was settled when
// the session was priced, so only the usage cap is enforced here. A code that is unknown or already at
// its cap is detached from the order. The amount the customer paid is kept either way.
func (uc *checkoutUseCaseImpl) save(ctx context.Context, o *order.Order) (redeemed bool, err error) {
	code := o.DiscountCode()
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		redeemed = false
		o.SetDiscountCode(code)
		var codeID uuid.UUID
		if code != nil {
			dc, rerr := tx.Reads().DiscountByCode(ctx, *code)
			switch {
			case rerr == nil:
				ok, ierr := tx.Discounts().IncrementUsage(ctx, tx.DB(), dc.ID())
				if ierr != nil {
					return ierr
				}
				if ok {
					codeID = dc.ID()
				} else {
					metrics.DiscountRedemptionsTotal.WithLabelValues("cap_reached").Inc()
					slog.Warn("discount not redeemed", "code", *code, "order_id", o.ID(), "reason", errDiscountCapReached.Error())
				}
			case infra.IsKind(rerr, infra.KindNotFound):
				slog.Warn("discount code on checkout does not exist", "code", *code, "order_id", o.ID())
			default:
				return rerr
			}
		}
		if codeID == uuid.Nil {
			o.DropDiscountCode()
		}

		if cerr := tx.Orders().Create(ctx, tx.DB(), o); cerr != nil {
			return cerr
		}

		if codeID != uuid.Nil {
			if rerr := tx.Discounts().RecordRedemption(ctx, tx.DB(), shared.Redemption{
				DiscountCodeID: codeID,
				UserID:         o.UserID(),
				OrderID:        o.ID(),
				RedeemedAt:     o.CreatedAt(),
			}); rerr != nil {
				return rerr
			}
			redeemed = true
		}
		return nil
	})
	return redeemed, err
}

func (uc *checkoutUseCaseImpl) resolveUserByEmail(ctx context.Context, email string) *uuid.UUID {
	if email == "" {
		return nil
	}
	p, err := uc.uow.CommandReads().ProfileByEmail(ctx, email)
	if err != nil {
		if !infra.IsKind(err, infra.KindNotFound) {
			slog.Warn("profile lookup failed, saving as guest order", "error", err.Error())
		}
		return nil
	}
	return &p.ID
}

// submitFulfillment never fails the checkout. A nil result leaves the order for the retry path.
func (uc *checkoutUseCaseImpl) submitFulfillment(ctx context.Context, sess CheckoutSession, items []order.LineItem, gift *string, totals order.Totals) *string {
	mapped, dropped := catalog.MapFulfillmentLines(uc.catalog, items)
	for _, li := range dropped {
		slog.Warn("no fulfillment variant for item", "session_id", sess.SessionID, "product_id", li.ProductID, "size", li.Size)
	}
	if len(mapped) == 0 {
		slog.Warn("nothing to fulfill for checkout", "session_id", sess.SessionID)
		return nil
	}

	fo, err := uc.fulfillment.CreateOrder(ctx, FulfillmentOrderRequest{
		ExternalID: sess.SessionID,
		Recipient: Recipient{
			Name:    sess.ShippingName,
			Email:   sess.CustomerEmail,
			Address: sess.ShippingAddress,
		},
		Items:       mapped,
		GiftMessage: gift,
		RetailCosts: RetailCosts{
			Subtotal: totals.Subtotal(),
			Shipping: totals.ShippingCost(),
			Discount: totals.DiscountAmount(),
			Total:    totals.Total(),
		},
	})
	if err != nil {
		slog.Error("failed to create fulfillment order", "session_id", sess.SessionID, "error", err.Error())
		return nil
	}
	return ptr.Of(fo.ID)
}
