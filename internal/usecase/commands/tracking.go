package commands

import (
	"context"
	"log/slog"

	"storefront/internal/domain/order"
	"storefront/internal/domain/user"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/tracing"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxRecoveryOrders caps how many orders one recovery email lists.
const MaxRecoveryOrders = 10

// TrackRequest identifies an order by id (requires Actor) or by tracking token.
type TrackRequest struct {
	OrderID       *uuid.UUID
	TrackingToken string
	Refresh       bool
	Actor         *Actor
}

type TrackingResult struct {
	Status         string  `json:"status"`
	TrackingNumber *string `json:"tracking_number"`
	TrackingURL    *string `json:"tracking_url"`
	Carrier        *string `json:"carrier"`
}

type RecoverRequest struct {
	Email          string
	ChallengeToken string
	RemoteIP       string
}

type TrackingCommands interface {
	Track(ctx context.Context, req TrackRequest) (*TrackingResult, error)
	// RecoverByEmail succeeds whether or not any order matches, once the challenge passes.
	RecoverByEmail(ctx context.Context, req RecoverRequest) error
}

type trackingUseCaseImpl struct {
	orderReconciler
	client   FulfillmentClient
	verifier ChallengeVerifier
}

func NewTrackingUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	client FulfillmentClient,
	verifier ChallengeVerifier,
	notifier Notifier,
	publisher EventPublisher,
) TrackingCommands {
	return &trackingUseCaseImpl{
		orderReconciler: orderReconciler{uow: uow, clock: clk, notifier: notifier, publisher: publisher},
		client:          client,
		verifier:        verifier,
	}
}

func (uc *trackingUseCaseImpl) Track(ctx context.Context, req TrackRequest) (*TrackingResult, error) {
	ctx, span := tracing.StartSpan(ctx, "tracking.track")
	defer span.End()

	o, err := uc.lookup(ctx, req)
	if err != nil {
		return nil, err
	}

	if req.Refresh && o.HasFulfillment() {
		uc.refresh(ctx, o)
	}

	tr := o.Tracking()
	return &TrackingResult{
		Status:         o.Status().String(),
		TrackingNumber: tr.Number,
		TrackingURL:    tr.URL,
		Carrier:        tr.Carrier,
	}, nil
}

// lookup reports every miss, including an ownership mismatch, as not found.
func (uc *trackingUseCaseImpl) lookup(ctx context.Context, req TrackRequest) (*order.Order, error) {
	var (
		o   *order.Order
		err error
	)
	switch {
	case req.OrderID != nil:
		if req.Actor == nil {
			return nil, errs.ErrOrderNotFound
		}
		o, err = uc.uow.CommandReads().OrderByID(ctx, *req.OrderID)
		if err == nil && !o.IsOwnedBy(req.Actor.UserID) && !req.Actor.IsAdmin() {
			return nil, errs.ErrOrderNotFound
		}
	case req.TrackingToken != "":
		o, err = uc.uow.CommandReads().OrderByTrackingToken(ctx, req.TrackingToken)
	default:
		return nil, errs.ErrOrderNotFound
	}
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrOrderNotFound
		}
		return nil, err
	}
	return o, nil
}

// refresh leaves o at its last persisted values when the provider or the store fails.
func (uc *trackingUseCaseImpl) refresh(ctx context.Context, o *order.Order) {
	fo, err := uc.client.GetOrder(ctx, *o.FulfillmentOrderID())
	if err != nil {
		slog.Warn("tracking refresh failed, serving stored values",
			"order_id", o.ID(),
			"fulfillment_order_id", *o.FulfillmentOrderID(),
			"error", err.Error())
		return
	}

	if _, _, err := uc.reconcileAndPersist(ctx, o, order.FulfillmentUpdate{
		ProviderStatus: fo.Status,
		Shipment:       fo.LatestShipment(),
	}); err != nil {
		slog.Error("failed to persist refreshed tracking", "order_id", o.ID(), "error", err.Error())
	}
}

func (uc *trackingUseCaseImpl) RecoverByEmail(ctx context.Context, req RecoverRequest) error {
	ctx, span := tracing.StartSpan(ctx, "tracking.recover")
	defer span.End()

	ok, err := uc.verifier.Verify(ctx, req.ChallengeToken, req.RemoteIP)
	if err != nil {
		slog.Warn("challenge verification error", "error", err.Error())
		return errs.Mark(err, errs.ErrChallengeFailed)
	}
	if !ok {
		return errs.ErrChallengeFailed
	}

	email := user.NormalizeEmail(req.Email)
	orders, err := uc.uow.CommandReads().TrackableOrdersByEmail(ctx, email, MaxRecoveryOrders)
	if err != nil {
		slog.Error("failed to look up orders for recovery", "error", err.Error())
		return nil
	}
	if len(orders) == 0 {
		slog.Info("tracking recovery requested for address without orders")
		return nil
	}

	if err := uc.notifier.TrackingRecovery(ctx, email, orders); err != nil {
		slog.Error("failed to send tracking recovery email", "orders", len(orders), "error", err.Error())
	}
	return nil
}
