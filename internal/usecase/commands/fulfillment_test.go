//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/internal/domain/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/tests/common/builder"
	"storefront/tests/common/memstore"
	commandsmock "storefront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fulfillmentDeps struct {
	store    *memstore.Store
	parser   *commandsmock.MockFulfillmentEventParser
	client   *commandsmock.MockFulfillmentClient
	notifier *commandsmock.MockNotifier
	locker   *commandsmock.MockLocker
}

func newFulfillment(t *testing.T) (commands.FulfillmentCommands, *fulfillmentDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &fulfillmentDeps{
		store:    memstore.New(),
		parser:   commandsmock.NewMockFulfillmentEventParser(ctrl),
		client:   commandsmock.NewMockFulfillmentClient(ctrl),
		notifier: commandsmock.NewMockNotifier(ctrl),
		locker:   commandsmock.NewMockLocker(ctrl),
	}
	publisher := commandsmock.NewMockEventPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	uc := commands.NewFulfillmentUseCase(d.store, clock.NewFixedClock(testNow), d.parser, testCatalog(), d.client, d.notifier, publisher, d.locker)
	return uc, d
}

func shippedEvent(fulfillmentID string) commands.FulfillmentEvent {
	return commands.FulfillmentEvent{
		Type:    order.EventPackageShipped,
		OrderID: fulfillmentID,
		Shipment: &order.Shipment{
			TrackingNumber: "1Z999",
			TrackingURL:    "https://track.example.com/1Z999",
			Carrier:        "UPS",
			ShipDate:       &testNow,
		},
	}
}

// =============================================================================
// HandleEvent Tests
// =============================================================================

func TestHandleEvent_Shipped(t *testing.T) {
	ctx := context.Background()
	uc, d := newFulfillment(t)
	o := builder.NewOrderBuilder().WithFulfillmentOrderID("pf_100").BuildDomain()
	d.store.PutOrder(o)

	d.notifier.EXPECT().
		OrderShipped(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got *order.Order) error {
			assert.Equal(t, order.StatusShipped, got.Status())
			return nil
		})

	require.NoError(t, uc.HandleEvent(ctx, shippedEvent("pf_100")))

	stored, _ := d.store.Order(o.ID())
	assert.Equal(t, order.StatusShipped, stored.Status())
	require.NotNil(t, stored.Tracking().Number)
	assert.Equal(t, "1Z999", *stored.Tracking().Number)
	assert.Equal(t, "UPS", *stored.Tracking().Carrier)
	require.NotNil(t, stored.Tracking().EstimatedDelivery)
	assert.True(t, stored.Tracking().EstimatedDelivery.After(testNow))
}

func TestHandleEvent_IdenticalReplayDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	uc, d := newFulfillment(t)
	o := builder.NewOrderBuilder().WithFulfillmentOrderID("pf_200").BuildDomain()
	d.store.PutOrder(o)
	d.notifier.EXPECT().OrderShipped(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	require.NoError(t, uc.HandleEvent(ctx, shippedEvent("pf_200")))
	writes := d.store.Writes()

	require.NoError(t, uc.HandleEvent(ctx, shippedEvent("pf_200")))
	assert.Equal(t, writes, d.store.Writes())
}

func TestHandleEvent_ConcurrentIdenticalEventsEmailOnce(t *testing.T) {
	ctx := context.Background()
	uc, d := newFulfillment(t)
	o := builder.NewOrderBuilder().WithFulfillmentOrderID("pf_300").BuildDomain()
	d.store.PutOrder(o)
	d.notifier.EXPECT().OrderShipped(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, uc.HandleEvent(ctx, shippedEvent("pf_300")))
		}()
	}
	wg.Wait()

	stored, _ := d.store.Order(o.ID())
	assert.Equal(t, order.StatusShipped, stored.Status())
}

func TestHandleEvent_Delivered(t *testing.T) {
	ctx := context.Background()
	uc, d := newFulfillment(t)
	o := builder.NewOrderBuilder().WithFulfillmentOrderID("pf_400").WithStatus(order.StatusShipped).BuildDomain()
	d.store.PutOrder(o)
	d.notifier.EXPECT().OrderDelivered(gomock.Any(), gomock.Any()).Return(nil)

	ev := shippedEvent("pf_400")
	ev.Type = order.EventOrderUpdated
	ev.Status = "fulfilled"
	ev.Shipment.Status = "delivered"

	require.NoError(t, uc.HandleEvent(ctx, ev))
	stored, _ := d.store.Order(o.ID())
	assert.Equal(t, order.StatusDelivered, stored.Status())
}

func TestHandleEvent_NoRegression(t *testing.T) {
	ctx := context.Background()
	uc, d := newFulfillment(t)
	o := builder.NewOrderBuilder().WithFulfillmentOrderID("pf_500").WithStatus(order.StatusDelivered).BuildDomain()
	d.store.PutOrder(o)

	ev := commands.FulfillmentEvent{Type: order.EventOrderUpdated, OrderID: "pf_500", Status: "inprocess"}
	require.NoError(t, uc.HandleEvent(ctx, ev))

	stored, _ := d.store.Order(o.ID())
	assert.Equal(t, order.StatusDelivered, stored.Status())
	assert.Zero(t, d.store.Writes())
}

func TestHandleEvent_Acknowledged(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		ev    commands.FulfillmentEvent
		setup func(d *fulfillmentDeps)
	}{
		{
			name: "unsupported event type",
			ev:   commands.FulfillmentEvent{Type: "stock_updated", OrderID: "pf_1"},
		},
		{
			name: "missing order id",
			ev:   commands.FulfillmentEvent{Type: order.EventPackageShipped},
		},
		{
			name: "unknown fulfillment order",
			ev:   shippedEvent("pf_unknown"),
		},
		{
			name:  "store unavailable",
			ev:    shippedEvent("pf_1"),
			setup: func(d *fulfillmentDeps) { d.store.FailReads = errors.New("connection reset") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, d := newFulfillment(t)
			d.store.PutOrder(builder.NewOrderBuilder().WithFulfillmentOrderID("pf_1").BuildDomain())
			if tt.setup != nil {
				tt.setup(d)
			}

			assert.NoError(t, uc.HandleEvent(ctx, tt.ev))
			assert.Zero(t, d.store.Writes())
		})
	}
}

func TestHandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid signature", func(t *testing.T) {
		uc, d := newFulfillment(t)
		d.parser.EXPECT().Parse(gomock.Any(), "bad").Return(nil, errs.Mark(errors.New("mismatch"), errs.ErrInvalidSignature))

		assert.ErrorIs(t, uc.HandleWebhook(ctx, []byte("{}"), "bad"), errs.ErrInvalidSignature)
	})

	t.Run("undecodable payload is acknowledged", func(t *testing.T) {
		uc, d := newFulfillment(t)
		d.parser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(nil, errs.Mark(errors.New("eof"), errs.ErrMalformedEvent))

		assert.NoError(t, uc.HandleWebhook(ctx, []byte("{"), "sig"))
	})

	t.Run("parsed event is reconciled", func(t *testing.T) {
		uc, d := newFulfillment(t)
		o := builder.NewOrderBuilder().WithFulfillmentOrderID("pf_wh").BuildDomain()
		d.store.PutOrder(o)
		ev := shippedEvent("pf_wh")
		d.parser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(&ev, nil)
		d.notifier.EXPECT().OrderShipped(gomock.Any(), gomock.Any()).Return(errors.New("mail down"))

		require.NoError(t, uc.HandleWebhook(ctx, []byte("{}"), "sig"))
		stored, _ := d.store.Order(o.ID())
		assert.Equal(t, order.StatusShipped, stored.Status())
	})
}

// =============================================================================
// RetryFulfillment Tests
// =============================================================================

func TestRetryFulfillment(t *testing.T) {
	ctx := context.Background()
	admin := builder.NewUserBuilder().AsAdmin().BuildActor()

	t.Run("success then rejected retry", func(t *testing.T) {
		uc, d := newFulfillment(t)
		d.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, true, nil).AnyTimes()
		o := builder.NewOrderBuilder().WithoutFulfillment().WithItems(
			order.LineItem{ProductID: "tee-black", Name: "Black Tee", Size: "L", Quantity: 1, UnitPrice: 2500},
			order.LineItem{ProductID: "sticker", Name: "Sticker", Quantity: 2, UnitPrice: 300},
		).BuildDomain()
		d.store.PutOrder(o)

		d.client.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req commands.FulfillmentOrderRequest) (*commands.FulfillmentOrder, error) {
				assert.Equal(t, o.SessionID(), req.ExternalID)
				assert.Equal(t, o.Totals().Total(), req.RetailCosts.Total)
				require.Len(t, req.Items, 1)
				assert.Equal(t, int64(102), req.Items[0].VariantID)
				return &commands.FulfillmentOrder{ID: "pf_new"}, nil
			}).Times(1)

		res, err := uc.RetryFulfillment(ctx, o.ID(), admin)
		require.NoError(t, err)
		assert.Equal(t, "pf_new", res.FulfillmentOrderID)
		assert.Equal(t, 1, res.DroppedItems)

		stored, _ := d.store.Order(o.ID())
		require.NotNil(t, stored.FulfillmentOrderID())
		assert.Equal(t, "pf_new", *stored.FulfillmentOrderID())

		_, err = uc.RetryFulfillment(ctx, o.ID(), admin)
		assert.ErrorIs(t, err, errs.ErrFulfillmentExists)
	})

	t.Run("forbidden", func(t *testing.T) {
		uc, _ := newFulfillment(t)
		customer := builder.NewUserBuilder().BuildActor()

		_, err := uc.RetryFulfillment(ctx, uuid.New(), customer)
		assert.ErrorIs(t, err, errs.ErrForbidden)
		_, err = uc.RetryFulfillment(ctx, uuid.New(), nil)
		assert.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("order not found", func(t *testing.T) {
		uc, d := newFulfillment(t)
		d.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, true, nil)

		_, err := uc.RetryFulfillment(ctx, uuid.New(), admin)
		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("nothing to fulfill", func(t *testing.T) {
		uc, d := newFulfillment(t)
		d.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, true, nil)
		o := builder.NewOrderBuilder().WithoutFulfillment().WithItems(
			order.LineItem{ProductID: "sticker", Name: "Sticker", Quantity: 1, UnitPrice: 300},
		).BuildDomain()
		d.store.PutOrder(o)

		_, err := uc.RetryFulfillment(ctx, o.ID(), admin)
		assert.ErrorIs(t, err, errs.ErrNothingToFulfill)
	})

	t.Run("provider failure", func(t *testing.T) {
		uc, d := newFulfillment(t)
		d.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, true, nil)
		o := builder.NewOrderBuilder().WithoutFulfillment().BuildDomain()
		d.store.PutOrder(o)
		d.client.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("503"))

		_, err := uc.RetryFulfillment(ctx, o.ID(), admin)
		assert.ErrorIs(t, err, errs.ErrUpstreamUnavailable)
		stored, _ := d.store.Order(o.ID())
		assert.False(t, stored.HasFulfillment())
	})

	t.Run("retry already running", func(t *testing.T) {
		uc, d := newFulfillment(t)
		id := uuid.New()
		d.locker.EXPECT().Acquire(gomock.Any(), "fulfillment-retry:"+id.String()).Return(nil, false, nil)

		_, err := uc.RetryFulfillment(ctx, id, admin)
		assert.ErrorIs(t, err, errs.ErrFulfillmentInFlight)
	})
}
