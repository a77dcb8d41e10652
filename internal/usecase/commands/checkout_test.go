//go:build unit

package commands_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/catalog"
	"storefront/internal/domain/discount"
	"storefront/internal/domain/order"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/shared"
	"storefront/tests/common/builder"
	"storefront/tests/common/memstore"
	commandsmock "storefront/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)

func testCatalog() catalog.Service {
	return catalog.NewStatic([]catalog.Product{
		{ID: "tee-black", Name: "Black Tee", Price: 2500, Variants: map[string]int64{"M": 101, "L": 102}},
		{ID: "hoodie", Name: "Hoodie", Price: 6000, Variants: map[string]int64{"L": 201}},
		{ID: "sticker", Name: "Sticker", Price: 300},
	})
}

type checkoutDeps struct {
	store       *memstore.Store
	parser      *commandsmock.MockPaymentEventParser
	fulfillment *commandsmock.MockFulfillmentClient
	notifier    *commandsmock.MockNotifier
	publisher   *commandsmock.MockEventPublisher
	locker      *commandsmock.MockLocker
}

func newCheckout(t *testing.T) (commands.CheckoutCommands, *checkoutDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	d := &checkoutDeps{
		store:       memstore.New(),
		parser:      commandsmock.NewMockPaymentEventParser(ctrl),
		fulfillment: commandsmock.NewMockFulfillmentClient(ctrl),
		notifier:    commandsmock.NewMockNotifier(ctrl),
		publisher:   commandsmock.NewMockEventPublisher(ctrl),
		locker:      commandsmock.NewMockLocker(ctrl),
	}
	d.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	uc := commands.NewCheckoutUseCase(d.store, clock.NewFixedClock(testNow), d.parser, testCatalog(), d.fulfillment, d.notifier, d.publisher, d.locker)
	return uc, d
}

func (d *checkoutDeps) freeLocks() {
	d.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(func() {}, true, nil).AnyTimes()
}

func session(t *testing.T, id string, items []order.CartItem, extra map[string]string) commands.CheckoutSession {
	t.Helper()
	md, err := order.EncodeCartItems(items)
	require.NoError(t, err)
	for k, v := range extra {
		md[k] = v
	}
	var subtotal int64
	for _, it := range items {
		p, _ := testCatalog().Product(it.ProductID)
		subtotal += p.Price * int64(it.Quantity)
	}
	return commands.CheckoutSession{
		SessionID:       id,
		PaymentIntentID: "pi_" + id,
		CustomerEmail:   "Ada@Example.com",
		ShippingName:    "Ada Lovelace",
		ShippingAddress: order.Address{Line1: "1 Main St", City: "Portland", PostalCode: "97201", Country: "US"},
		AmountSubtotal:  subtotal,
		AmountShipping:  500,
		AmountTotal:     subtotal + 500,
		Metadata:        md,
	}
}

// captureLogs routes the default logger into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// =============================================================================
// CompleteCheckout Tests
// =============================================================================

func TestCompleteCheckout_CreatesOrder(t *testing.T) {
	ctx := context.Background()
	uc, d := newCheckout(t)
	d.freeLocks()

	sess := session(t, "cs_1", []order.CartItem{
		{ProductID: "tee-black", Size: "M", Color: "black", Quantity: 2},
		{ProductID: "sticker", Quantity: 1},
	}, map[string]string{order.MetadataGiftMessage: "enjoy"})

	d.fulfillment.EXPECT().
		CreateOrder(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req commands.FulfillmentOrderRequest) (*commands.FulfillmentOrder, error) {
			assert.Equal(t, "cs_1", req.ExternalID)
			require.Len(t, req.Items, 1, "unmapped sticker is not sent to the provider")
			assert.Equal(t, int64(101), req.Items[0].VariantID)
			assert.Equal(t, 2, req.Items[0].Quantity)
			require.NotNil(t, req.GiftMessage)
			assert.Equal(t, "enjoy", *req.GiftMessage)
			return &commands.FulfillmentOrder{ID: "pf_1", Status: "pending"}, nil
		})
	d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	res, err := uc.CompleteCheckout(ctx, sess)
	require.NoError(t, err)
	assert.True(t, res.Saved)
	assert.False(t, res.AlreadyProcessed)

	o, ok := d.store.Order(res.OrderID)
	require.True(t, ok)
	assert.Equal(t, order.StatusConfirmed, o.Status())
	require.NotNil(t, o.FulfillmentOrderID())
	assert.Equal(t, "pf_1", *o.FulfillmentOrderID())
	assert.Len(t, o.Items(), 2, "unmapped items stay on the order")
	assert.Equal(t, "ada@example.com", o.CustomerEmail())
	assert.Equal(t, o.Totals().Subtotal()+o.Totals().ShippingCost()-o.Totals().DiscountAmount(), o.Totals().Total())
	assert.NotEmpty(t, o.TrackingToken())
}

func TestCompleteCheckout_IdempotentReplay(t *testing.T) {
	ctx := context.Background()
	uc, d := newCheckout(t)
	d.freeLocks()
	sess := session(t, "cs_replay", []order.CartItem{{ProductID: "tee-black", Size: "L", Quantity: 1}}, nil)

	d.fulfillment.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&commands.FulfillmentOrder{ID: "pf_r"}, nil).Times(1)
	d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	first, err := uc.CompleteCheckout(ctx, sess)
	require.NoError(t, err)
	writes := d.store.Writes()

	second, err := uc.CompleteCheckout(ctx, sess)
	require.NoError(t, err)
	assert.True(t, second.AlreadyProcessed)
	assert.Equal(t, first.OrderID, second.OrderID)
	assert.Equal(t, writes, d.store.Writes(), "replay must not write")
	assert.Len(t, d.store.Orders(), 1)
}

func TestCompleteCheckout_DiscountCapUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	uc, d := newCheckout(t)
	d.freeLocks()

	const sessions, capacity = 10, 3
	code, err := builder.NewDiscountBuilder().WithCode("LIMITED").WithKind(discount.KindFixed).WithValue(500).WithMaxUses(capacity).BuildDomain()
	require.NoError(t, err)
	d.store.PutDiscount(code)

	d.fulfillment.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&commands.FulfillmentOrder{ID: "pf"}, nil).AnyTimes()
	d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil).Times(sessions)

	batch := make([]commands.CheckoutSession, sessions)
	for i := range batch {
		batch[i] = session(t, fmt.Sprintf("cs_c%d", i), []order.CartItem{{ProductID: "hoodie", Size: "L", Quantity: 1}},
			map[string]string{order.MetadataDiscountCode: "limited"})
		batch[i].AmountDiscount = 500
		batch[i].AmountTotal -= 500
	}

	var wg sync.WaitGroup
	for _, sess := range batch {
		wg.Add(1)
		go func(sess commands.CheckoutSession) {
			defer wg.Done()
			res, err := uc.CompleteCheckout(ctx, sess)
			if assert.NoError(t, err) {
				assert.True(t, res.Saved)
			}
		}(sess)
	}
	wg.Wait()

	stored, ok := d.store.Discount("LIMITED")
	require.True(t, ok)
	assert.Equal(t, int32(capacity), stored.CurrentUses())
	assert.Len(t, d.store.Redemptions(), capacity)

	withCode := 0
	for _, o := range d.store.Orders() {
		assert.Equal(t, int64(500), o.Totals().DiscountAmount(), "charged discount is kept")
		if o.DiscountCode() != nil {
			withCode++
		}
	}
	assert.Equal(t, capacity, withCode)
	assert.Len(t, d.store.Orders(), sessions)
}

func TestCompleteCheckout_UnknownDiscountCodeIsDropped(t *testing.T) {
	ctx := context.Background()
	uc, d := newCheckout(t)
	d.freeLocks()
	d.fulfillment.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&commands.FulfillmentOrder{ID: "pf"}, nil)
	d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	sess := session(t, "cs_ghost", []order.CartItem{{ProductID: "hoodie", Size: "L", Quantity: 1}},
		map[string]string{order.MetadataDiscountCode: "GHOST"})

	res, err := uc.CompleteCheckout(ctx, sess)
	require.NoError(t, err)
	o, _ := d.store.Order(res.OrderID)
	assert.Nil(t, o.DiscountCode())
	assert.Empty(t, d.store.Redemptions())
}

func TestCompleteCheckout_InactiveDiscountIsStillRedeemed(t *testing.T) {
	ctx := context.Background()
	uc, d := newCheckout(t)
	d.freeLocks()
	code, err := builder.NewDiscountBuilder().WithCode("RETIRED").WithKind(discount.KindFixed).WithValue(500).Inactive().BuildDomain()
	require.NoError(t, err)
	d.store.PutDiscount(code)
	d.fulfillment.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&commands.FulfillmentOrder{ID: "pf"}, nil)
	d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)

	sess := session(t, "cs_retired", []order.CartItem{{ProductID: "hoodie", Size: "L", Quantity: 1}},
		map[string]string{order.MetadataDiscountCode: "RETIRED"})
	sess.AmountDiscount = 500
	sess.AmountTotal -= 500

	res, err := uc.CompleteCheckout(ctx, sess)
	require.NoError(t, err)
	o, ok := d.store.Order(res.OrderID)
	require.True(t, ok)
	require.NotNil(t, o.DiscountCode(), "a code priced into the session is honored after deactivation")
	assert.Equal(t, "RETIRED", *o.DiscountCode())
	assert.Equal(t, int64(500), o.Totals().DiscountAmount())
	assert.Len(t, d.store.Redemptions(), 1)
	stored, _ := d.store.Discount("RETIRED")
	assert.Equal(t, int32(1), stored.CurrentUses())
}

func TestCompleteCheckout_FailurePolicy(t *testing.T) {
	ctx := context.Background()
	items := []order.CartItem{{ProductID: "tee-black", Size: "M", Quantity: 1}}

	t.Run("fulfillment failure still saves the order", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		d.fulfillment.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("printful down"))
		d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CompleteCheckout(ctx, session(t, "cs_f", items, nil))
		require.NoError(t, err)
		o, ok := d.store.Order(res.OrderID)
		require.True(t, ok)
		assert.False(t, o.HasFulfillment())
	})

	t.Run("nothing mapped skips fulfillment", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CompleteCheckout(ctx, session(t, "cs_s", []order.CartItem{{ProductID: "sticker", Quantity: 3}}, nil))
		require.NoError(t, err)
		assert.Nil(t, res.FulfillmentOrderID)
	})

	t.Run("store failure is acknowledged", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		d.store.FailCreate = errors.New("disk full")
		d.fulfillment.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&commands.FulfillmentOrder{ID: "pf_lost"}, nil)
		logs := captureLogs(t)

		res, err := uc.CompleteCheckout(ctx, session(t, "cs_db", items, nil))
		require.NoError(t, err)
		assert.False(t, res.Saved)
		assert.Empty(t, d.store.Orders())
		assert.Contains(t, logs.String(), `"fulfillment_order_id":"pf_lost"`, "the orphaned provider order is logged by id")
	})

	t.Run("confirmation email failure is swallowed", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		d.fulfillment.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&commands.FulfillmentOrder{ID: "pf"}, nil)
		d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(errors.New("smtp"))

		res, err := uc.CompleteCheckout(ctx, session(t, "cs_mail", items, nil))
		require.NoError(t, err)
		assert.True(t, res.Saved)
	})

	t.Run("idempotency lookup failure is retried by the provider", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		d.store.FailReads = errors.New("connection refused")

		_, err := uc.CompleteCheckout(ctx, session(t, "cs_l", items, nil))
		assert.ErrorIs(t, err, commands.ErrIdempotencyLookup)
	})

	t.Run("malformed metadata", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		sess := session(t, "cs_m", items, nil)
		sess.Metadata = map[string]string{"items_0": "tee-black,M"}

		_, err := uc.CompleteCheckout(ctx, sess)
		assert.ErrorIs(t, err, errs.ErrMalformedEvent)
	})

	t.Run("session held by another delivery", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.locker.EXPECT().Acquire(gomock.Any(), "checkout:cs_busy").Return(nil, false, nil)

		_, err := uc.CompleteCheckout(ctx, session(t, "cs_busy", items, nil))
		assert.ErrorIs(t, err, commands.ErrCheckoutInFlight)
	})

	t.Run("lock backend down proceeds without lock", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.locker.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))
		d.fulfillment.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&commands.FulfillmentOrder{ID: "pf"}, nil)
		d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)

		res, err := uc.CompleteCheckout(ctx, session(t, "cs_nolock", items, nil))
		require.NoError(t, err)
		assert.True(t, res.Saved)
	})
}

func TestCompleteCheckout_ResolvesUser(t *testing.T) {
	ctx := context.Background()
	items := []order.CartItem{{ProductID: "sticker", Quantity: 1}}

	t.Run("metadata user id wins", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)
		uid := uuid.New()

		res, err := uc.CompleteCheckout(ctx, session(t, "cs_u1", items, map[string]string{order.MetadataUserID: uid.String()}))
		require.NoError(t, err)
		o, _ := d.store.Order(res.OrderID)
		require.NotNil(t, o.UserID())
		assert.Equal(t, uid, *o.UserID())
	})

	t.Run("metadata user id without a profile row is kept on order and redemption", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)
		code, err := builder.NewDiscountBuilder().WithCode("MEMBER5").WithKind(discount.KindFixed).WithValue(100).BuildDomain()
		require.NoError(t, err)
		d.store.PutDiscount(code)
		uid := uuid.New()

		sess := session(t, "cs_u3", items, map[string]string{
			order.MetadataUserID:       uid.String(),
			order.MetadataDiscountCode: "MEMBER5",
		})
		sess.AmountDiscount = 100
		sess.AmountTotal -= 100

		res, err := uc.CompleteCheckout(ctx, sess)
		require.NoError(t, err)
		assert.True(t, res.Saved)
		o, ok := d.store.Order(res.OrderID)
		require.True(t, ok)
		require.NotNil(t, o.UserID())
		assert.Equal(t, uid, *o.UserID())
		require.Len(t, d.store.Redemptions(), 1)
		require.NotNil(t, d.store.Redemptions()[0].UserID)
		assert.Equal(t, uid, *d.store.Redemptions()[0].UserID)
	})

	t.Run("falls back to profile email", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)
		pid := uuid.New()
		d.store.PutProfile(shared.ProfileSnapshot{ID: pid, Email: "ada@example.com"})

		res, err := uc.CompleteCheckout(ctx, session(t, "cs_u2", items, nil))
		require.NoError(t, err)
		o, _ := d.store.Order(res.OrderID)
		require.NotNil(t, o.UserID())
		assert.Equal(t, pid, *o.UserID())
	})
}

// =============================================================================
// HandlePaymentWebhook Tests
// =============================================================================

func TestHandlePaymentWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("bad signature is rejected before processing", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.parser.EXPECT().Parse([]byte("{}"), "t=1,v1=bad").Return(nil, errs.ErrInvalidSignature)

		err := uc.HandlePaymentWebhook(ctx, []byte("{}"), "t=1,v1=bad")
		assert.ErrorIs(t, err, errs.ErrInvalidSignature)
		assert.Empty(t, d.store.Orders())
	})

	t.Run("other event types are acknowledged", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.parser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(&commands.PaymentEvent{ID: "evt_1", Type: "payment_intent.created"}, nil)

		assert.NoError(t, uc.HandlePaymentWebhook(ctx, []byte("{}"), "sig"))
	})

	t.Run("completed session without payload is malformed", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.parser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(&commands.PaymentEvent{ID: "evt_2", Type: commands.EventCheckoutSessionCompleted}, nil)

		err := uc.HandlePaymentWebhook(ctx, []byte("{}"), "sig")
		assert.ErrorIs(t, err, errs.ErrMalformedEvent)
	})

	t.Run("completed session creates order", func(t *testing.T) {
		uc, d := newCheckout(t)
		d.freeLocks()
		sess := session(t, "cs_wh", []order.CartItem{{ProductID: "sticker", Quantity: 1}}, nil)
		d.parser.EXPECT().Parse(gomock.Any(), gomock.Any()).Return(&commands.PaymentEvent{ID: "evt_3", Type: commands.EventCheckoutSessionCompleted, Checkout: &sess}, nil)
		d.notifier.EXPECT().OrderConfirmed(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, uc.HandlePaymentWebhook(ctx, []byte("{}"), "sig"))
		assert.Len(t, d.store.Orders(), 1)
	})
}
