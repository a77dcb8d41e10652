package shared

import (
	"context"
	"time"

	"storefront/internal/domain/discount"
	"storefront/internal/domain/order"
	sqlc "storefront/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Orders() OrderRepository
	Discounts() DiscountRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads loads aggregates for the write side. Missing rows surface as infra NOT_FOUND errors.
type CommandReads interface {
	OrderByID(ctx context.Context, id uuid.UUID) (*order.Order, error)
	OrderBySessionID(ctx context.Context, sessionID string) (*order.Order, error)
	OrderByFulfillmentID(ctx context.Context, fulfillmentOrderID string) (*order.Order, error)
	OrderByTrackingToken(ctx context.Context, token string) (*order.Order, error)
	TrackableOrdersByEmail(ctx context.Context, email string, limit int32) ([]*order.Order, error)
	DiscountByCode(ctx context.Context, code string) (*discount.Code, error)
	ProfileByEmail(ctx context.Context, email string) (*ProfileSnapshot, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	// UpdateFulfillmentState writes status and tracking only if the stored status still equals expected.
	UpdateFulfillmentState(ctx context.Context, tx sqlc.DBTX, o *order.Order, expected order.Status) (bool, error)
	// AttachFulfillment sets the fulfillment order id only when none is stored yet.
	AttachFulfillment(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, fulfillmentOrderID string, now time.Time) (bool, error)
	ClaimGuestOrders(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, email string, now time.Time) (int64, error)
}

type DiscountRepository interface {
	// IncrementUsage reports false when the usage cap is already reached.
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, codeID uuid.UUID) (bool, error)
	RecordRedemption(ctx context.Context, tx sqlc.DBTX, r Redemption) error
}
