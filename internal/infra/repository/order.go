package repository

import (
	"context"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) (sqlc.Orders, error)
	UpdateOrderFulfillmentState(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderFulfillmentStateParams) (int64, error)
	AttachFulfillmentOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.AttachFulfillmentOrderParams) (int64, error)
	ClaimGuestOrders(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimGuestOrdersParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
	db      sqlc.DBTX
}

func NewOrderRepository(queries OrderWriteQueries, db sqlc.DBTX) *OrderRepository {
	return &OrderRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	params, err := converter.OrderToCreateParams(o)
	if err != nil {
		return infra.WrapRepoErr("failed to build order insert", err, infra.KindDBFailure)
	}
	if _, err := r.queries.CreateOrder(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	return nil
}

func (r *OrderRepository) UpdateFulfillmentState(ctx context.Context, tx sqlc.DBTX, o *order.Order, expected order.Status) (bool, error) {
	n, err := r.queries.UpdateOrderFulfillmentState(ctx, tx, converter.OrderToFulfillmentStateParams(o, expected))
	if err != nil {
		return false, infra.WrapRepoErr("failed to update order fulfillment state", err)
	}
	return n > 0, nil
}

func (r *OrderRepository) AttachFulfillment(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, fulfillmentOrderID string, now time.Time) (bool, error) {
	n, err := r.queries.AttachFulfillmentOrder(ctx, tx, sqlc.AttachFulfillmentOrderParams{
		PrintfulOrderID: pgconv.StringToPgtype(fulfillmentOrderID),
		UpdatedAt:       pgconv.TimeToPgtype(now),
		ID:              orderID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to attach fulfillment order", err)
	}
	return n > 0, nil
}

func (r *OrderRepository) ClaimGuestOrders(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, email string, now time.Time) (int64, error) {
	n, err := r.queries.ClaimGuestOrders(ctx, tx, sqlc.ClaimGuestOrdersParams{
		UserID:    pgconv.UUIDToPgtype(userID),
		UpdatedAt: pgconv.TimeToPgtype(now),
		Email:     email,
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to claim guest orders", err)
	}
	return n, nil
}
