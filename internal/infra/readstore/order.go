package readstore

import (
	"context"
	"time"

	"storefront/internal/domain/order"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Orders, error)
	GetOrderBySessionID(ctx context.Context, db sqlc.DBTX, stripeSessionID string) (sqlc.Orders, error)
	GetOrderByFulfillmentID(ctx context.Context, db sqlc.DBTX, printfulOrderID pgtype.Text) (sqlc.Orders, error)
	GetOrderByTrackingToken(ctx context.Context, db sqlc.DBTX, trackingToken string) (sqlc.Orders, error)
	ListOrdersByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserParams) ([]sqlc.Orders, error)
	ListOrdersByUserKeyset(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOrdersByUserKeysetParams) ([]sqlc.Orders, error)
	ListTrackableOrdersByEmail(ctx context.Context, db sqlc.DBTX, arg sqlc.ListTrackableOrdersByEmailParams) ([]sqlc.Orders, error)
}

// OrderReadStore serves both account views and aggregate loads for commands.
type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

// =============================================================================
// Views
// =============================================================================

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapOrderLookupErr(err)
	}
	return toOrderView(row)
}

func (r *OrderReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.OrderView, error) {
	params := sqlc.ListOrdersByUserParams{
		UserID: pgconv.UUIDToPgtype(userID),
		Limit:  limit,
	}
	rows, err := r.queries.ListOrdersByUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders first page by user", err)
	}
	return toOrderViews(rows)
}

func (r *OrderReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.OrderView, error) {
	params := sqlc.ListOrdersByUserKeysetParams{
		UserID:        pgconv.UUIDToPgtype(userID),
		LastCreatedAt: pgconv.TimeToPgtype(lastCreatedAt),
		LastID:        lastID,
		RowLimit:      limit,
	}
	rows, err := r.queries.ListOrdersByUserKeyset(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders keyset by user", err)
	}
	return toOrderViews(rows)
}

// =============================================================================
// Aggregates
// =============================================================================

func (r *OrderReadStore) LoadByID(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		return nil, wrapOrderLookupErr(err)
	}
	return toAggregate(row)
}

func (r *OrderReadStore) LoadBySessionID(ctx context.Context, sessionID string) (*order.Order, error) {
	row, err := r.queries.GetOrderBySessionID(ctx, r.db, sessionID)
	if err != nil {
		return nil, wrapOrderLookupErr(err)
	}
	return toAggregate(row)
}

func (r *OrderReadStore) LoadByFulfillmentID(ctx context.Context, fulfillmentOrderID string) (*order.Order, error) {
	row, err := r.queries.GetOrderByFulfillmentID(ctx, r.db, pgconv.StringToPgtype(fulfillmentOrderID))
	if err != nil {
		return nil, wrapOrderLookupErr(err)
	}
	return toAggregate(row)
}

func (r *OrderReadStore) LoadByTrackingToken(ctx context.Context, token string) (*order.Order, error) {
	row, err := r.queries.GetOrderByTrackingToken(ctx, r.db, token)
	if err != nil {
		return nil, wrapOrderLookupErr(err)
	}
	return toAggregate(row)
}

// LoadTrackableByEmail returns newest first. Email matching is case-insensitive.
func (r *OrderReadStore) LoadTrackableByEmail(ctx context.Context, email string, limit int32) ([]*order.Order, error) {
	params := sqlc.ListTrackableOrdersByEmailParams{
		Email:    email,
		RowLimit: limit,
	}
	rows, err := r.queries.ListTrackableOrdersByEmail(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list trackable orders by email", err)
	}
	out := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := toAggregate(row)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func wrapOrderLookupErr(err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr("order not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get order", err)
}

func toAggregate(row sqlc.Orders) (*order.Order, error) {
	o, err := converter.OrderFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order is corrupt", err, infra.KindConstraintViolated)
	}
	return o, nil
}

func toOrderViews(rows []sqlc.Orders) ([]*queries.OrderView, error) {
	out := make([]*queries.OrderView, 0, len(rows))
	for _, row := range rows {
		v, err := toOrderView(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func toOrderView(row sqlc.Orders) (*queries.OrderView, error) {
	items, err := converter.DecodeLineItems(row.Items)
	if err != nil {
		return nil, infra.WrapRepoErr("stored order items are corrupt", err, infra.KindConstraintViolated)
	}
	address, err := converter.DecodeAddress(row.ShippingAddress)
	if err != nil {
		return nil, infra.WrapRepoErr("stored shipping address is corrupt", err, infra.KindConstraintViolated)
	}

	itemViews := make([]queries.OrderItemView, len(items))
	for i, it := range items {
		itemViews[i] = queries.OrderItemView{
			ProductID: it.ProductID,
			Name:      it.Name,
			Size:      it.Size,
			Color:     it.Color,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Image:     it.Image,
		}
	}

	return &queries.OrderView{
		ID:             row.ID,
		UserID:         pgconv.UUIDPtrFromPgtype(row.UserID),
		Status:         row.Status,
		Items:          itemViews,
		Subtotal:       row.Subtotal,
		ShippingCost:   row.ShippingCost,
		DiscountAmount: row.DiscountAmount,
		Total:          row.Total,
		DiscountCode:   pgconv.StringPtrFromPgtype(row.DiscountCode),
		GiftMessage:    pgconv.StringPtrFromPgtype(row.GiftMessage),
		ShippingName:   row.ShippingName,
		ShippingAddress: queries.AddressView{
			Line1:      address.Line1,
			Line2:      address.Line2,
			City:       address.City,
			State:      address.State,
			PostalCode: address.PostalCode,
			Country:    address.Country,
		},
		CustomerEmail:     row.CustomerEmail,
		TrackingNumber:    pgconv.StringPtrFromPgtype(row.TrackingNumber),
		TrackingURL:       pgconv.StringPtrFromPgtype(row.TrackingUrl),
		Carrier:           pgconv.StringPtrFromPgtype(row.Carrier),
		ShippedAt:         pgconv.TimePtrFromPgtype(row.ShippedAt),
		EstimatedDelivery: pgconv.DatePtrFromPgtype(row.EstimatedDelivery),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
