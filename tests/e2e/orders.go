//go:build e2e

package e2e

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

// StoredOrder is the subset of an order row the end-to-end tests assert on.
type StoredOrder struct {
	ID                 uuid.UUID
	UserID             *uuid.UUID
	Status             string
	FulfillmentOrderID *string
	TrackingNumber     *string
	TrackingToken      string
	DiscountCode       *string
	Subtotal           int64
	DiscountAmount     int64
	Total              int64
	CustomerEmail      string
}

// OrderBySession returns nil when no order exists for the session.
func (s *SharedSuite) OrderBySession(sessionID string) *StoredOrder {
	return s.findOrder(`stripe_session_id = $1`, sessionID)
}

func (s *SharedSuite) OrderByID(id uuid.UUID) *StoredOrder {
	return s.findOrder(`id = $1`, id)
}

func (s *SharedSuite) findOrder(where string, arg any) *StoredOrder {
	t := s.T()
	var o StoredOrder
	err := s.DB.QueryRow(context.Background(), `
		SELECT id, user_id, status, printful_order_id, tracking_number, tracking_token,
		       discount_code, subtotal, discount_amount, total, customer_email
		FROM orders WHERE `+where, arg).Scan(
		&o.ID, &o.UserID, &o.Status, &o.FulfillmentOrderID, &o.TrackingNumber, &o.TrackingToken,
		&o.DiscountCode, &o.Subtotal, &o.DiscountAmount, &o.Total, &o.CustomerEmail)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil
	}
	require.NoError(t, err)
	return &o
}

func (s *SharedSuite) CountRows(query string, args ...any) int {
	t := s.T()
	var n int
	require.NoError(t, s.DB.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}
