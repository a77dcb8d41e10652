//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// SeedDiscountCode is present after every reset.
const SeedDiscountCode = "WELCOME10"

func CreateTestProfile(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO profiles (id, email) VALUES ($1, $2)
		ON CONFLICT ((lower(email))) DO UPDATE SET email = profiles.email
		RETURNING id`, id, email).Scan(&id)
	require.NoError(t, err)

	return id
}

type DiscountFixture struct {
	Code           string
	Kind           string
	Value          int64
	MinOrderAmount int64
	MaxUses        *int32
	MembersOnly    bool
	Inactive       bool
	ExpiresAt      *time.Time
}

func CreateTestDiscount(t *testing.T, db DBLike, d DiscountFixture) uuid.UUID {
	t.Helper()

	if d.Kind == "" {
		d.Kind = "percentage"
	}
	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO discount_codes (code, discount_type, value, min_order_amount, max_uses, members_only, is_active, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		d.Code, d.Kind, d.Value, d.MinOrderAmount, d.MaxUses, d.MembersOnly, !d.Inactive, d.ExpiresAt).Scan(&id)
	require.NoError(t, err)

	return id
}

type OrderFixture struct {
	UserID             *uuid.UUID
	SessionID          string
	FulfillmentOrderID *string
	Status             string
	CustomerEmail      string
	TrackingToken      string
	TrackingNumber     *string
	Subtotal           int64
	CreatedAt          time.Time
}

// CreateTestOrder inserts an order directly, bypassing checkout. Zero values get usable defaults.
func CreateTestOrder(t *testing.T, db DBLike, o OrderFixture) uuid.UUID {
	t.Helper()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if o.SessionID == "" {
		o.SessionID = "cs_test_" + suffix
	}
	if o.Status == "" {
		o.Status = "confirmed"
	}
	if o.CustomerEmail == "" {
		o.CustomerEmail = "guest@example.com"
	}
	if o.TrackingToken == "" {
		o.TrackingToken = "tok_" + suffix
	}
	if o.Subtotal == 0 {
		o.Subtotal = 2800
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}

	items := `[{"product_id":"classic-tee-black","name":"Classic Tee (Black)","size":"M","color":"Black","quantity":1,"unit_price":2800}]`
	address := `{"line1":"1 Main St","city":"Springfield","postal_code":"12345","country":"US"}`

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO orders (user_id, stripe_session_id, printful_order_id, status, tracking_number, items,
		                    subtotal, shipping_cost, discount_amount, total, shipping_name, shipping_address,
		                    customer_email, tracking_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, 0, 0, $7, 'Ada Lovelace', $8::jsonb, $9, $10, $11, $11)
		RETURNING id`,
		o.UserID, o.SessionID, o.FulfillmentOrderID, o.Status, o.TrackingNumber, items,
		o.Subtotal, address, o.CustomerEmail, o.TrackingToken, o.CreatedAt).Scan(&id)
	require.NoError(t, err)

	return id
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO discount_codes (code, discount_type, value, description)
		VALUES ($1, 'percentage', 10, 'Welcome offer')
		ON CONFLICT (code) DO NOTHING;
	`, SeedDiscountCode)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
