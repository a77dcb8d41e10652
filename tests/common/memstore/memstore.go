//go:build unit

// Package memstore is an in-memory shared.UnitOfWork for usecase tests. Transactions are serialized
// and roll back on error, and it enforces the same uniqueness and conditional-update rules as the
// Postgres schema.
package memstore

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront/internal/domain/discount"
	"storefront/internal/domain/order"
	"storefront/internal/infra"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type state struct {
	orders      map[uuid.UUID]order.Order
	discounts   map[string]discount.Params
	redemptions []shared.Redemption
	profiles    map[string]shared.ProfileSnapshot
	writes      int
}

func (s *state) clone() *state {
	c := &state{
		orders:      make(map[uuid.UUID]order.Order, len(s.orders)),
		discounts:   make(map[string]discount.Params, len(s.discounts)),
		redemptions: append([]shared.Redemption(nil), s.redemptions...),
		profiles:    s.profiles,
		writes:      s.writes,
	}
	for k, v := range s.orders {
		c.orders[k] = v
	}
	for k, v := range s.discounts {
		c.discounts[k] = v
	}
	return c
}

type Store struct {
	mu    sync.Mutex
	state *state

	// FailCreate, when set, is returned by every order insert.
	FailCreate error
	// FailReads, when set, is returned by every command read.
	FailReads error
}

func New() *Store {
	return &Store{state: &state{
		orders:    map[uuid.UUID]order.Order{},
		discounts: map[string]discount.Params{},
		profiles:  map[string]shared.ProfileSnapshot{},
	}}
}

// =============================================================================
// Seeding and inspection
// =============================================================================

func (s *Store) PutOrder(o *order.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.orders[o.ID()] = *o
}

func (s *Store) PutDiscount(c *discount.Code) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.discounts[c.Code()] = paramsOf(c)
}

func (s *Store) PutProfile(p shared.ProfileSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.profiles[strings.ToLower(p.Email)] = p
}

func (s *Store) Order(id uuid.UUID) (*order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.state.orders[id]
	return &o, ok
}

func (s *Store) Orders() []*order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*order.Order, 0, len(s.state.orders))
	for _, o := range s.state.orders {
		o := o
		out = append(out, &o)
	}
	return out
}

func (s *Store) Discount(code string) (*discount.Code, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.state.discounts[code]
	if !ok {
		return nil, false
	}
	c, _ := discount.NewCode(p)
	return c, true
}

func (s *Store) Redemptions() []shared.Redemption {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]shared.Redemption(nil), s.state.redemptions...)
}

// Writes counts committed row mutations.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.writes
}

// =============================================================================
// shared.UnitOfWork
// =============================================================================

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	work := s.state.clone()
	if err := fn(ctx, &tx{store: s, st: work}); err != nil {
		return err
	}
	s.state = work
	return nil
}

func (s *Store) CommandReads() shared.CommandReads {
	return &reads{store: s, locked: false}
}

type tx struct {
	store *Store
	st    *state
}

func (t *tx) Orders() shared.OrderRepository       { return &orderRepo{t: t} }
func (t *tx) Discounts() shared.DiscountRepository { return &discountRepo{t: t} }
func (t *tx) Reads() shared.CommandReads           { return &reads{store: t.store, st: t.st, locked: true} }
func (t *tx) DB() sqlc.DBTX                        { return nil }

// =============================================================================
// Repositories
// =============================================================================

type orderRepo struct{ t *tx }

func (r *orderRepo) Create(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
	if r.t.store.FailCreate != nil {
		return infra.WrapRepoErr("failed to create order", r.t.store.FailCreate)
	}
	for _, existing := range r.t.st.orders {
		if existing.SessionID() == o.SessionID() || existing.TrackingToken() == o.TrackingToken() {
			return infra.WrapRepoErr("order already exists", nil, infra.KindDuplicateKey)
		}
	}
	r.t.st.orders[o.ID()] = *o
	r.t.st.writes++
	return nil
}

func (r *orderRepo) UpdateFulfillmentState(_ context.Context, _ sqlc.DBTX, o *order.Order, expected order.Status) (bool, error) {
	stored, ok := r.t.st.orders[o.ID()]
	if !ok || stored.Status() != expected {
		return false, nil
	}
	r.t.st.orders[o.ID()] = *o
	r.t.st.writes++
	return true, nil
}

func (r *orderRepo) AttachFulfillment(_ context.Context, _ sqlc.DBTX, orderID uuid.UUID, fulfillmentOrderID string, now time.Time) (bool, error) {
	stored, ok := r.t.st.orders[orderID]
	if !ok || stored.HasFulfillment() {
		return false, nil
	}
	stored.AttachFulfillment(fulfillmentOrderID, now)
	r.t.st.orders[orderID] = stored
	r.t.st.writes++
	return true, nil
}

func (r *orderRepo) ClaimGuestOrders(_ context.Context, _ sqlc.DBTX, userID uuid.UUID, email string, now time.Time) (int64, error) {
	var n int64
	for id, o := range r.t.st.orders {
		if o.UserID() != nil || !strings.EqualFold(o.CustomerEmail(), email) {
			continue
		}
		uid := userID
		r.t.st.orders[id] = *order.Reconstruct(order.ReconstructParams{
			ID:                 o.ID(),
			UserID:             &uid,
			SessionID:          o.SessionID(),
			PaymentIntentID:    o.PaymentIntentID(),
			FulfillmentOrderID: o.FulfillmentOrderID(),
			Status:             o.Status(),
			Tracking:           o.Tracking(),
			Items:              o.Items(),
			Totals:             o.Totals(),
			DiscountCode:       o.DiscountCode(),
			GiftMessage:        o.GiftMessage(),
			ShippingName:       o.ShippingName(),
			ShippingAddress:    o.ShippingAddress(),
			CustomerEmail:      o.CustomerEmail(),
			TrackingToken:      o.TrackingToken(),
			CreatedAt:          o.CreatedAt(),
			UpdatedAt:          now,
		})
		n++
	}
	r.t.st.writes += int(n)
	return n, nil
}

type discountRepo struct{ t *tx }

func (r *discountRepo) IncrementUsage(_ context.Context, _ sqlc.DBTX, codeID uuid.UUID) (bool, error) {
	for code, p := range r.t.st.discounts {
		if p.ID != codeID {
			continue
		}
		if p.MaxUses != nil && p.CurrentUses >= *p.MaxUses {
			return false, nil
		}
		p.CurrentUses++
		r.t.st.discounts[code] = p
		r.t.st.writes++
		return true, nil
	}
	return false, nil
}

func (r *discountRepo) RecordRedemption(_ context.Context, _ sqlc.DBTX, red shared.Redemption) error {
	for _, existing := range r.t.st.redemptions {
		if existing.OrderID == red.OrderID {
			return infra.WrapRepoErr("redemption already recorded", nil, infra.KindDuplicateKey)
		}
	}
	r.t.st.redemptions = append(r.t.st.redemptions, red)
	r.t.st.writes++
	return nil
}

// =============================================================================
// Command reads
// =============================================================================

type reads struct {
	store  *Store
	st     *state
	locked bool
}

func (r *reads) view(fn func(st *state) error) error {
	if r.store.FailReads != nil {
		return infra.WrapRepoErr("failed to read", r.store.FailReads)
	}
	if r.locked {
		return fn(r.st)
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(r.store.state)
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

func (r *reads) findOrder(match func(o order.Order) bool) (*order.Order, error) {
	var found *order.Order
	err := r.view(func(st *state) error {
		for _, o := range st.orders {
			if match(o) {
				o := o
				found = &o
				return nil
			}
		}
		return notFound("order")
	})
	return found, err
}

func (r *reads) OrderByID(_ context.Context, id uuid.UUID) (*order.Order, error) {
	return r.findOrder(func(o order.Order) bool { return o.ID() == id })
}

func (r *reads) OrderBySessionID(_ context.Context, sessionID string) (*order.Order, error) {
	return r.findOrder(func(o order.Order) bool { return o.SessionID() == sessionID })
}

func (r *reads) OrderByFulfillmentID(_ context.Context, id string) (*order.Order, error) {
	return r.findOrder(func(o order.Order) bool { return o.FulfillmentOrderID() != nil && *o.FulfillmentOrderID() == id })
}

func (r *reads) OrderByTrackingToken(_ context.Context, token string) (*order.Order, error) {
	return r.findOrder(func(o order.Order) bool { return o.TrackingToken() == token })
}

func (r *reads) TrackableOrdersByEmail(_ context.Context, email string, limit int32) ([]*order.Order, error) {
	var out []*order.Order
	err := r.view(func(st *state) error {
		for _, o := range st.orders {
			if strings.EqualFold(o.CustomerEmail(), email) && o.TrackingToken() != "" {
				o := o
				out = append(out, &o)
			}
		}
		return nil
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().After(out[j].CreatedAt()) })
	if len(out) > int(limit) {
		out = out[:limit]
	}
	return out, err
}

func (r *reads) DiscountByCode(_ context.Context, code string) (*discount.Code, error) {
	var found *discount.Code
	err := r.view(func(st *state) error {
		p, ok := st.discounts[discount.NormalizeCode(code)]
		if !ok {
			return notFound("discount code")
		}
		c, err := discount.NewCode(p)
		found = c
		return err
	})
	return found, err
}

func (r *reads) ProfileByEmail(_ context.Context, email string) (*shared.ProfileSnapshot, error) {
	var found *shared.ProfileSnapshot
	err := r.view(func(st *state) error {
		p, ok := st.profiles[strings.ToLower(strings.TrimSpace(email))]
		if !ok {
			return notFound("profile")
		}
		found = &p
		return nil
	})
	return found, err
}

func paramsOf(c *discount.Code) discount.Params {
	return discount.Params{
		ID:             c.ID(),
		Code:           c.Code(),
		Kind:           c.Kind(),
		Value:          c.Value(),
		MinOrderAmount: c.MinOrderAmount(),
		MaxUses:        c.MaxUses(),
		CurrentUses:    c.CurrentUses(),
		MembersOnly:    c.MembersOnly(),
		Active:         c.Active(),
		StartsAt:       c.StartsAt(),
		ExpiresAt:      c.ExpiresAt(),
		Description:    c.Description(),
	}
}
