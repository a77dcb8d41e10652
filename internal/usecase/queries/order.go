package queries

import (
	"context"
	"time"

	"storefront/internal/infra"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound = errs.Mark(errs.New("order not found"), errs.ErrOrderNotFound)
	ErrInvalidCursor = errs.New("invalid cursor")
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*OrderView, error)
	FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*OrderView, error)
}

type OrderQueries interface {
	GetMine(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*OrderView, error)
	ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error)
}

type orderQueriesImpl struct {
	repo OrderReadStore
}

func NewOrderQueries(repo OrderReadStore) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

// GetMine hides orders owned by someone else behind the same not-found error as missing ones.
func (q *orderQueriesImpl) GetMine(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*OrderView, error) {
	o, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if o.UserID == nil || *o.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return o, nil
}

func (q *orderQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*OrderView, *Cursor, error) {
	limit = ValidateLimit(limit)
	var rows []*OrderView
	var err error
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByUserFirstPage(ctx, userID, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByUserKeyset(ctx, userID, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
		rows = rows[:limit]
	}
	return rows, next, nil
}
