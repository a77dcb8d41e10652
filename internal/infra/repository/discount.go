package repository

import (
	"context"

	"storefront/internal/infra"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type DiscountWriteQueries interface {
	IncrementDiscountUsage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
	CreateDiscountRedemption(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateDiscountRedemptionParams) error
}

type DiscountRepository struct {
	queries DiscountWriteQueries
	db      sqlc.DBTX
}

func NewDiscountRepository(queries DiscountWriteQueries, db sqlc.DBTX) *DiscountRepository {
	return &DiscountRepository{
		queries: queries,
		db:      db,
	}
}

// IncrementUsage is a single conditional UPDATE; concurrent callers can never push current_uses past max_uses.
func (r *DiscountRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, codeID uuid.UUID) (bool, error) {
	n, err := r.queries.IncrementDiscountUsage(ctx, tx, codeID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment discount usage", err)
	}
	return n == 1, nil
}

func (r *DiscountRepository) RecordRedemption(ctx context.Context, tx sqlc.DBTX, red shared.Redemption) error {
	err := r.queries.CreateDiscountRedemption(ctx, tx, sqlc.CreateDiscountRedemptionParams{
		DiscountCodeID: red.DiscountCodeID,
		UserID:         pgconv.UUIDPtrToPgtype(red.UserID),
		OrderID:        red.OrderID,
		RedeemedAt:     pgconv.TimeToPgtype(red.RedeemedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record discount redemption", err)
	}
	return nil
}
