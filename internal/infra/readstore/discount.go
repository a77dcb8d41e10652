package readstore

import (
	"context"

	"storefront/internal/domain/discount"
	"storefront/internal/infra"
	"storefront/internal/infra/repository/converter"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"
)

type DiscountReadQueries interface {
	GetDiscountCodeByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.DiscountCodes, error)
}

type DiscountReadStore struct {
	queries DiscountReadQueries
	db      sqlc.DBTX
}

func NewDiscountReadStore(queries DiscountReadQueries, db sqlc.DBTX) *DiscountReadStore {
	return &DiscountReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByCode expects an already normalized code.
func (r *DiscountReadStore) FindByCode(ctx context.Context, code string) (*queries.DiscountCodeView, error) {
	row, err := r.get(ctx, code)
	if err != nil {
		return nil, err
	}
	return &queries.DiscountCodeView{
		ID:             row.ID,
		Code:           row.Code,
		Kind:           row.DiscountType,
		Value:          row.Value,
		MinOrderAmount: row.MinOrderAmount,
		MaxUses:        pgconv.Int32PtrFromPgtype(row.MaxUses),
		CurrentUses:    row.CurrentUses,
		MembersOnly:    row.MembersOnly,
		IsActive:       row.IsActive,
		StartsAt:       pgconv.TimePtrFromPgtype(row.StartsAt),
		ExpiresAt:      pgconv.TimePtrFromPgtype(row.ExpiresAt),
		Description:    row.Description,
	}, nil
}

func (r *DiscountReadStore) LoadByCode(ctx context.Context, code string) (*discount.Code, error) {
	row, err := r.get(ctx, discount.NormalizeCode(code))
	if err != nil {
		return nil, err
	}
	dc, err := converter.DiscountFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored discount code is corrupt", err, infra.KindConstraintViolated)
	}
	return dc, nil
}

func (r *DiscountReadStore) get(ctx context.Context, code string) (sqlc.DiscountCodes, error) {
	row, err := r.queries.GetDiscountCodeByCode(ctx, r.db, code)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return sqlc.DiscountCodes{}, infra.WrapRepoErr("discount code not found", err, infra.KindNotFound)
		}
		return sqlc.DiscountCodes{}, infra.WrapRepoErr("failed to get discount code", err)
	}
	return row, nil
}
