package converter

import (
	"storefront/internal/domain/discount"
	sqlc "storefront/internal/infra/sqlc/generated"
	"storefront/internal/pkg/pgconv"
)

func DiscountFromRow(row sqlc.DiscountCodes) (*discount.Code, error) {
	kind, err := discount.NewKind(row.DiscountType)
	if err != nil {
		return nil, err
	}
	return discount.NewCode(discount.Params{
		ID:             row.ID,
		Code:           row.Code,
		Kind:           kind,
		Value:          row.Value,
		MinOrderAmount: row.MinOrderAmount,
		MaxUses:        pgconv.Int32PtrFromPgtype(row.MaxUses),
		CurrentUses:    row.CurrentUses,
		MembersOnly:    row.MembersOnly,
		Active:         row.IsActive,
		StartsAt:       pgconv.TimePtrFromPgtype(row.StartsAt),
		ExpiresAt:      pgconv.TimePtrFromPgtype(row.ExpiresAt),
		Description:    row.Description,
	})
}
