package queries

import (
	"context"
	"log/slog"

	"storefront/internal/domain/discount"
	"storefront/internal/infra"
	"storefront/internal/pkg/clock"
	"storefront/internal/pkg/metrics"
)

type DiscountReadStore interface {
	FindByCode(ctx context.Context, code string) (*DiscountCodeView, error)
}

type DiscountQueries interface {
	// Validate never mutates state. Usage counters are not exposed in the result.
	Validate(ctx context.Context, code string, subtotal int64, authenticated bool) (*DiscountValidation, error)
}

type discountQueriesImpl struct {
	repo  DiscountReadStore
	clock clock.Clock
}

func NewDiscountQueries(repo DiscountReadStore, clk clock.Clock) DiscountQueries {
	return &discountQueriesImpl{repo: repo, clock: clk}
}

func (q *discountQueriesImpl) Validate(ctx context.Context, code string, subtotal int64, authenticated bool) (*DiscountValidation, error) {
	normalized := discount.NormalizeCode(code)
	if normalized == "" {
		return invalidValidation(discount.Invalid()), nil
	}

	view, err := q.repo.FindByCode(ctx, normalized)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			metrics.DiscountValidationsTotal.WithLabelValues(string(discount.ReasonInvalid)).Inc()
			return invalidValidation(discount.Invalid()), nil
		}
		return nil, err
	}

	dc, err := toDiscountCode(view)
	if err != nil {
		slog.Error("stored discount code is not usable", "code", normalized, "error", err.Error())
		return invalidValidation(discount.Invalid()), nil
	}

	eval := dc.Evaluate(subtotal, authenticated, q.clock.Now())
	if !eval.Valid {
		metrics.DiscountValidationsTotal.WithLabelValues(string(eval.Reason)).Inc()
		return invalidValidation(eval), nil
	}

	metrics.DiscountValidationsTotal.WithLabelValues("valid").Inc()
	return &DiscountValidation{
		Valid:          true,
		Code:           dc.Code(),
		Kind:           dc.Kind().String(),
		Value:          dc.Value(),
		DiscountAmount: eval.DiscountAmount,
		Description:    dc.Description(),
	}, nil
}

func invalidValidation(eval discount.Evaluation) *DiscountValidation {
	return &DiscountValidation{
		Valid:   false,
		Message: eval.Message,
		Reason:  string(eval.Reason),
	}
}

func toDiscountCode(v *DiscountCodeView) (*discount.Code, error) {
	kind, err := discount.NewKind(v.Kind)
	if err != nil {
		return nil, err
	}
	return discount.NewCode(discount.Params{
		ID:             v.ID,
		Code:           v.Code,
		Kind:           kind,
		Value:          v.Value,
		MinOrderAmount: v.MinOrderAmount,
		MaxUses:        v.MaxUses,
		CurrentUses:    v.CurrentUses,
		MembersOnly:    v.MembersOnly,
		Active:         v.IsActive,
		StartsAt:       v.StartsAt,
		ExpiresAt:      v.ExpiresAt,
		Description:    v.Description,
	})
}
