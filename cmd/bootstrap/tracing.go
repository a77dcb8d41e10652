package bootstrap

import (
	"context"

	"storefront/internal/pkg/config"
	"storefront/internal/pkg/tracing"

	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Invoke(
		StartTracing,
	),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config) error {
	tp, err := tracing.NewProvider(context.Background(), cfg.Tracing)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	return nil
}
