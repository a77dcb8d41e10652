package bootstrap

import (
	"context"

	"storefront/internal/infra/broker"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewEventPublisher,
	),
)

func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) commands.EventPublisher {
	publisher := broker.NewPublisher(cfg.Kafka)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})
	return publisher
}
