package components

import (
	"storefront/internal/domain/catalog"
	infracatalog "storefront/internal/infra/catalog"
	"storefront/internal/infra/challenge"
	"storefront/internal/infra/email"
	"storefront/internal/infra/fulfillment"
	"storefront/internal/infra/payment"
	"storefront/internal/pkg/config"
	"storefront/internal/usecase/commands"
	"storefront/internal/usecase/notification"

	"go.uber.org/fx"
)

// GatewayModule provides the clients for third-party services and the static catalog.
var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewCatalog,
			fx.As(new(catalog.Service)),
		),
		// Payment
		fx.Annotate(
			NewPaymentParser,
			fx.As(new(commands.PaymentEventParser)),
		),
		// Fulfillment
		fx.Annotate(
			NewFulfillmentClient,
			fx.As(new(commands.FulfillmentClient)),
		),
		fx.Annotate(
			NewFulfillmentWebhookParser,
			fx.As(new(commands.FulfillmentEventParser)),
		),
		// Email
		fx.Annotate(
			NewMailer,
			fx.As(new(notification.Mailer)),
		),
		fx.Annotate(
			NewNotifier,
			fx.As(new(commands.Notifier)),
		),
		// Challenge
		fx.Annotate(
			NewChallengeVerifier,
			fx.As(new(commands.ChallengeVerifier)),
		),
	),
)

func NewCatalog(cfg config.Config) (*catalog.Static, error) {
	return infracatalog.LoadFile(cfg.Catalog.Path)
}

func NewPaymentParser(cfg config.Config) *payment.Parser {
	return payment.NewParser(cfg.Stripe)
}

func NewFulfillmentClient(cfg config.Config) *fulfillment.Client {
	return fulfillment.NewClient(cfg.Printful)
}

func NewFulfillmentWebhookParser(cfg config.Config) *fulfillment.WebhookParser {
	return fulfillment.NewWebhookParser(cfg.Printful)
}

func NewMailer(cfg config.Config) (*email.Mailer, error) {
	return email.NewMailer(cfg.Email)
}

func NewNotifier(mailer notification.Mailer, cfg config.Config) (*notification.Notifier, error) {
	return notification.NewNotifier(mailer, cfg.Email.SiteURL)
}

func NewChallengeVerifier(cfg config.Config, guard challenge.ReplayGuard) *challenge.Verifier {
	return challenge.NewVerifier(cfg.Turnstile, guard)
}
