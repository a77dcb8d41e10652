package components

import (
	"storefront/internal/handler"
	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWebhookHandler,
		api.NewTrackingHandler,
		api.NewDiscountHandler,
		api.NewOrderHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Webhook  *api.WebhookHandler
	Tracking *api.TrackingHandler
	Discount *api.DiscountHandler
	Order    *api.OrderHandler
	Admin    *api.AdminHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Webhook:  p.Webhook,
		Tracking: p.Tracking,
		Discount: p.Discount,
		Order:    p.Order,
		Admin:    p.Admin,
	}
}
