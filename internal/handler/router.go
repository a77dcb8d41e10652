package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"storefront/internal/handler/api"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Webhook  *api.WebhookHandler
	Tracking *api.TrackingHandler
	Discount *api.DiscountHandler
	Order    *api.OrderHandler
	Admin    *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// signature-authenticated, never bearer
		addRoutes(apiGroup.Group("/webhooks"), []route{
			{Method: http.MethodPost, Path: "/stripe", Handler: h.Webhook.Stripe},
			{Method: http.MethodPost, Path: "/printful", Handler: h.Webhook.Printful},
		})

		optional := authMiddleware.OptionalAuth()
		required := authMiddleware.RequireAuth()

		addRoutes(apiGroup.Group("/discounts"), []route{
			{Method: http.MethodPost, Path: "/validate", Handler: h.Discount.Validate, Mw: []gin.HandlerFunc{optional}},
		})

		addRoutes(apiGroup.Group("/orders"), []route{
			{Method: http.MethodPost, Path: "/track", Handler: h.Tracking.Track, Mw: []gin.HandlerFunc{optional}},
			{Method: http.MethodPost, Path: "/track/recover", Handler: h.Tracking.Recover},
			{Method: http.MethodGet, Path: "", Handler: h.Order.List, Mw: []gin.HandlerFunc{required}},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get, Mw: []gin.HandlerFunc{required}},
			{Method: http.MethodPost, Path: "/claim", Handler: h.Order.Claim, Mw: []gin.HandlerFunc{required}},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(required, authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodPost, Path: "/orders/:id/fulfillment/retry", Handler: h.Admin.RetryFulfillment},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
