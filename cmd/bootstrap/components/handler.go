package components

import (
	"log/slog"

	"issuance-engine/internal/handler"
	"issuance-engine/internal/handler/api"
	"issuance-engine/internal/handler/middleware"
	"issuance-engine/internal/pkg/config"
	"issuance-engine/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCouponHandler,
		api.NewOfferHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(registerRoutes),
)

type routeParams struct {
	fx.In

	Engine  *gin.Engine
	Config  config.Config
	Coupons *api.CouponHandler
	Offers  *api.OfferHandler
	Auth    *middleware.AuthMiddleware
	Metrics *metrics.Registry
	Logger  *slog.Logger
}

func registerRoutes(p routeParams) {
	handler.NewRouter(p.Engine, p.Config, handler.Handlers{
		Coupons: p.Coupons,
		Offers:  p.Offers,
		Auth:    p.Auth,
		Metrics: p.Metrics,
		Logger:  p.Logger,
	})
}
