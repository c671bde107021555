package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"issuance-engine/internal/domain/actor"
	"issuance-engine/internal/handler/api"
	"issuance-engine/internal/handler/middleware"
	"issuance-engine/internal/pkg/config"
	"issuance-engine/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Coupons *api.CouponHandler
	Offers  *api.OfferHandler
	Auth    *middleware.AuthMiddleware
	Metrics *metrics.Registry
	Logger  *slog.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) {
	setupMiddleware(engine, cfg, h.Logger)
	setupRoutes(engine, cfg, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers) {
	engine.GET("/health", healthCheck)
	if cfg.Metrics.Enabled && h.Metrics != nil {
		engine.GET(cfg.Metrics.Path, gin.WrapH(h.Metrics.Handler()))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	viewer := []gin.HandlerFunc{h.Auth.RequireAuth(), h.Auth.RequireRoleAtLeast(actor.RoleViewer)}
	operator := []gin.HandlerFunc{h.Auth.RequireAuth(), h.Auth.RequireRoleAtLeast(actor.RoleOperator)}

	apiGroup := engine.Group("/api")
	{
		public := apiGroup.Group("/public")
		{
			addRoutes(public, []route{
				{Method: http.MethodPost, Path: "/coupons/:code/redeem", Handler: h.Coupons.Redeem},
				{Method: http.MethodGet, Path: "/offers/:id/open.gif", Handler: h.Offers.TrackOpen},
			})
		}

		coupons := apiGroup.Group("/coupons")
		{
			addRoutes(coupons, []route{
				{Method: http.MethodPost, Path: "/batches", Handler: h.Coupons.CreateBatch, Mw: operator},
				{Method: http.MethodPost, Path: "/single", Handler: h.Coupons.CreateSingle, Mw: operator},
				{Method: http.MethodPost, Path: "/:code/admin-redeem", Handler: h.Coupons.AdminRedeem, Mw: operator},
				{Method: http.MethodGet, Path: "", Handler: h.Coupons.List, Mw: viewer},
				{Method: http.MethodGet, Path: "/quota/:period", Handler: h.Coupons.Quota, Mw: viewer},
				{Method: http.MethodGet, Path: "/:code", Handler: h.Coupons.Get, Mw: viewer},
			})
		}

		offers := apiGroup.Group("/offers")
		{
			addRoutes(offers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Offers.Create, Mw: operator},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Offers.Update, Mw: operator},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Offers.UpdateStatus, Mw: operator},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Offers.Get, Mw: viewer},
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
