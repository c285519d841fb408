package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dealdesk/internal/domain/user"
	"dealdesk/internal/handler/api"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, authHandler *api.AuthHandler, dealHandler *api.DealHandler, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, dealHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, authHandler *api.AuthHandler, dealHandler *api.DealHandler, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: authHandler.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		deals := apiGroup.Group("/deals")
		deals.Use(authMiddleware.RequireAuth())
		deals.Use(authMiddleware.RequireRoleAtLeast(user.RoleMerchant))
		{
			addRoutes(deals, []route{
				{Method: http.MethodPost, Path: "", Handler: dealHandler.CreateDeal},
				{Method: http.MethodGet, Path: "", Handler: dealHandler.ListDeals},
				{Method: http.MethodGet, Path: "/:id", Handler: dealHandler.GetDeal},
				{Method: http.MethodPut, Path: "/:id/schedule/preset", Handler: dealHandler.SelectPreset},
				{Method: http.MethodPut, Path: "/:id/schedule/time", Handler: dealHandler.SetWindowTime},
				{Method: http.MethodPost, Path: "/:id/schedule/windows", Handler: dealHandler.AddWindow},
				{Method: http.MethodPatch, Path: "/:id/schedule/windows/:windowId", Handler: dealHandler.UpdateWindow},
				{Method: http.MethodDelete, Path: "/:id/schedule/windows/:windowId", Handler: dealHandler.RemoveWindow},
				{Method: http.MethodPut, Path: "/:id/discount", Handler: dealHandler.SetGlobalDiscount},
				{Method: http.MethodPut, Path: "/:id/items/:itemId/override", Handler: dealHandler.SetItemOverride},
				{Method: http.MethodDelete, Path: "/:id/items/:itemId/override", Handler: dealHandler.ResetItemOverride},
				{Method: http.MethodGet, Path: "/:id/pricing", Handler: dealHandler.GetPricing},
				{Method: http.MethodPost, Path: "/:id/publish", Handler: dealHandler.PublishDeal},
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
