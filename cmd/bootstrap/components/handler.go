package components

import (
	"dealdesk/internal/handler"
	"dealdesk/internal/handler/api"
	"dealdesk/internal/handler/middleware"
	"dealdesk/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) config.CookieConfig {
			return cfg.Cookie
		},
		api.NewAuthHandler,
		api.NewDealHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
