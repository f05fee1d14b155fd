package components

import (
	"log/slog"

	"band-booking/internal/handler"
	"band-booking/internal/handler/api"
	"band-booking/internal/handler/middleware"
	"band-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewPlacesHandler,
		handler.NewHandlers,
		func(cfg config.Config, rdb *redis.Client, logger *slog.Logger) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, rdb, logger)
		},
	),
	fx.Invoke(handler.NewRouter),
)
