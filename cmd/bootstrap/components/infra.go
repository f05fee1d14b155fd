package components

import (
	"context"
	"log/slog"
	"time"

	"band-booking/internal/infra/cache"
	"band-booking/internal/infra/calendar/gcal"
	"band-booking/internal/infra/calendar/memory"
	"band-booking/internal/infra/calendar/postgres"
	"band-booking/internal/infra/db"
	"band-booking/internal/infra/idempotency"
	"band-booking/internal/infra/notify"
	"band-booking/internal/infra/places"
	"band-booking/internal/pkg/clock"
	"band-booking/internal/pkg/config"
	"band-booking/internal/usecase/commands"
	"band-booking/internal/usecase/queries"
	"band-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const startupTimeout = 10 * time.Second

var InfraModule = fx.Module("infra",
	fx.Provide(
		NewRedisClient,
		NewCalendarGateway,
		NewIdempotencyStore,
		NewNotifier,
		NewPlacesClient,
	),
)

type CalendarParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    config.Config
	Location  *time.Location
	Logger    *slog.Logger
	// Supplied by tests; opened from config otherwise.
	Pool *pgxpool.Pool `optional:"true"`
}

func NewCalendarGateway(p CalendarParams) (shared.CalendarGateway, error) {
	cfg := p.Config
	switch cfg.Calendar.Backend {
	case config.CalendarBackendPostgres:
		pool := p.Pool
		if pool == nil {
			var err error
			if pool, err = openPool(p.Lifecycle, cfg.DB); err != nil {
				return nil, err
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		if err := postgres.Migrate(ctx, pool); err != nil {
			return nil, err
		}
		return postgres.NewGateway(pool, cfg.Booking.Buffer, cfg.Calendar.RequestTimeout, p.Logger), nil

	case config.CalendarBackendGoogle:
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		svc, err := gcal.NewService(ctx, cfg.Calendar)
		if err != nil {
			return nil, err
		}
		return gcal.NewGateway(svc, cfg.Calendar.CalendarID, p.Location, cfg.Calendar.RequestTimeout, p.Logger), nil

	default:
		p.Logger.Warn("using in-memory calendar; bookings are lost on restart")
		return memory.NewGateway(), nil
	}
}

func openPool(lc fx.Lifecycle, cfg config.DBConfig) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})
	return pool, nil
}

func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) *redis.Client {
	rdb := cache.NewRedisClient(cfg.Redis, logger)
	if rdb != nil {
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return rdb.Close()
			},
		})
	}
	return rdb
}

func NewIdempotencyStore(rdb *redis.Client, cfg config.Config, clk clock.Clock, logger *slog.Logger) commands.IdempotencyStore {
	if rdb == nil {
		return idempotency.NewLocalStore(cfg.Redis.IdempotencyTTL, clk)
	}
	return idempotency.NewRedisStore(rdb, cfg.Redis.IdempotencyTTL, logger)
}

func NewNotifier(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) commands.Notifier {
	switch cfg.Notify.Backend {
	case config.NotifyBackendAMQP:
		n := notify.NewAMQPNotifier(cfg.Notify, logger)
		lc.Append(fx.Hook{OnStop: func(_ context.Context) error { return n.Close() }})
		return n
	case config.NotifyBackendKafka:
		n := notify.NewKafkaNotifier(cfg.Notify, logger)
		lc.Append(fx.Hook{OnStop: func(_ context.Context) error { return n.Close() }})
		return n
	default:
		return notify.NewLogNotifier(logger)
	}
}

// NewPlacesClient returns a nil client when no API key is configured.
func NewPlacesClient(cfg config.Config, logger *slog.Logger) queries.PlacesClient {
	if cfg.Places.APIKey == "" {
		logger.Warn("GOOGLE_PLACES_API_KEY not configured; venue lookup disabled")
		return nil
	}
	return places.NewClient(cfg.Places, logger)
}
