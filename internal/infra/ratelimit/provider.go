package ratelimit

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"portfolio/config"
	"portfolio/internal/domain/service"
	"portfolio/internal/errors"
)

type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// New builds the limiter selected by rateLimit.store.
func New(params Params) (service.RateLimiter, error) {
	cfg := params.Config.RateLimit

	switch cfg.Store {
	case config.RateStoreMemory, "":
		params.Logger.Info("Rate limiter using in-memory windows",
			slog.Duration("window", cfg.Window),
			slog.Int("capacity", cfg.Capacity),
		)

		return NewMemoryLimiter(cfg.Window, cfg.Capacity), nil

	case config.RateStoreRedis:
		if params.Config.Redis == nil || params.Config.Redis.Addr == "" {
			return nil, errors.New("redis address is required for the redis rate limit store")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     params.Config.Redis.Addr,
			Password: params.Config.Redis.Password,
			DB:       params.Config.Redis.DB,
		})

		params.Lifecycle.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}
				params.Logger.Info("Rate limiter using redis windows",
					slog.String("addr", params.Config.Redis.Addr),
					slog.Duration("window", cfg.Window),
					slog.Int("capacity", cfg.Capacity),
				)

				return nil
			},
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})

		return NewRedisLimiter(client, cfg.KeyPrefix, cfg.Window, cfg.Capacity), nil

	default:
		return nil, errors.Errorf("unknown rate limit store %q", cfg.Store)
	}
}
