// Package app arma la aplicación completa: config -> pool -> repos ->
// servicios -> controllers -> router.
package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dropDatabas3/workhub/internal/cache"
	"github.com/dropDatabas3/workhub/internal/config"
	httpx "github.com/dropDatabas3/workhub/internal/http"
	socialctrl "github.com/dropDatabas3/workhub/internal/http/controllers/social"
	wsctrl "github.com/dropDatabas3/workhub/internal/http/controllers/workspace"
	mw "github.com/dropDatabas3/workhub/internal/http/middlewares"
	"github.com/dropDatabas3/workhub/internal/http/router"
	socialsvc "github.com/dropDatabas3/workhub/internal/http/services/social"
	wssvc "github.com/dropDatabas3/workhub/internal/http/services/workspace"
	"github.com/dropDatabas3/workhub/internal/observability/logger"
	"github.com/dropDatabas3/workhub/internal/rate"
	"github.com/dropDatabas3/workhub/internal/store/pg"
)

// App es la aplicación cableada, lista para servir.
type App struct {
	Handler http.Handler

	pool  *pgxpool.Pool
	cache cache.Client
	rdb   *redis.Client
}

// New arma la aplicación a partir de la configuración.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	l := logger.L()

	if cfg.Storage.DSN == "" {
		return nil, fmt.Errorf("app: storage.dsn is required")
	}
	pool, err := pg.NewPool(ctx, pg.PoolConfig{
		DSN:             cfg.Storage.DSN,
		MaxConns:        cfg.Storage.Postgres.MaxConns,
		MinConns:        cfg.Storage.Postgres.MinConns,
		ConnMaxLifetime: config.Duration(cfg.Storage.Postgres.ConnMaxLifetime, 0),
	})
	if err != nil {
		return nil, fmt.Errorf("app: postgres: %w", err)
	}

	cacheClient, err := cache.New(cache.Config{
		Driver:   cfg.Cache.Kind,
		Addr:     cfg.Cache.Redis.Addr,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
		Prefix:   cfg.Cache.Redis.Prefix,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("app: cache: %w", err)
	}

	a := &App{pool: pool, cache: cacheClient}

	// Repos y servicios
	accounts := pg.NewAccountRepo(pool)
	tenants := pg.NewTenantRepo(pool)
	datasets := pg.NewDatasetRepo(pool)
	apps := pg.NewAppRepo(pool)

	lookupSvc := wssvc.NewLookupService(accounts, tenants, datasets, apps, cacheClient)
	registry := socialsvc.NewRegistry(cfg)

	lookupCtrl := wsctrl.NewLookupController(lookupSvc)
	socialCtrl := socialctrl.NewController(registry)

	// Rate limiter según backend de cache configurado
	var rateLimit mw.Middleware
	if cfg.Rate.Enabled {
		rcfg := rate.Config{
			Max:    int64(cfg.Rate.MaxRequests),
			Window: config.Duration(cfg.Rate.Window, 0),
		}
		var limiter rate.Limiter
		if cfg.Cache.Kind == "redis" {
			a.rdb = redis.NewClient(&redis.Options{
				Addr:     cfg.Cache.Redis.Addr,
				Password: cfg.Cache.Redis.Password,
				DB:       cfg.Cache.Redis.DB,
			})
			limiter = rate.NewRedisLimiter(a.rdb, "", rcfg)
		} else {
			limiter = rate.NewMemoryLimiter(rcfg)
		}
		rateLimit = mw.RateLimit(limiter)
	}

	var auth mw.Middleware
	if cfg.Auth.BearerSecret != "" {
		auth = mw.BearerAuth(cfg.Auth.BearerSecret, cfg.Auth.Issuer)
	}

	metricsHandler, err := httpx.RegisterMetrics(httpx.MetricsConfig{
		Pool: func() *pgxpool.Pool { return a.pool },
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("app: metrics: %w", err)
	}

	routes := router.New(router.Deps{
		Lookup:    lookupCtrl,
		Social:    socialCtrl,
		Auth:      auth,
		RateLimit: rateLimit,
		Metrics:   metricsHandler,
		Ready: func(r *http.Request) error {
			return a.pool.Ping(r.Context())
		},
	})

	// Cadena global: el primero de la lista es el más externo
	a.Handler = mw.Chain(httpx.WithMetrics(routes),
		mw.Recover,
		mw.WithRequestID,
		mw.Logging,
		mw.SecurityHeaders,
		mw.CORS(cfg.Server.CORSAllowedOrigins),
	)

	l.Info("aplicación armada",
		logger.String("cache", cfg.Cache.Kind),
		logger.Bool("rate_enabled", cfg.Rate.Enabled),
		logger.Bool("auth_enabled", cfg.Auth.BearerSecret != ""),
		logger.Any("providers", registry.Names()),
	)

	return a, nil
}

// Close libera pool, cache y cliente redis del limiter.
func (a *App) Close() {
	if a.pool != nil {
		a.pool.Close()
	}
	if a.cache != nil {
		_ = a.cache.Close()
	}
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
}
