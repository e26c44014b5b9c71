package app

import (
	"context"
	"net/http"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/app"
	"github.com/go-faster/sdk/zctx"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Karan1317/nexchain/internal/catalog"
	"github.com/Karan1317/nexchain/internal/dashboard"
	"github.com/Karan1317/nexchain/internal/handler"
	"github.com/Karan1317/nexchain/internal/orders"
	"github.com/Karan1317/nexchain/internal/profile"
	"github.com/Karan1317/nexchain/internal/session"
	"github.com/Karan1317/nexchain/pkg/health"
	"github.com/Karan1317/nexchain/pkg/httpmiddleware"
)

// Run creates all dependencies, starts the HTTP server, and handles graceful
// shutdown. It is the single wiring point for the application.
func Run(ctx context.Context, lg *zap.Logger, m *app.Telemetry, cfg *Config) error {
	lg.Info("Initializing", zap.String("addr", cfg.Addr))

	seed, err := catalog.Seed()
	if err != nil {
		return errors.Wrap(err, "load catalog seed")
	}

	// Session store: every client gets its own catalog, cart, and filter
	// state, seeded identically.
	store := session.NewStore(session.Config{
		Seed:            seed,
		NotificationTTL: cfg.NotificationTTL,
	})
	store.StartCleanup(ctx, cfg.Session.CleanupInterval, cfg.Session.MaxIdle)

	// Dashboard stock alerts read the baseline catalog, not any one session.
	dashSvc := dashboard.NewService(catalog.New(seed...))
	orderSvc := orders.NewService(orders.Seed())

	healthSvc := health.New()
	healthSvc.AddLivenessCheck("goroutines", time.Second, health.GoroutineCountCheck(10000))
	healthSvc.SetReady(true)

	h, err := handler.New(
		handler.Config{
			APIKeyPepper: cfg.APIKeyPepper,
			APIKeyHashes: cfg.APIKeyHashes,
		},
		store, orderSvc, dashSvc, profile.Default(),
		m.MeterProvider().Meter("nexchain"),
	)
	if err != nil {
		return errors.Wrap(err, "create handler")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/livez", healthSvc.LiveEndpoint)
	mux.HandleFunc("/readyz", healthSvc.ReadyEndpoint)
	h.Routes(mux)

	instrumented := otelhttp.NewHandler(mux, "nexchain-api",
		otelhttp.WithTracerProvider(m.TracerProvider()),
		otelhttp.WithMeterProvider(m.MeterProvider()),
	)

	server := &http.Server{
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20,
		Addr:              cfg.Addr,
		Handler: httpmiddleware.Wrap(instrumented,
			httpmiddleware.Recovery(),
			httpmiddleware.CORS(httpmiddleware.CORSConfig{
				AllowOrigins:     cfg.CORS.Origins,
				AllowHeaders:     []string{"Content-Type", "X-API-Key", handler.SessionHeader},
				AllowCredentials: cfg.CORS.AllowCredentials,
				MaxAge:           86400,
			}),
			httpmiddleware.RateLimitWithCleanup(ctx, httpmiddleware.RateLimitConfig{
				Max:    cfg.RateLimit.Max,
				Window: cfg.RateLimit.Window,
			}),
			httpmiddleware.RequestID(),
			httpmiddleware.InjectLogger(zctx.From(ctx)),
			httpmiddleware.LogRequests(),
		),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("Server listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "server")
		}
		return nil
	})
	g.Go(func() error {
		// Drain: flip readiness off, give load balancers a moment to notice,
		// then stop accepting connections.
		<-ctx.Done()
		healthSvc.SetReady(false)
		lg.Info("Readiness set to false, draining", zap.Duration("delay", cfg.Graceful.ReadinessDelay))
		time.Sleep(cfg.Graceful.ReadinessDelay)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Graceful.ShutdownTimeout)
		defer cancel()

		lg.Info("Shutting down server", zap.Duration("timeout", cfg.Graceful.ShutdownTimeout))
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
