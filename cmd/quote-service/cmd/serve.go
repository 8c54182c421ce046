package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/ipartes/quote-service/internal/api/handlers"
	"github.com/ipartes/quote-service/internal/api/middleware"
	"github.com/ipartes/quote-service/internal/config"
	"github.com/ipartes/quote-service/internal/metrics"
	"github.com/ipartes/quote-service/internal/quote"
	"github.com/ipartes/quote-service/internal/store"
	"github.com/ipartes/quote-service/pkg/extract"
	"github.com/ipartes/quote-service/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the quotation API server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	startCtx, cancelStart := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStart()

	st, err := newStore(startCtx, cfg)
	if err != nil {
		return fmt.Errorf("opening %s store: %w", cfg.Storage.Backend, err)
	}

	if err := st.Migrate(startCtx); err != nil {
		return fmt.Errorf("preparing %s store: %w", cfg.Storage.Backend, err)
	}
	if n, err := st.CountSuppliers(startCtx); err == nil {
		metrics.SupplierDirectorySize.Set(float64(n))
	}
	log.Info("store ready", "backend", cfg.Storage.Backend)

	backend := extract.NewOpenAIBackend(
		cfg.LLM.Endpoint,
		cfg.LLM.Model,
		extract.WithHTTPClient(&http.Client{Timeout: cfg.LLM.Timeout}),
		extract.WithRateLimit(cfg.LLM.RateLimit.PerSecond, cfg.LLM.RateLimit.Burst),
	)

	svc := quote.NewService(st, backend,
		quote.WithLogger(log),
		quote.WithGatewayTimeout(cfg.LLM.Timeout),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	healthHandler := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/readyz", healthHandler.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("iPartes Quote Service", Version))
	handlers.RegisterQuoteRoutes(api, handlers.NewQuoteHandler(svc))
	handlers.RegisterSupplierRoutes(e, handlers.NewSupplierHandler(st))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr, "model", cfg.LLM.Model)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		log.Warn("closing store", "err", err)
	}

	log.Info("server stopped")
	return nil
}

// newStore builds the supplier directory backend selected in the config.
func newStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.Storage.Backend {
	case "postgres":
		return store.NewPostgresStore(ctx, cfg.Storage.Postgres.DSN())
	case "mongo":
		return store.NewMongoStore(ctx, cfg.Storage.Mongo.URI, cfg.Storage.Mongo.Database)
	case "file":
		return store.NewFileStore(cfg.Storage.File.Path)
	default:
		return store.NewMemoryStore(), nil
	}
}
