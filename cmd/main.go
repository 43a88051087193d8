package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-device-balance/internal/facades"
	"github.com/sbilibin2017/gw-device-balance/internal/handlers"
	"github.com/sbilibin2017/gw-device-balance/internal/logger"
	"github.com/sbilibin2017/gw-device-balance/internal/middlewares"
	"github.com/sbilibin2017/gw-device-balance/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Config is read from the environment after the config file is loaded.
type Config struct {
	AppHost    string        `env:"APP_HOST" envDefault:"localhost"`
	AppPort    string        `env:"APP_PORT" envDefault:"8080"`
	LogLevel   string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"https://dev-space.su/api/v1/a"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
}

// @title gw-device-balance API
// @version 1.0.0
// @description Operator gateway for device place balances
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file, when present, and
// parses them into Config. Variables already set in the environment win.
func parseConfig(path string) (Config, error) {
	_ = godotenv.Load(path)
	return env.ParseAs[Config]()
}

// newRouter wires services into the HTTP routes.
func newRouter(cfg Config, api *facades.DeviceAPIFacade) http.Handler {
	deviceService := services.NewDeviceService(api)
	balanceService := services.NewBalanceService(api, api)
	v := validator.New()

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/devices", handlers.NewGetDevicesHandler(deviceService))
	r.Get("/devices/{deviceID}", handlers.NewGetDeviceHandler(deviceService, v))
	r.Get("/devices/{deviceID}/players", handlers.NewGetPlayersHandler(deviceService, v))
	r.Post("/devices/{deviceID}/places/{placeID}/deposit", handlers.NewDepositHandler(balanceService, v))
	r.Post("/devices/{deviceID}/places/{placeID}/withdraw", handlers.NewWithdrawHandler(balanceService, v))
	r.Post("/amount/validate", handlers.NewValidateAmountHandler())
	r.Get("/time", handlers.NewGetTimeHandler(deviceService))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}

// run initializes the logger, the device API client and the HTTP server,
// and handles graceful shutdown.
func run(ctx context.Context, cfg Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	api := facades.NewDeviceAPIFacade(cfg.APIBaseURL, cfg.APITimeout)
	logger.Log.Infow("Device API configured", "base_url", cfg.APIBaseURL, "timeout", cfg.APITimeout)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, api),
	}

	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
