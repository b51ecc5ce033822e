package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"golang.org/x/sync/errgroup"

	"acctfilter/internal/config"
	apierrors "acctfilter/internal/errors"
	"acctfilter/internal/exporter"
	"acctfilter/internal/infrastructure"
	customMiddleware "acctfilter/internal/middleware"
	"acctfilter/internal/services"
	handlers "acctfilter/internal/transport/http"
)

// IndexPath serves the page listing every screening endpoint
const IndexPath = "/access_all_apis"

// BuildTime is set at link time with -ldflags "-X acctfilter/internal/app.BuildTime=..."
var BuildTime = time.Now().UTC().Format(time.RFC3339)

// Application represents the main application container
type Application struct {
	Config           *config.Config
	Paths            *config.Paths
	Router           *chi.Mux
	Server           *http.Server
	Logger           *slog.Logger
	OTelProviders    *infrastructure.OTelProviders
	Metrics          *infrastructure.ScreeningMetrics
	Exporter         *exporter.Exporter
	ScreeningService *services.ScreeningService
	HealthService    *services.HealthService
	ErrorHandler     *apierrors.ErrorHandler
	Validator        *customMiddleware.Validator

	logCloser io.Closer
}

// NewApplication wires every component from cfg. A nil cfg loads the
// configuration from the usual file locations and the environment.
func NewApplication(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load configuration: %w", err)
		}
		cfg = loaded
	}

	paths, err := cfg.ResolvePaths("")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}
	if err := paths.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to ensure directories: %w", err)
	}

	logger, closer, err := infrastructure.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("output_dir", paths.OutputDir),
		slog.String("logs_dir", paths.LogsDir))

	otelProviders, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry), logger)
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	a := &Application{
		Config:        cfg,
		Paths:         paths,
		Logger:        logger,
		OTelProviders: otelProviders,
		logCloser:     closer,
	}

	if err := a.initializeServices(); err != nil {
		closer.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	a.setupRouter()
	a.createServer()
	return a, nil
}

// initializeServices builds the service layer on top of the infrastructure
func (a *Application) initializeServices() error {
	metrics, err := infrastructure.NewScreeningMetrics(a.OTelProviders.Meter)
	if err != nil {
		return fmt.Errorf("failed to create screening metrics: %w", err)
	}
	a.Metrics = metrics

	a.Exporter = exporter.New(a.Paths, a.Logger)
	a.ScreeningService = services.NewScreeningService(a.Exporter, a.OTelProviders.Tracer, a.Metrics, a.Logger)
	a.HealthService = services.NewHealthService(config.AppVersion, BuildTime, a.Paths.OutputDir, a.Logger)
	a.ErrorHandler = apierrors.NewErrorHandler(a.Logger, a.Config.Logging.Development)
	a.Validator = customMiddleware.NewValidator(a.Logger)
	return nil
}

// setupRouter configures the HTTP router with all routes.
// Middleware order: RequestID → RealIP → errors/recovery → OTel → security → CORS → rate limit.
func (a *Application) setupRouter() {
	r := chi.NewRouter()

	r.Use(customMiddleware.RequestID)
	r.Use(customMiddleware.RealIP)
	r.Use(apierrors.NewErrorMiddleware(a.ErrorHandler, a.Logger).Handler)
	r.Use(customMiddleware.NewOTelMiddleware(a.OTelProviders, a.Metrics).Handler)
	r.Use(customMiddleware.SecurityHeaders)
	if a.Config.Security.EnableCORS {
		r.Use(customMiddleware.CORS(a.getCORSConfig()))
	}
	if a.Config.Security.RateLimit.Enabled {
		r.Use(customMiddleware.NewRateLimiter(
			a.Config.Security.RateLimit.RPS,
			a.Config.Security.RateLimit.Burst,
			a.Logger,
		).Handler)
	}

	r.NotFound(a.ErrorHandler.NotFound)
	r.MethodNotAllowed(a.ErrorHandler.MethodNotAllowed)

	index := handlers.ServeIndexPage(config.AppName, a.Logger)
	r.Get("/", http.RedirectHandler(IndexPath, http.StatusFound).ServeHTTP)
	r.Get(IndexPath, index)
	r.Get(IndexPath+"/", index)

	// Screening requests carry the upload, so they get their own deadline.
	r.Group(func(r chi.Router) {
		if a.Config.Server.RequestTimeout > 0 {
			r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.Logger))
		}
		screening := handlers.NewScreeningHandler(
			a.ScreeningService,
			a.Validator,
			a.ErrorHandler,
			a.Metrics,
			a.Config.Upload,
			a.Logger,
		)
		screening.Register(r)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Use(customMiddleware.Timeout(a.Config.Server.ReadTimeout, a.Logger))
		handlers.NewHealthHandler(a.HealthService, a.Logger).Register(r)
	})

	r.Handle("/metrics", handlers.NewMetricsHandler(a.OTelProviders.PrometheusHTTP, a.ErrorHandler))

	a.Router = r
}

// getCORSConfig builds the CORS policy from the security section
func (a *Application) getCORSConfig() customMiddleware.CORSConfig {
	return customMiddleware.CORSConfig{
		AllowedOrigins: a.Config.Security.AllowedOrigins,
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"X-Request-ID",
			"X-Requested-With",
		},
		MaxAge: 300,
		Logger: a.Logger,
	}
}

func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           a.Config.Server.Addr(),
		Handler:        a.Router,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(a.Logger.Handler(), slog.LevelWarn),
	}
}

// Run listens on the configured address and serves until ctx is done or
// the process receives SIGINT or SIGTERM
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", a.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.Server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully
func (a *Application) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.InfoContext(gctx, "Server listening",
			slog.String("address", ln.Addr().String()),
			slog.String("index", "http://"+ln.Addr().String()+IndexPath))
		if err := a.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("Shutdown requested")
		return a.Stop(context.Background())
	})

	return g.Wait()
}

// Stop gracefully stops the server and flushes telemetry
func (a *Application) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.Config.Server.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown error: %w", err))
	}
	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	a.Logger.Info("Application shutdown complete")
	if a.logCloser != nil {
		if err := a.logCloser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("log file close error: %w", err))
		}
	}
	return errors.Join(errs...)
}
