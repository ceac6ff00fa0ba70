package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apihttp "github.com/ip-solutions-lab/nexus-repository-api/internal/api/http"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/api/middleware"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/aggregation"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/packages"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/registry"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/domain/repository"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/config"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/logging"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/monitoring"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/infrastructure/tracing"
	"github.com/ip-solutions-lab/nexus-repository-api/internal/shared/types"
)

// APIPrefix is the second mount point of every route
const APIPrefix = "/api"

// Server wraps the HTTP server and dependencies
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	store      *registry.Store
	tracer     *tracing.Tracer
	logger     *logging.Logger
	config     *config.Config
	metrics    *monitoring.Metrics
}

// NewServer creates a new server instance. A nil logger is built from cfg.Logging.
func NewServer(cfg *config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		l, err := NewLogger(cfg.Logging)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		logger = l
	}

	logger.Info("Initializing Nexus Repository API",
		zap.String("addr", cfg.Server.Addr()),
		zap.String("environment", cfg.App.Environment),
		zap.String("nexus_url", cfg.App.NexusURL),
	)
	if cfg.App.IsProduction() && cfg.Logging.Development {
		logger.Warn("Development logging enabled in a production environment")
	}

	// Registry store and initial repositories
	store := registry.NewStore()
	seeder := registry.NewSeeder(store, cfg.App.NexusURL)

	var (
		seeded int
		err    error
	)
	if cfg.Seed.File != "" {
		seeded, err = seeder.SeedFile(cfg.Seed.File)
	} else {
		seeded, err = seeder.SeedDefaults()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to seed registry: %w", err)
	}
	logger.Info("Registry seeded",
		zap.Int("repositories", seeded),
		zap.String("source", seedSource(cfg.Seed.File)),
	)

	// Domain services
	repoService := repository.NewService(store)
	packageService := packages.NewService(store)
	aggregationService := aggregation.NewService(store)

	metrics := monitoring.NewMetrics()
	tracer := tracing.New("nexus-api", logger.Logger)

	handlerMetrics := apihttp.NewHandlerMetrics(metrics, store)
	handlerMetrics.SyncRegistry()

	handlers := apihttp.NewHandlers(repoService, packageService, aggregationService, handlerMetrics, cfg.App)

	// Create router
	if !cfg.Logging.Development && gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	// Collection routes are served with and without the trailing slash
	router.RedirectTrailingSlash = false

	router.Use(middleware.Recovery(logger))
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(middleware.AccessLog(logger.Named("http")))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		limiter, err := rateLimiter(cfg.RateLimit)
		if err != nil {
			return nil, err
		}
		logger.Info("Rate limiting enabled",
			zap.String("scope", cfg.RateLimit.Scope),
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		router.Use(limiter)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Detail: "Not Found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, types.ErrorResponse{Detail: "Method Not Allowed"})
	})

	// Register routes
	handlers.Register(router)
	handlers.Register(router.Group(APIPrefix))
	router.GET(APIPrefix, handlers.Root)

	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		httpServer: &http.Server{
			Addr:              cfg.Server.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
		store:   store,
		tracer:  tracer,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// NewLogger builds the application logger from logging configuration
func NewLogger(cfg config.LogConfig) (*logging.Logger, error) {
	lc := logging.DefaultConfig()
	if cfg.Development {
		lc = logging.DevelopmentConfig()
	}
	if cfg.Level != "" {
		lc.Level = cfg.Level
	}
	return logging.New(lc)
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Store returns the registry store backing the server
func (s *Server) Store() *registry.Store {
	return s.store
}

// Run starts the HTTP server and blocks until it stops.
// A clean Shutdown makes Run return nil.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.httpServer.Addr))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and releases resources
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to shut down HTTP server", zap.Error(err))
		err = fmt.Errorf("failed to shut down http server: %w", err)
	}

	s.tracer.Close()
	_ = s.logger.Sync()

	return err
}

// rateLimiter picks the per-client or global limiter for the configured scope
func rateLimiter(cfg config.RateLimitConfig) (gin.HandlerFunc, error) {
	rl := middleware.DefaultRateLimitConfig()
	rl.RequestsPerSecond = cfg.RequestsPerSecond
	rl.Burst = cfg.Burst
	switch cfg.Scope {
	case "", config.RateLimitScopeClient:
		return middleware.RateLimit(rl), nil
	case config.RateLimitScopeGlobal:
		return middleware.GlobalRateLimit(rl), nil
	default:
		return nil, fmt.Errorf("invalid rate limit scope %q", cfg.Scope)
	}
}

func seedSource(file string) string {
	if file == "" {
		return "defaults"
	}
	return file
}
