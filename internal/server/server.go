package server

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/unifiedmath/server/internal/api/middleware"
	"github.com/unifiedmath/server/internal/config"
	apihttp "github.com/unifiedmath/server/internal/http"
	"github.com/unifiedmath/server/internal/logging"
	mathprovider "github.com/unifiedmath/server/internal/providers/math"
	"github.com/unifiedmath/server/internal/service"
)

// Server wraps the HTTP router and its dependencies
type Server struct {
	router   *gin.Engine
	registry *service.Registry
	cfg      *config.Config
	log      *logging.Logger
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, log *logging.Logger) (*Server, error) {
	// Populate the operation catalog. It is immutable from here on.
	registry := service.NewRegistry()
	if err := registry.Register(mathprovider.NewProvider()); err != nil {
		return nil, err
	}

	stats := registry.Stats()
	log.Info("operation catalog populated",
		zap.Any("total_services", stats["total_services"]),
		zap.Any("total_tools", stats["total_tools"]),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORS.AllowOrigins))
	router.Use(middleware.Metrics())
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	handlers := apihttp.NewHandlers(registry, log)

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Catalog advertisement and invocation
	router.GET("/services", handlers.ListServices)
	router.POST("/services/discover", handlers.DiscoverServices)
	router.POST("/services/execute", handlers.ExecuteService)

	return &Server{
		router:   router,
		registry: registry,
		cfg:      cfg,
		log:      log,
	}, nil
}

// Run starts the server
func (s *Server) Run() error {
	addr := s.cfg.Server.Host + ":" + s.cfg.Server.Port
	s.log.Info("starting math tool service", zap.String("addr", addr))
	return s.router.Run(addr)
}

// Close cleans up resources
func (s *Server) Close() error {
	return s.log.Sync()
}
