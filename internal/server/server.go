// Package server exposes the exercise playground over HTTP: a chat proxy
// for the configured providers plus JSON endpoints for the text-analysis
// exercises. It is a development surface, not a hardened public API.
package server

import (
	"net/http"
	"sort"
	"strings"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/llm"
)

// AppVersion is overridden at build time via -ldflags.
var AppVersion = "v0.1.0"

const serviceName = "playground"

// Server routes playground requests to the provider clients it was
// constructed with. Clients are built once at startup; requests naming an
// unconfigured provider fail with a 400, never with a lazy construction.
type Server struct {
	router  *gin.Engine
	cfg     *config.Config
	logger  *zap.Logger
	clients map[llm.ProviderName]llm.Client
}

func New(cfg *config.Config, logger *zap.Logger, clients map[llm.ProviderName]llm.Client) *Server {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(logger, true))
	if cfg.Tracing.Enabled {
		engine.Use(otelgin.Middleware(serviceName))
	}
	if cfg.RateLimit.RequestsPerSecond > 0 {
		engine.Use(newRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger).middleware())
	}
	engine.Use(errorHandler(logger))

	s := &Server{
		router:  engine,
		cfg:     cfg,
		logger:  logger,
		clients: clients,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", s.health)
	s.router.GET("/version", s.version)

	v1 := s.router.Group("/v1")
	{
		v1.POST("/chat", s.chat)
		v1.POST("/sentiment", s.sentiment)
		v1.POST("/summarize", s.summarize)
	}
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run blocks serving on the configured port.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Server.Port
	s.logger.Info("playground listening",
		zap.String("addr", addr),
		zap.Strings("providers", s.providerNames()),
	)
	return s.router.Run(addr)
}

func (s *Server) providerNames() []string {
	names := make([]string, 0, len(s.clients))
	for name := range s.clients {
		names = append(names, string(name))
	}
	sort.Strings(names)
	return names
}

// resolve picks the client for the requested provider, defaulting to the
// configured one when the request leaves it blank.
func (s *Server) resolve(name string) (llm.Client, *Problem) {
	if name == "" {
		name = s.cfg.Providers.Default
	}
	if name == "" {
		name = string(llm.OpenAI)
	}
	client, ok := s.clients[llm.ProviderName(strings.ToLower(name))]
	if !ok {
		return nil, badRequest("provider " + name + " is not configured")
	}
	return client, nil
}
