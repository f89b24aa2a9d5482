package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"makers-assistant/internal/catalog"
	"makers-assistant/internal/chat"
	"makers-assistant/internal/common/config"
	"makers-assistant/internal/common/logger"
	"makers-assistant/internal/common/observability"
	"makers-assistant/internal/recommend"
)

// Server exposes the assistant over HTTP.
type Server struct {
	engine  *chat.Engine
	scorer  *recommend.Scorer
	catalog catalog.Provider
	obs     *observability.Observability
	logger  logger.Logger
	http    *http.Server
}

func New(cfg config.ServerConfig, engine *chat.Engine, scorer *recommend.Scorer, provider catalog.Provider, obs *observability.Observability, log logger.Logger) *Server {
	s := &Server{
		engine:  engine,
		scorer:  scorer,
		catalog: provider,
		obs:     obs,
		logger:  log.WithFields(map[string]interface{}{"component": "http-server"}),
	}

	router := s.buildRouter()

	s.http = &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	}

	return s
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", s.handleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.POST("/chat", s.handleChat)
		v1.POST("/recommendations", s.handleRecommendations)
		v1.GET("/products", s.handleListProducts)
		v1.GET("/products/stats", s.handleProductStats)
		v1.GET("/products/search", s.handleSearchProducts)
		v1.GET("/products/:id", s.handleGetProduct)
	}

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request handled", map[string]interface{}{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
	}
}

// Run starts serving and blocks until the listener fails or is closed.
func (s *Server) Run() error {
	s.logger.Info("http server listening", map[string]interface{}{
		"addr": s.http.Addr,
	})
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the gin handler for tests.
func (s *Server) Router() http.Handler {
	return s.http.Handler
}
