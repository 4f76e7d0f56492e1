// Package httpapi is the inbound HTTP adapter: routing, session
// authentication, request parsing, and response assembly for the JSON API.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/log"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Host string
	Port int
}

// Address returns the server's listen address.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Server wraps the HTTP server and its router.
type Server struct {
	config     ServerConfig
	httpServer *http.Server
	logger     log.Logger
}

// NewServer creates a new HTTP server with all routes registered.
func NewServer(
	config ServerConfig,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	logger log.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(Recovery(logger))
	engine.Use(RequestLogger(logger))

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := engine.Group("/api", authMiddleware)
	api.GET("/user", handler.GetUserInfo)
	api.GET("/stats", handler.GetWikiStats)
	api.GET("/search", handler.SearchArticles)

	return &Server{
		config: config,
		httpServer: &http.Server{
			Addr:              config.Address(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Run starts serving and blocks until the server stops.
func (s *Server) Run() error {
	s.logger.Info("http server starting",
		log.String("address", s.config.Address()),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("http server stopping")
	return s.httpServer.Shutdown(ctx)
}
