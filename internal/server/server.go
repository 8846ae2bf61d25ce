// Package server exposes the search engine over HTTP and WebSocket.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Options configures a Server
type Options struct {
	// AllowOrigin is sent as Access-Control-Allow-Origin. Empty means "*".
	AllowOrigin string
	// MaxSize caps the side length of requested grids.
	MaxSize int
	// MaxDelay caps the per-step delay a stream client may ask for.
	MaxDelay time.Duration
	// Timeout bounds a single search run.
	Timeout time.Duration
	Logger  *slog.Logger
}

// DefaultOptions returns the options used by the serve command
func DefaultOptions() Options {
	return Options{
		AllowOrigin: "*",
		MaxSize:     100,
		MaxDelay:    time.Second,
		Timeout:     30 * time.Second,
	}
}

// Server holds the HTTP handlers
type Server struct {
	opts     Options
	log      *slog.Logger
	upgrader websocket.Upgrader
}

// New creates a Server. Zero option fields take their defaults.
func New(opts Options) *Server {
	def := DefaultOptions()
	if opts.AllowOrigin == "" {
		opts.AllowOrigin = def.AllowOrigin
	}
	if opts.MaxSize <= 0 {
		opts.MaxSize = def.MaxSize
	}
	if opts.MaxDelay <= 0 {
		opts.MaxDelay = def.MaxDelay
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Server{
		opts: opts,
		log:  log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
	}
}

// Router builds the gin engine with every route registered
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger(), CORSMiddleware(s.opts.AllowOrigin))

	r.GET("/healthz", s.handleHealth)

	api := r.Group("/api")
	api.GET("/algorithms", s.handleAlgorithms)
	api.POST("/search", s.handleSearch)
	api.GET("/search/stream", s.handleStream)

	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("Server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
