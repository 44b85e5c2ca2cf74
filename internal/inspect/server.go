// Package inspect serves a small read-mostly HTTP API over the running
// application: the live dial selection, the evaluation list and metrics.
package inspect

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/phanxgames/dualdial/internal/evaluation"
	"github.com/phanxgames/dualdial/internal/metrics"
	"github.com/phanxgames/dualdial/pkg/logger"
)

const (
	defaultListLimit  = 50
	readHeaderTimeout = 5 * time.Second
)

// Snapshot is the dial state exposed on GET /selection.
type Snapshot struct {
	Outer         string  `json:"outer"`
	Inner         string  `json:"inner"`
	OuterRotation float64 `json:"outerRotation"`
	InnerRotation float64 `json:"innerRotation"`
	ActiveRing    string  `json:"activeRing"`
}

// SelectionSource provides a consistent copy of the dial state. It is called
// from HTTP goroutines and must be safe for concurrent use.
type SelectionSource interface {
	Snapshot() Snapshot
}

// Server is the inspector HTTP server.
type Server struct {
	router  *gin.Engine
	source  SelectionSource
	store   *evaluation.Store
	metrics *metrics.Manager
	log     logger.Logger
	srv     *http.Server
}

// Option configures a Server.
type Option func(*Server)

// WithMetrics exposes m on GET /metrics and records deletes made over HTTP.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Server) { s.metrics = m }
}

// WithLogger sets the request logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) { s.log = l }
}

// New builds the router. source and store are required.
func New(source SelectionSource, store *evaluation.Store, opts ...Option) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{source: source, store: store}
	for _, opt := range opts {
		opt(s)
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.logRequests())

	r.GET("/healthz", s.health)
	r.GET("/selection", s.selection)
	r.GET("/evaluations", s.listEvaluations)
	r.GET("/evaluations/:id", s.getEvaluation)
	r.DELETE("/evaluations/:id", s.deleteEvaluation)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	s.router = r
	return s
}

// Handler returns the router, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens on addr and serves in the background. It returns the bound
// address, which differs from addr when addr uses port 0.
func (s *Server) Start(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("inspect listen %s: %w", addr, err)
	}
	s.srv = &http.Server{Handler: s.router, ReadHeaderTimeout: readHeaderTimeout}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) && s.log != nil {
			s.log.Error(context.Background(), "inspect server stopped", logger.Error(err))
		}
	}()
	return ln.Addr().String(), nil
}

// Shutdown stops a server started with Start.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) selection(c *gin.Context) {
	c.JSON(http.StatusOK, s.source.Snapshot())
}

func (s *Server) listEvaluations(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit <= 0 {
		s.writeError(c, ErrInvalidLimit)
		return
	}
	list := s.store.List(c.Request.Context())
	total := len(list)
	if len(list) > limit {
		list = list[:limit]
	}
	c.JSON(http.StatusOK, gin.H{"total": total, "evaluations": list})
}

func (s *Server) getEvaluation(c *gin.Context) {
	e, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (s *Server) deleteEvaluation(c *gin.Context) {
	ctx := c.Request.Context()
	if _, err := s.store.Delete(ctx, c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	if s.metrics != nil {
		s.metrics.EvaluationDeleted(s.store.Count(ctx))
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, evaluation.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrInvalidLimit):
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// logRequests logs one debug record per request.
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if s.log == nil {
			return
		}
		s.log.Debug(c.Request.Context(), "inspect request",
			logger.String("method", c.Request.Method),
			logger.String("path", c.FullPath()),
			logger.Int("status", c.Writer.Status()),
			logger.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
		)
	}
}
