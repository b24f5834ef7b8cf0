// Package ioweb serves taxonomy queries over HTTP.
package ioweb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gntaxa/pkg/config"
	"github.com/gnames/gntaxa/pkg/lifecycle"
	"github.com/gnames/gntaxa/pkg/taxonomy"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// state is a taxonomy graph with its name index. It is replaced as a
// whole on reload.
type state struct {
	graph *taxonomy.Graph
	names *taxonomy.NameIndex
}

// Server answers taxonomy queries. Requests always see a complete
// taxonomy: a reload swaps the taxonomy only after it is fully built.
type Server struct {
	port      int
	jobs      int
	loader    lifecycle.Loader
	normalize taxonomy.Normalizer
	current   atomic.Pointer[state]
	reloadMu  sync.Mutex
	router    *gin.Engine
}

// New creates a server. The taxonomy is not loaded until Load is called.
// A nil normalize uses taxonomy.NormalizeUpper for name lookups.
func New(
	cfg *config.Config,
	loader lifecycle.Loader,
	normalize taxonomy.Normalizer,
) *Server {
	if normalize == nil {
		normalize = taxonomy.NormalizeUpper
	}
	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	res := &Server{
		port:      cfg.Server.Port,
		jobs:      cfg.JobsNumber,
		loader:    loader,
		normalize: normalize,
	}
	res.router = res.setRouter()
	return res
}

// Load builds the taxonomy and its name index and makes them current.
// On error the previous taxonomy stays in service.
func (s *Server) Load(ctx context.Context) (taxonomy.Stats, error) {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	g, err := s.loader.Load(ctx)
	if err != nil {
		reloadsTotal.WithLabelValues("error").Inc()
		return taxonomy.Stats{}, ReloadError(err)
	}
	idx, err := taxonomy.NewNameIndex(ctx, g, s.normalize, s.jobs)
	if err != nil {
		reloadsTotal.WithLabelValues("error").Inc()
		return taxonomy.Stats{}, ReloadError(err)
	}

	s.current.Store(&state{graph: g, names: idx})
	stats := g.Stats()
	taxaLoaded.Set(float64(stats.Nodes))
	reloadsTotal.WithLabelValues("ok").Inc()
	slog.Info("Taxonomy is ready for queries",
		"nodes", stats.Nodes, "names", idx.Len())
	return stats, nil
}

// Handler returns HTTP handler of the service.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured port until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return StartError(addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve handles requests from ln until ctx is cancelled, then shuts the
// HTTP server down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	slog.Info("Web service is started", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		return StartError(ln.Addr().String(), err)
	case <-ctx.Done():
	}

	shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := srv.Shutdown(shutCtx)
	if serveErr := <-errCh; !errors.Is(serveErr, http.ErrServerClosed) {
		err = errors.Join(err, serveErr)
	}
	slog.Info("Web service is stopped")
	return err
}

func (s *Server) setRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), metricsMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.GET("/ping", s.ping)
	api.POST("/reload", s.reload)

	ready := api.Group("", s.requireTaxonomy)
	ready.GET("/taxa/:id", s.taxon)
	ready.GET("/taxa/:id/lineage", s.lineage)
	ready.GET("/taxa/:id/children", s.children)
	ready.GET("/lca", s.lca)
	ready.GET("/compare", s.compare)
	ready.GET("/find", s.find)
	return r
}
