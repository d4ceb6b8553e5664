package api

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/lightage/internal/config"
	"github.com/lox/lightage/internal/httputil"
	"github.com/lox/lightage/internal/imagegen"
	"github.com/lox/lightage/internal/observe"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	tmpl     *template.Template
	observer observe.Observer
	charts   *imagegen.Cache
}

func NewServer(cfg *config.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:    cfg,
		logger: logger,
		tmpl:   newTemplates(),
		charts: imagegen.NewCache(cfg.ChartCacheTTL, cfg.ChartCacheEntries),
		observer: observe.Observer{
			Name:      cfg.ObserverName,
			Latitude:  cfg.ObserverLat,
			Longitude: cfg.ObserverLon,
		},
	}
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/observe", s.handleAPIObserve)
		r.Post("/observe", s.handleAPIObserve)
	})

	r.Route("/charts", func(r chi.Router) {
		r.Get("/age.png", s.handleAgeChartPNG)
		r.Get("/sky.png", s.handleSkyChartPNG)
	})
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully. A listen
// failure is returned straight away.
func (s *Server) Run(ctx context.Context) error {
	server := httputil.NewServer(s.cfg.Addr, s.Handler(), s.cfg.ReadTimeout, s.cfg.WriteTimeout)

	// done stops the shutdown watcher when serving ends on its own.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown", "error", err)
		}
	}()

	s.logger.Info("starting server", "addr", s.cfg.Addr)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// logRequests logs one line per request once the response is written.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.LogAttrs(r.Context(), slog.LevelInfo, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
