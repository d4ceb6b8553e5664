package api

import (
	"net/http"

	"github.com/lox/lightage/internal/imagegen"
	"github.com/lox/lightage/internal/metadata"
	"github.com/lox/lightage/internal/metrics"
	"github.com/lox/lightage/internal/observe"
)

// handleAgeChartPNG serves the age comparison chart for the query's inputs.
func (s *Server) handleAgeChartPNG(w http.ResponseWriter, r *http.Request) {
	v := observe.Render(ParseInput(r.URL.Query()), metadata.Result{}, s.observer)
	s.servePNG(w, "age", v, func() ([]byte, error) { return imagegen.RenderBar(v.AgeChart) })
}

// handleSkyChartPNG serves the sky position chart for the query's inputs.
func (s *Server) handleSkyChartPNG(w http.ResponseWriter, r *http.Request) {
	v := observe.Render(ParseInput(r.URL.Query()), metadata.Result{}, s.observer)
	s.servePNG(w, "sky", v, func() ([]byte, error) { return imagegen.RenderPolar(v.SkyChart) })
}

func (s *Server) servePNG(w http.ResponseWriter, name string, v observe.View, render func() ([]byte, error)) {
	// Keyed on the clamped input so equivalent queries share an entry.
	key := name + "?" + EncodeInput(v.Input).Encode()
	data, hit, err := s.charts.GetOrRender(key, render)
	if err != nil {
		s.logger.Error("chart render failed", "chart", name, "error", err)
		http.Error(w, "chart render failed", http.StatusInternalServerError)
		return
	}
	if hit {
		metrics.ChartCacheLookups.WithLabelValues("hit").Inc()
	} else {
		metrics.ChartCacheLookups.WithLabelValues("miss").Inc()
		metrics.RendersTotal.WithLabelValues("png").Inc()
	}

	w.Header().Set("Content-Type", "image/png")
	// Output depends only on the query string.
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(data)
}
