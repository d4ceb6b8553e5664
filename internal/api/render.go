package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/lox/lightage/internal/metadata"
	"github.com/lox/lightage/internal/metrics"
	"github.com/lox/lightage/internal/observe"
)

// render parses the request, reads the image's direction tag and renders
// the view. An oversized image is dropped and recorded in UploadErr; other
// form errors are returned.
func (s *Server) render(w http.ResponseWriter, r *http.Request, surface string) (*observation, error) {
	start := time.Now()
	defer func() {
		metrics.RenderLatency.WithLabelValues(surface).Observe(time.Since(start).Seconds())
	}()

	up, err := s.readForm(w, r)
	obs := &observation{ID: uuid.NewString(), Upload: up}
	switch {
	case errors.Is(err, errUploadTooLarge):
		obs.UploadErr = err
	case err != nil:
		return nil, err
	}

	var data []byte
	if up != nil {
		data = up.Data
	}
	// Extraction is skipped entirely without an image.
	dir := metadata.Result{Status: metadata.StatusNoImage}
	if len(data) > 0 {
		dir = metadata.Read(data)
	}
	metrics.DirectionExtractions.WithLabelValues(string(dir.Status)).Inc()

	obs.View = observe.Render(ParseInput(r.Form), dir, s.observer)
	metrics.RendersTotal.WithLabelValues(surface).Inc()

	s.logger.Debug("render",
		"render_id", obs.ID,
		"surface", surface,
		"observed_age", obs.View.Result.ObservedAgeYears,
		"direction", dir.Status,
	)
	return obs, nil
}
