package api

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/lox/lightage/internal/imagegen"
)

const (
	noticeTooLarge     = "The uploaded image is too large to read, so it was ignored."
	previewUnavailable = "The uploaded image could not be displayed."
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	obs, err := s.render(w, r, "page")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v := obs.View
	data := IndexData{
		RenderID:    obs.ID,
		View:        v,
		Form:        newFormData(v.Input),
		Explanation: template.HTML(v.Explanation),
		AgeLayout:   v.AgeChart.Layout(),
		SkyLayout:   v.SkyChart.Layout(),
		ChartQuery:  template.URL(EncodeInput(v.Input).Encode()),
	}
	if obs.UploadErr != nil {
		data.Notice = noticeTooLarge
	}
	if up := obs.Upload; up != nil {
		data.ImageName = up.Name
		if p, err := imagegen.NewPreview(up.Data, s.cfg.PreviewMaxWidth); err != nil {
			s.logger.Warn("preview failed", "render_id", obs.ID, "error", err)
			data.PreviewError = previewUnavailable
		} else {
			data.Preview = &p
			// Built by imagegen from base64 output, so it is safe to emit as a URL.
			data.PreviewURI = template.URL(p.DataURI)
		}
	}

	// Execute into a buffer so a template error can still become a 500.
	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "index.html", data); err != nil {
		s.logger.Error("template error", "template", "index.html", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
