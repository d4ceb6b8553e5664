package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lox/lightage/internal/htmlutil"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAPIObserve(w http.ResponseWriter, r *http.Request) {
	obs, err := s.render(w, r, "api")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if errors.Is(obs.UploadErr, errUploadTooLarge) {
		writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": obs.UploadErr.Error()})
		return
	}

	writeJSON(w, http.StatusOK, APIResponse{
		RenderID:    obs.ID,
		View:        obs.View,
		Explanation: htmlutil.ToText(obs.View.Explanation),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
