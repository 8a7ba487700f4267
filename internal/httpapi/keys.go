package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
)

// keyView is the admin panel's view of a key: the secret is masked down
// to its last four characters.
type keyView struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	KeyHint  string `json:"keyHint"`
	IsActive bool   `json:"is_active"`
}

func maskKey(k content.APIKey) keyView {
	hint := k.Secret
	if len(hint) > 4 {
		hint = "..." + hint[len(hint)-4:]
	}
	return keyView{ID: k.ID, Label: k.Label, KeyHint: hint, IsActive: k.IsActive}
}

func (s *Server) listKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := s.keys.List(r.Context())
	if err != nil {
		s.log.Errorw("list keys", "err", err)
		writeError(w, http.StatusInternalServerError, "list keys failed")
		return
	}
	out := make([]keyView, 0, len(keys))
	for _, k := range keys {
		out = append(out, maskKey(k))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) addKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label    string `json:"label"`
		KeyValue string `json:"key_value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.KeyValue == "" {
		writeError(w, http.StatusBadRequest, "key_value required")
		return
	}

	key, err := s.keys.Add(r.Context(), req.Label, req.KeyValue)
	if err != nil {
		s.log.Errorw("add key", "err", err)
		writeError(w, http.StatusInternalServerError, "add key failed")
		return
	}
	writeJSON(w, http.StatusCreated, maskKey(*key))
}

func (s *Server) updateKey(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "keyID")
	var req struct {
		IsActive *bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.IsActive == nil {
		writeError(w, http.StatusBadRequest, "is_active required")
		return
	}

	if err := s.keys.SetActive(r.Context(), id, *req.IsActive); err != nil {
		s.log.Errorw("update key", "id", id, "err", err)
		writeError(w, http.StatusNotFound, "key not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteKey(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "keyID")
	if err := s.keys.Delete(r.Context(), id); err != nil {
		s.log.Errorw("delete key", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "delete key failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listEvents(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "bad limit")
			return
		}
		limit = n
	}

	events, err := s.events.Recent(r.Context(), limit)
	if err != nil {
		s.log.Errorw("list events", "err", err)
		writeError(w, http.StatusInternalServerError, "list events failed")
		return
	}
	writeJSON(w, http.StatusOK, events)
}
