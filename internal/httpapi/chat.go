package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
	"github.com/Mr-Gerald/graceful-path-web/internal/tutor"
)

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string          `json:"message"`
		History []tutor.Message `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message required")
		return
	}

	if err := s.refreshPool(r); err != nil {
		s.log.Errorw("refresh key pool", "err", err)
		writeError(w, http.StatusInternalServerError, "load api keys failed")
		return
	}

	reply, err := s.tutor.Chat(r.Context(), req.Message, req.History)
	if err != nil {
		s.writeLLMError(w, "chat", err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (s *Server) studyPlan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WeakAreas []string `json:"weakAreas"`
		ExamDate  string   `json:"examDate"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if len(req.WeakAreas) == 0 {
		writeError(w, http.StatusBadRequest, "weakAreas required")
		return
	}

	if err := s.refreshPool(r); err != nil {
		s.log.Errorw("refresh key pool", "err", err)
		writeError(w, http.StatusInternalServerError, "load api keys failed")
		return
	}

	plan, err := s.plans.Generate(r.Context(), req.WeakAreas, req.ExamDate)
	if err != nil {
		s.writeLLMError(w, "study plan", err)
		return
	}
	writeJSON(w, http.StatusOK, plan)
}

// writeLLMError maps provider failures onto HTTP statuses: a missing key
// pool is the caller's problem to fix in the admin panel, everything else
// is upstream.
func (s *Server) writeLLMError(w http.ResponseWriter, op string, err error) {
	s.log.Errorw(op, "err", err)
	if errors.Is(err, keypool.ErrNoCredentials) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	writeError(w, http.StatusBadGateway, op+" failed")
}
