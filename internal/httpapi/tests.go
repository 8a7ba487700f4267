package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
)

// testSummary is the list view of a test: metadata plus question count,
// without the question bank itself.
type testSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Duration      string `json:"duration"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount"`
}

func (s *Server) listTests(w http.ResponseWriter, r *http.Request) {
	tests, err := s.tests.List(r.Context())
	if err != nil {
		s.log.Errorw("list tests", "err", err)
		writeError(w, http.StatusInternalServerError, "list tests failed")
		return
	}
	out := make([]testSummary, 0, len(tests))
	for _, t := range tests {
		out = append(out, testSummary{
			ID:            t.ID,
			Title:         t.Title,
			Duration:      t.Duration,
			Difficulty:    string(t.Difficulty),
			QuestionCount: len(t.Questions),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) createTest(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title      string `json:"title"`
		Duration   string `json:"duration"`
		Difficulty string `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		writeError(w, http.StatusBadRequest, "title required")
		return
	}
	difficulty := quizgen.Difficulty(req.Difficulty)
	if req.Difficulty != "" && !difficulty.Valid() {
		writeError(w, http.StatusBadRequest, "difficulty must be easy, medium or hard")
		return
	}

	test := &content.PracticeTest{
		ID:         uuid.New().String(),
		Title:      req.Title,
		Duration:   req.Duration,
		Difficulty: difficulty,
	}
	if err := s.tests.Put(r.Context(), test); err != nil {
		s.log.Errorw("create test", "err", err)
		writeError(w, http.StatusInternalServerError, "create test failed")
		return
	}
	writeJSON(w, http.StatusCreated, test)
}

func (s *Server) getTest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "testID")
	test, err := s.tests.Get(r.Context(), id)
	if err != nil {
		s.log.Errorw("get test", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "get test failed")
		return
	}
	if test == nil {
		writeError(w, http.StatusNotFound, "test not found")
		return
	}
	writeJSON(w, http.StatusOK, test)
}

// updateTest replaces the whole test document. The store has no
// partial-field update, so PUT is the only mutation shape.
func (s *Server) updateTest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "testID")
	existing, err := s.tests.Get(r.Context(), id)
	if err != nil {
		s.log.Errorw("get test", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "get test failed")
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "test not found")
		return
	}

	var test content.PracticeTest
	if err := json.NewDecoder(r.Body).Decode(&test); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if strings.TrimSpace(test.Title) == "" {
		writeError(w, http.StatusBadRequest, "title required")
		return
	}
	if test.Difficulty != "" && !test.Difficulty.Valid() {
		writeError(w, http.StatusBadRequest, "difficulty must be easy, medium or hard")
		return
	}
	test.ID = id

	if err := s.tests.Put(r.Context(), &test); err != nil {
		s.log.Errorw("update test", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "update test failed")
		return
	}
	writeJSON(w, http.StatusOK, &test)
}

func (s *Server) deleteTest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "testID")
	if err := s.tests.Delete(r.Context(), id); err != nil {
		s.log.Errorw("delete test", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "delete test failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
