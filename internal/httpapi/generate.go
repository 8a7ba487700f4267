package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
)

const maxGenerateCount = 50

// generate streams question generation as server-sent events. Event types:
//
//	progress  {"message": "..."}
//	question  the accepted question object
//	error     {"error": "..."}
//	done      {"produced": n, "requested": n}
//
// When testId is set, each accepted question is persisted to that test
// before its event is sent, so an interrupted run keeps what it produced.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		TestID     string `json:"testId"`
		Topic      string `json:"topic"`
		Count      int    `json:"count"`
		Difficulty string `json:"difficulty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		writeError(w, http.StatusBadRequest, "topic required")
		return
	}
	if req.Count < 1 || req.Count > maxGenerateCount {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("count must be 1-%d", maxGenerateCount))
		return
	}
	difficulty := quizgen.Difficulty(req.Difficulty)
	if !difficulty.Valid() {
		writeError(w, http.StatusBadRequest, "difficulty must be easy, medium or hard")
		return
	}

	var test *content.PracticeTest
	if req.TestID != "" {
		var err error
		test, err = s.tests.Get(r.Context(), req.TestID)
		if err != nil {
			s.log.Errorw("load test for generation", "id", req.TestID, "err", err)
			writeError(w, http.StatusInternalServerError, "load test failed")
			return
		}
		if test == nil {
			writeError(w, http.StatusNotFound, "test not found")
			return
		}
	}

	if err := s.refreshPool(r); err != nil {
		s.log.Errorw("refresh key pool", "err", err)
		writeError(w, http.StatusInternalServerError, "load api keys failed")
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	send := func(event string, v any) {
		data, err := json.Marshal(v)
		if err != nil {
			return
		}
		fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
		flusher.Flush()
	}

	onProgress := func(msg string) {
		send("progress", map[string]string{"message": msg})
	}
	onQuestion := func(q quizgen.Question) {
		if test != nil {
			test.Questions = append(test.Questions, q)
			if err := s.tests.Put(r.Context(), test); err != nil {
				s.log.Errorw("persist question", "test", test.ID, "err", err)
			}
		}
		send("question", q)
	}

	produced, err := s.quiz.Generate(r.Context(), quizgen.GenerateRequest{
		Topic:      req.Topic,
		Count:      req.Count,
		Difficulty: difficulty,
	}, onQuestion, onProgress)
	if err != nil && !errors.Is(err, context.Canceled) {
		msg := "generation failed"
		if errors.Is(err, keypool.ErrNoCredentials) {
			msg = err.Error()
		}
		send("error", map[string]string{"error": msg})
	}

	send("done", map[string]int{"produced": len(produced), "requested": req.Count})
}
