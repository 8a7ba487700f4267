package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Mr-Gerald/graceful-path-web/internal/content"
	"github.com/Mr-Gerald/graceful-path-web/internal/keypool"
	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
	"github.com/Mr-Gerald/graceful-path-web/internal/studyplan"
	"github.com/Mr-Gerald/graceful-path-web/internal/tutor"
)

// In-memory repositories standing in for the SQLite store.

type memTestRepo struct {
	docs  map[string]*content.PracticeTest
	order []string
}

func newMemTestRepo() *memTestRepo {
	return &memTestRepo{docs: map[string]*content.PracticeTest{}}
}

func (r *memTestRepo) Put(_ context.Context, t *content.PracticeTest) error {
	if _, ok := r.docs[t.ID]; !ok {
		r.order = append(r.order, t.ID)
	}
	cp := *t
	cp.Questions = append([]quizgen.Question(nil), t.Questions...)
	r.docs[t.ID] = &cp
	return nil
}

func (r *memTestRepo) Get(_ context.Context, id string) (*content.PracticeTest, error) {
	t, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	cp.Questions = append([]quizgen.Question(nil), t.Questions...)
	return &cp, nil
}

func (r *memTestRepo) List(_ context.Context) ([]*content.PracticeTest, error) {
	out := make([]*content.PracticeTest, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out, nil
}

func (r *memTestRepo) Delete(_ context.Context, id string) error {
	delete(r.docs, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type memKeyRepo struct {
	keys []content.APIKey
	next int
}

func (r *memKeyRepo) Add(_ context.Context, label, secret string) (*content.APIKey, error) {
	if secret == "" {
		return nil, fmt.Errorf("empty secret")
	}
	r.next++
	k := content.APIKey{ID: fmt.Sprintf("k%d", r.next), Label: label, Secret: secret, IsActive: true}
	r.keys = append(r.keys, k)
	return &k, nil
}

func (r *memKeyRepo) List(_ context.Context) ([]content.APIKey, error) {
	return append([]content.APIKey(nil), r.keys...), nil
}

func (r *memKeyRepo) ActiveSecrets(_ context.Context) ([]string, error) {
	var out []string
	for _, k := range r.keys {
		if k.IsActive {
			out = append(out, k.Secret)
		}
	}
	return out, nil
}

func (r *memKeyRepo) SetActive(_ context.Context, id string, active bool) error {
	for i := range r.keys {
		if r.keys[i].ID == id {
			r.keys[i].IsActive = active
			return nil
		}
	}
	return fmt.Errorf("key %s not found", id)
}

func (r *memKeyRepo) Delete(_ context.Context, id string) error {
	for i := range r.keys {
		if r.keys[i].ID == id {
			r.keys = append(r.keys[:i], r.keys[i+1:]...)
			return nil
		}
	}
	return nil
}

type memEventRepo struct {
	events []content.LLMRequestEvent
}

func (r *memEventRepo) AppendLLMRequest(_ context.Context, e llm.RequestEvent) error {
	r.events = append(r.events, content.LLMRequestEvent{
		ID:       len(r.events) + 1,
		Provider: e.Provider,
		Model:    e.Model,
		Purpose:  e.Purpose,
		Success:  e.Success,
	})
	return nil
}

func (r *memEventRepo) Recent(_ context.Context, limit int) ([]content.LLMRequestEvent, error) {
	out := append([]content.LLMRequestEvent(nil), r.events...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// scriptedGenerator produces deterministic questions per item index.
type scriptedGenerator struct {
	failAt map[int]error // item index -> error
}

func (g *scriptedGenerator) Generate(_ context.Context, in quizgen.GenerateInput) (*quizgen.Question, error) {
	if err, ok := g.failAt[in.Index]; ok {
		return nil, err
	}
	return &quizgen.Question{
		Prompt:       fmt.Sprintf("Question %d on %s?", in.Index+1, in.Topic),
		Options:      []string{"a", "b", "c", "d"},
		CorrectIndex: 1,
		Explanation:  "because",
		Difficulty:   in.Difficulty,
	}, nil
}

type fixture struct {
	tests   *memTestRepo
	keys    *memKeyRepo
	events  *memEventRepo
	handler http.Handler
}

func newFixture(t *testing.T, gen quizgen.Generator, provider llm.Provider) *fixture {
	t.Helper()
	if gen == nil {
		gen = &scriptedGenerator{}
	}
	if provider == nil {
		provider = llm.NewMockProvider()
	}
	f := &fixture{
		tests:  newMemTestRepo(),
		keys:   &memKeyRepo{},
		events: &memEventRepo{},
	}
	srv := NewServer(Config{
		Tests:  f.tests,
		Keys:   f.keys,
		Events: f.events,
		Pool:   keypool.New([]string{"sk-test"}),
		Quiz:   quizgen.NewService(gen),
		Tutor:  tutor.New(provider),
		Plans:  studyplan.New(provider),
	})
	f.handler = srv.Router()
	return f
}

func (f *fixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	f := newFixture(t, nil, nil)
	rec := f.do(t, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTestCRUD(t *testing.T) {
	f := newFixture(t, nil, nil)

	rec := f.do(t, http.MethodPost, "/api/tests", map[string]string{
		"title": "Fundamentals", "duration": "60 mins", "difficulty": "easy",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var created content.PracticeTest
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" {
		t.Fatal("created test must get an ID")
	}

	rec = f.do(t, http.MethodGet, "/api/tests", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list []testSummary
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Fundamentals" {
		t.Fatalf("list mismatch: %+v", list)
	}

	rec = f.do(t, http.MethodGet, "/api/tests/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodGet, "/api/tests/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get missing: expected 404, got %d", rec.Code)
	}

	created.Title = "Fundamentals II"
	created.Questions = []quizgen.Question{{
		ID:           "q1",
		Prompt:       "Normal adult respiratory rate?",
		Options:      []string{"4-8", "12-20", "25-30", "40-60"},
		CorrectIndex: 1,
		Explanation:  "12-20 breaths per minute at rest.",
		Difficulty:   quizgen.DifficultyEasy,
	}}
	rec = f.do(t, http.MethodPut, "/api/tests/"+created.ID, created)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", rec.Code, rec.Body)
	}
	stored, _ := f.tests.Get(context.Background(), created.ID)
	if stored.Title != "Fundamentals II" || len(stored.Questions) != 1 {
		t.Fatalf("document not replaced: %+v", stored)
	}

	rec = f.do(t, http.MethodPut, "/api/tests/nope", created)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("update missing: expected 404, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodDelete, "/api/tests/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
}

func TestCreateTest_Validation(t *testing.T) {
	f := newFixture(t, nil, nil)

	rec := f.do(t, http.MethodPost, "/api/tests", map[string]string{"title": "  "})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("blank title: expected 400, got %d", rec.Code)
	}
	rec = f.do(t, http.MethodPost, "/api/tests", map[string]string{"title": "x", "difficulty": "impossible"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad difficulty: expected 400, got %d", rec.Code)
	}
}

func TestGenerate_StreamsAndPersists(t *testing.T) {
	f := newFixture(t, &scriptedGenerator{}, nil)
	f.keys.Add(context.Background(), "k", "sk-live")
	f.tests.Put(context.Background(), &content.PracticeTest{ID: "t1", Title: "Cardio"})

	rec := f.do(t, http.MethodPost, "/api/generate", map[string]any{
		"testId": "t1", "topic": "Cardiac care", "count": 3, "difficulty": "medium",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected SSE content type, got %q", ct)
	}

	body := rec.Body.String()
	if got := strings.Count(body, "event: question"); got != 3 {
		t.Fatalf("expected 3 question events, got %d in:\n%s", got, body)
	}
	if !strings.Contains(body, "event: progress") {
		t.Fatal("expected progress events")
	}
	if !strings.Contains(body, `"produced":3`) {
		t.Fatalf("expected done event with produced=3:\n%s", body)
	}

	saved, _ := f.tests.Get(context.Background(), "t1")
	if len(saved.Questions) != 3 {
		t.Fatalf("expected 3 persisted questions, got %d", len(saved.Questions))
	}
	for _, q := range saved.Questions {
		if q.ID == "" {
			t.Fatal("persisted questions must carry IDs")
		}
		if q.Difficulty != quizgen.DifficultyMedium {
			t.Fatalf("difficulty not stamped: %+v", q)
		}
	}
}

func TestGenerate_PartialFailure(t *testing.T) {
	gen := &scriptedGenerator{failAt: map[int]error{1: &llm.ErrInvalidResponse{}}}
	f := newFixture(t, gen, nil)
	f.keys.Add(context.Background(), "k", "sk-live")

	rec := f.do(t, http.MethodPost, "/api/generate", map[string]any{
		"topic": "Peds", "count": 3, "difficulty": "easy",
	})
	body := rec.Body.String()
	if got := strings.Count(body, "event: question"); got != 2 {
		t.Fatalf("expected 2 question events, got %d", got)
	}
	if !strings.Contains(body, `"produced":2`) {
		t.Fatalf("expected done with produced=2:\n%s", body)
	}
}

func TestGenerate_NoKeysConfigured(t *testing.T) {
	gen := &scriptedGenerator{failAt: map[int]error{0: keypool.ErrNoCredentials}}
	f := newFixture(t, gen, nil)

	rec := f.do(t, http.MethodPost, "/api/generate", map[string]any{
		"topic": "Peds", "count": 2, "difficulty": "easy",
	})
	body := rec.Body.String()
	if !strings.Contains(body, "event: error") {
		t.Fatalf("expected error event:\n%s", body)
	}
	if !strings.Contains(body, `"produced":0`) {
		t.Fatalf("expected done with produced=0:\n%s", body)
	}
}

func TestGenerate_Validation(t *testing.T) {
	f := newFixture(t, nil, nil)

	cases := []map[string]any{
		{"topic": "", "count": 3, "difficulty": "easy"},
		{"topic": "x", "count": 0, "difficulty": "easy"},
		{"topic": "x", "count": maxGenerateCount + 1, "difficulty": "easy"},
		{"topic": "x", "count": 3, "difficulty": "brutal"},
	}
	for i, body := range cases {
		rec := f.do(t, http.MethodPost, "/api/generate", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("case %d: expected 400, got %d", i, rec.Code)
		}
	}

	rec := f.do(t, http.MethodPost, "/api/generate", map[string]any{
		"testId": "missing", "topic": "x", "count": 1, "difficulty": "easy",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing test: expected 404, got %d", rec.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Assess airway first.")})
	f := newFixture(t, nil, provider)
	f.keys.Add(context.Background(), "k", "sk-live")

	rec := f.do(t, http.MethodPost, "/api/chat", map[string]any{
		"message": "Priority for an unresponsive client?",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var reply tutor.Reply
	if err := json.Unmarshal(rec.Body.Bytes(), &reply); err != nil {
		t.Fatalf("decode reply: %v", err)
	}
	if reply.Text == "" {
		t.Fatal("expected reply text")
	}
}

func TestStudyPlanEndpoint(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(
		`{"plan":[{"week":1,"focus":"Cardio","tasks":["review"]}]}`,
	)})
	f := newFixture(t, nil, provider)
	f.keys.Add(context.Background(), "k", "sk-live")

	rec := f.do(t, http.MethodPost, "/api/study-plan", map[string]any{
		"weakAreas": []string{"Cardio"}, "examDate": "2026-12-01",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	rec = f.do(t, http.MethodPost, "/api/study-plan", map[string]any{"weakAreas": []string{}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty weakAreas, got %d", rec.Code)
	}
}

func TestKeyEndpoints(t *testing.T) {
	f := newFixture(t, nil, nil)

	rec := f.do(t, http.MethodPost, "/api/keys", map[string]string{
		"label": "primary", "key_value": "sk-abcdef1234",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add: expected 201, got %d", rec.Code)
	}
	var created keyView
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.KeyHint != "...1234" {
		t.Fatalf("secret must be masked, got %q", created.KeyHint)
	}

	rec = f.do(t, http.MethodPost, "/api/keys", map[string]string{"label": "empty"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty key: expected 400, got %d", rec.Code)
	}

	rec = f.do(t, http.MethodPatch, "/api/keys/"+created.ID, map[string]any{"is_active": false})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("patch: expected 204, got %d", rec.Code)
	}
	secrets, _ := f.keys.ActiveSecrets(context.Background())
	if len(secrets) != 0 {
		t.Fatalf("deactivated key still active: %v", secrets)
	}

	rec = f.do(t, http.MethodDelete, "/api/keys/"+created.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
}

func TestEventsEndpoint(t *testing.T) {
	f := newFixture(t, nil, nil)
	for i := 0; i < 3; i++ {
		f.events.AppendLLMRequest(context.Background(), llm.RequestEvent{
			Provider: "gemini", Model: "m", Purpose: "question-gen", Success: true,
		})
	}

	rec := f.do(t, http.MethodGet, "/api/events?limit=2", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var events []content.LLMRequestEvent
	if err := json.Unmarshal(rec.Body.Bytes(), &events); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	rec = f.do(t, http.MethodGet, "/api/events?limit=bogus", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad limit, got %d", rec.Code)
	}
}
