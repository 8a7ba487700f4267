package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mr-Gerald/graceful-path-web/internal/llm"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.Client())
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func sampleTest(id string) *PracticeTest {
	return &PracticeTest{
		ID:         id,
		Title:      "Pharmacology Basics",
		Duration:   "90 mins",
		Difficulty: quizgen.DifficultyEasy,
		Questions: []quizgen.Question{
			{
				ID:           "q1",
				Prompt:       "Which medication requires apical pulse check before administration?",
				Options:      []string{"Digoxin", "Lisinopril", "Metformin", "Omeprazole"},
				CorrectIndex: 0,
				Explanation:  "Digoxin slows conduction; hold if pulse is below 60.",
				Difficulty:   quizgen.DifficultyEasy,
			},
		},
	}
}

func TestTestRepoRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Tests()
	ctx := context.Background()

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing, "missing test should be nil, not an error")

	want := sampleTest("t1")
	require.NoError(t, repo.Put(ctx, want))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.Title, got.Title)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, want.Questions[0].Prompt, got.Questions[0].Prompt)
	assert.Equal(t, 0, got.Questions[0].CorrectIndex)
}

func TestTestRepoPutReplacesDocument(t *testing.T) {
	s := openTestStore(t)
	repo := s.Tests()
	ctx := context.Background()

	doc := sampleTest("t1")
	require.NoError(t, repo.Put(ctx, doc))

	// Append a question the way the generation pipeline does: mutate
	// the document and rewrite the whole thing.
	doc.Questions = append(doc.Questions, quizgen.Question{
		ID:           "q2",
		Prompt:       "A client on furosemide should be monitored for?",
		Options:      []string{"Hyperkalemia", "Hypokalemia", "Hypernatremia", "Polycythemia"},
		CorrectIndex: 1,
		Explanation:  "Loop diuretics waste potassium.",
		Difficulty:   quizgen.DifficultyEasy,
	})
	doc.Title = "Pharmacology Basics (extended)"
	require.NoError(t, repo.Put(ctx, doc))

	got, err := repo.Get(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, doc.Title, got.Title)
	assert.Len(t, got.Questions, 2)
}

func TestTestRepoListAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Tests()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Put(ctx, sampleTest(id)))
	}

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	require.NoError(t, repo.Delete(ctx, "b"))
	require.NoError(t, repo.Delete(ctx, "b"), "double delete should be a no-op")

	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestKeyRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.Keys()
	ctx := context.Background()

	_, err := repo.Add(ctx, "bad", "")
	require.Error(t, err, "empty secret must be rejected")

	k1, err := repo.Add(ctx, "primary", "sk-one")
	require.NoError(t, err)
	k2, err := repo.Add(ctx, "backup", "sk-two")
	require.NoError(t, err)
	assert.NotEqual(t, k1.ID, k2.ID)

	secrets, err := repo.ActiveSecrets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sk-one", "sk-two"}, secrets, "pool order follows creation order")

	// Deactivated keys drop out of the rotation pool but stay listed.
	require.NoError(t, repo.SetActive(ctx, k1.ID, false))
	secrets, err = repo.ActiveSecrets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sk-two"}, secrets)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.False(t, all[0].IsActive)
	assert.True(t, all[1].IsActive)

	require.NoError(t, repo.Delete(ctx, k1.ID))
	all, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEventRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	events := []llm.RequestEvent{
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "question-gen", InputTokens: 120, OutputTokens: 300, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-3-flash-preview", Purpose: "question-gen", Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemini-3-pro-preview", Purpose: "tutor-chat", Success: true},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)

	all, err := repo.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)

	var failures int
	for _, e := range all {
		if !e.Success {
			failures++
			assert.NotEmpty(t, e.ErrorMessage, "failed event must record its error")
		}
	}
	assert.Equal(t, 1, failures)
}
