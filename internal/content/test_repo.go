package content

import (
	"context"
	"fmt"

	"github.com/Mr-Gerald/graceful-path-web/ent"
	"github.com/Mr-Gerald/graceful-path-web/ent/practicetest"
	"github.com/Mr-Gerald/graceful-path-web/ent/schema"
	"github.com/Mr-Gerald/graceful-path-web/internal/quizgen"
)

// testRepo implements TestRepo using the ent client.
type testRepo struct {
	client *ent.Client
}

func (r *testRepo) Put(ctx context.Context, test *PracticeTest) error {
	docs := questionsToDocs(test.Questions)

	err := r.client.PracticeTest.UpdateOneID(test.ID).
		SetTitle(test.Title).
		SetDuration(test.Duration).
		SetDifficulty(string(test.Difficulty)).
		SetQuestions(docs).
		Exec(ctx)
	if ent.IsNotFound(err) {
		err = r.client.PracticeTest.Create().
			SetID(test.ID).
			SetTitle(test.Title).
			SetDuration(test.Duration).
			SetDifficulty(string(test.Difficulty)).
			SetQuestions(docs).
			Exec(ctx)
	}
	if err != nil {
		return fmt.Errorf("put test %s: %w", test.ID, err)
	}
	return nil
}

func (r *testRepo) Get(ctx context.Context, id string) (*PracticeTest, error) {
	row, err := r.client.PracticeTest.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get test %s: %w", id, err)
	}
	return entTestToTest(row), nil
}

func (r *testRepo) List(ctx context.Context) ([]*PracticeTest, error) {
	rows, err := r.client.PracticeTest.Query().
		Order(ent.Asc(practicetest.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tests: %w", err)
	}
	tests := make([]*PracticeTest, 0, len(rows))
	for _, row := range rows {
		tests = append(tests, entTestToTest(row))
	}
	return tests, nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	err := r.client.PracticeTest.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("delete test %s: %w", id, err)
	}
	return nil
}

func entTestToTest(row *ent.PracticeTest) *PracticeTest {
	return &PracticeTest{
		ID:         row.ID,
		Title:      row.Title,
		Duration:   row.Duration,
		Difficulty: quizgen.Difficulty(row.Difficulty),
		Questions:  docsToQuestions(row.Questions),
	}
}

func questionsToDocs(qs []quizgen.Question) []schema.QuestionDoc {
	docs := make([]schema.QuestionDoc, 0, len(qs))
	for _, q := range qs {
		docs = append(docs, schema.QuestionDoc{
			ID:           q.ID,
			Question:     q.Prompt,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
			Difficulty:   string(q.Difficulty),
		})
	}
	return docs
}

func docsToQuestions(docs []schema.QuestionDoc) []quizgen.Question {
	qs := make([]quizgen.Question, 0, len(docs))
	for _, d := range docs {
		qs = append(qs, quizgen.Question{
			ID:           d.ID,
			Prompt:       d.Question,
			Options:      d.Options,
			CorrectIndex: d.CorrectIndex,
			Explanation:  d.Explanation,
			Difficulty:   quizgen.Difficulty(d.Difficulty),
		})
	}
	return qs
}
