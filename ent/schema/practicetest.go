package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeTest stores one named question bank as a whole document.
// Updates (including per-question appends during generation) rewrite
// the full questions array.
type PracticeTest struct {
	ent.Schema
}

func (PracticeTest) Mixin() []ent.Mixin {
	return []ent.Mixin{TimeMixin{}}
}

// QuestionDoc is the serialized form of a single question for persistence.
// It matches the wire format produced by the generation pipeline.
type QuestionDoc struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctAnswer"`
	Explanation  string   `json:"explanation"`
	Difficulty   string   `json:"difficulty"`
}

func (PracticeTest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Comment("UUID of the test"),
		field.String("title").
			NotEmpty().
			Comment("Display title, e.g. 'Foundational NCLEX Review'"),
		field.String("duration").
			Default("").
			Comment("Display duration label, e.g. '120 mins'"),
		field.String("difficulty").
			Default("").
			Comment("easy, medium or hard; medium and hard are premium-only"),
		field.JSON("questions", []QuestionDoc{}).
			Optional().
			Comment("Ordered question bank"),
	}
}

func (PracticeTest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("difficulty"),
	}
}
