package quizgen

import "testing"

func validQuestion() *Question {
	return &Question{
		Prompt:       "Which assessment finding indicates digoxin toxicity?",
		Options:      []string{"Visual halos", "Tachycardia", "Hypertension", "Diarrhea only"},
		CorrectIndex: 0,
		Explanation:  "Visual disturbances such as halos are classic early signs of digoxin toxicity.",
		Difficulty:   DifficultyEasy,
	}
}

func TestStructural_Valid(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(validQuestion(), GenerateInput{}); err != nil {
		t.Fatalf("expected valid question, got: %v", err)
	}
}

func TestStructural_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty prompt", func(q *Question) { q.Prompt = "" }},
		{"too few options", func(q *Question) { q.Options = q.Options[:3] }},
		{"too many options", func(q *Question) { q.Options = append(q.Options, "extra") }},
		{"empty option", func(q *Question) { q.Options[2] = "" }},
		{"duplicate options", func(q *Question) { q.Options[1] = q.Options[0] }},
		{"index too low", func(q *Question) { q.CorrectIndex = -1 }},
		{"index too high", func(q *Question) { q.CorrectIndex = 4 }},
		{"empty explanation", func(q *Question) { q.Explanation = "" }},
	}

	v := &StructuralValidator{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := validQuestion()
			tc.mutate(q)
			if err := v.Validate(q, GenerateInput{}); err == nil {
				t.Errorf("expected rejection")
			}
		})
	}
}

func TestDifficulty_Valid(t *testing.T) {
	for _, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		if !d.Valid() {
			t.Errorf("%q should be valid", d)
		}
	}
	if Difficulty("extreme").Valid() {
		t.Errorf("unknown difficulty should be invalid")
	}
}
