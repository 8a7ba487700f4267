package quizgen

// Config controls the behavior of the generation pipeline.
type Config struct {
	// Validators is the ordered list of validators run on every generated
	// question. They execute in order; the first failure rejects the item.
	Validators []Validator

	// MaxTokens is the token budget per question response.
	MaxTokens int

	// Temperature controls model output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
		},
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
