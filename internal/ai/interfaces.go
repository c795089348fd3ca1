package ai

import "context"

// TextGenerationProvider produces free-form text from a natural-language
// prompt. Implementations wrap an external model API.
type TextGenerationProvider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
