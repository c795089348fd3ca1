package ai

import "errors"

var (
	// ErrGenerationFailed is returned when the provider call fails or the
	// provider rejects the request.
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrEmptyCompletion is returned when the provider answers successfully
	// but produces no usable text.
	ErrEmptyCompletion = errors.New("provider returned empty completion")
)
