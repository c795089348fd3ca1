package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	// ErrEmptyGeneration is returned when the text provider answers without
	// error but yields no usable question text.
	ErrEmptyGeneration = errors.New("provider returned empty question")

	// ErrUnparseableVerdict is returned when the grading response starts with
	// neither "Correct" nor "Wrong". This is surfaced to the caller as a hard
	// error rather than silently defaulted to one of the verdicts.
	ErrUnparseableVerdict = errors.New("unparseable grading verdict")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
