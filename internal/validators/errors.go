package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID       = errors.New("invalid user ID")
	ErrEmptyName           = errors.New("name is required")
	ErrEmptyEmail          = errors.New("email is required")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrEmptyPassword       = errors.New("password is required")
	ErrEmptyInterviewType  = errors.New("interview type is required")
	ErrEmptyDifficulty     = errors.New("difficulty is required")
	ErrEmptyField          = errors.New("field is required")
	ErrInvalidLength       = errors.New("invalid interview length")
	ErrEmptyFeedbackFocus  = errors.New("feedback focus is required")
	ErrEmptyQuestion       = errors.New("question is required")
	ErrEmptyAnswer         = errors.New("answer is required")
	ErrEmptyQuestionsLog   = errors.New("questions log cannot be empty")
	ErrEmptyLoggedQuestion = errors.New("logged entry question cannot be empty")
)
