// SPDX-License-Identifier: Apache-2.0

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/simterview/simterview/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of a settings record or request.
	FieldUserID = "user_id"

	// FieldName targets the display name of a registering user.
	FieldName = "name"

	// FieldEmail targets the login email of a user.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password of an inbound auth request.
	FieldPassword = "password"

	// FieldInterviewType targets the interview format (e.g. technical, behavioral).
	FieldInterviewType = "interview_type"

	// FieldDifficulty targets the requested difficulty level.
	FieldDifficulty = "difficulty"

	// FieldField targets the professional field the interview covers.
	FieldField = "field"

	// FieldLength targets the number of questions in one interview session.
	FieldLength = "length"

	// FieldFeedbackFocus targets the aspect grading feedback should emphasise.
	FieldFeedbackFocus = "feedback_focus"

	// FieldQuestion targets the question text of a grading request.
	FieldQuestion = "question"

	// FieldAnswer targets the answer text of a grading request.
	FieldAnswer = "answer"

	// FieldQuestionsLog targets the accumulated session log in a save request.
	FieldQuestionsLog = "questions_log"
)

// InterviewValidator implements the Validator interface for the
// interview-domain models: User, InterviewSettings, GradeAnswerRequest,
// and SaveLogRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type InterviewValidator struct {
}

// NewInterviewValidator constructs a new InterviewValidator
// and returns it as the Validator interface.
func NewInterviewValidator() Validator {
	return &InterviewValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.User / *models.User
//   - models.InterviewSettings / *models.InterviewSettings
//   - models.GradeAnswerRequest / *models.GradeAnswerRequest
//   - models.SaveLogRequest / *models.SaveLogRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *InterviewValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)
	case models.InterviewSettings:
		return v.validateSettings(ctx, value, fields...)
	case *models.InterviewSettings:
		return v.validateSettings(ctx, *value, fields...)
	case models.GradeAnswerRequest:
		return v.validateGradeAnswerRequest(ctx, value, fields...)
	case *models.GradeAnswerRequest:
		return v.validateGradeAnswerRequest(ctx, *value, fields...)
	case models.SaveLogRequest:
		return v.validateSaveLogRequest(ctx, value, fields...)
	case *models.SaveLogRequest:
		return v.validateSaveLogRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *InterviewValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(user.Name) == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if strings.TrimSpace(user.Email) == "" {
				return ErrEmptyEmail
			}
			// minimal shape check, full verification is delegated to delivery
			if !strings.Contains(user.Email, "@") {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InterviewValidator) validateSettings(_ context.Context, settings models.InterviewSettings, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldInterviewType, FieldDifficulty, FieldField, FieldLength, FieldFeedbackFocus}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if settings.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldInterviewType:
			if strings.TrimSpace(settings.InterviewType) == "" {
				return ErrEmptyInterviewType
			}
		case FieldDifficulty:
			if strings.TrimSpace(settings.Difficulty) == "" {
				return ErrEmptyDifficulty
			}
		case FieldField:
			if strings.TrimSpace(settings.Field) == "" {
				return ErrEmptyField
			}
		case FieldLength:
			if settings.Length <= 0 {
				return ErrInvalidLength
			}
		case FieldFeedbackFocus:
			if strings.TrimSpace(settings.FeedbackFocus) == "" {
				return ErrEmptyFeedbackFocus
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InterviewValidator) validateGradeAnswerRequest(_ context.Context, request models.GradeAnswerRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestion, FieldAnswer}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestion:
			if strings.TrimSpace(request.Question) == "" {
				return ErrEmptyQuestion
			}
		case FieldAnswer:
			if strings.TrimSpace(request.Answer) == "" {
				return ErrEmptyAnswer
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *InterviewValidator) validateSaveLogRequest(_ context.Context, request models.SaveLogRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldQuestionsLog}
	}

	for _, f := range fields {
		switch f {
		case FieldQuestionsLog:
			if len(request.QuestionsLog) == 0 {
				return ErrEmptyQuestionsLog
			}
			for i, entry := range request.QuestionsLog {
				if strings.TrimSpace(entry.Question) == "" {
					return fmt.Errorf("validation error at index %d: %w", i, ErrEmptyLoggedQuestion)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
