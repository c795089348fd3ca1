// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/simterview/simterview/internal/ai"
	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/internal/store"
	"github.com/simterview/simterview/internal/validators"
	"github.com/simterview/simterview/models"
	"github.com/simterview/simterview/prompts"
)

// interviewService is the concrete implementation of InterviewService.
//
// It is deliberately stateless: the list of already-asked questions is
// supplied by the caller on every NextQuestion call, so any number of server
// instances can serve the same running session.
type interviewService struct {
	settingsRepository store.SettingsRepository
	provider           ai.TextGenerationProvider
	validator          validators.Validator

	logger *logger.Logger
}

// NewInterviewService constructs an InterviewService that reads settings from
// the given repository and generates text through the given provider.
func NewInterviewService(settingsRepository store.SettingsRepository, provider ai.TextGenerationProvider, logger *logger.Logger) InterviewService {
	return &interviewService{
		settingsRepository: settingsRepository,
		provider:           provider,
		validator:          validators.NewInterviewValidator(),
		logger:             logger,
	}
}

// NextQuestion produces the next interview question for the user.
//
// It fetches the user's settings, renders a prompt embedding the interview
// parameters and, when history is non-empty, the list of already-asked
// questions, then asks the provider. Avoiding repeats is advisory only: the
// provider may still produce a duplicate and no post-hoc deduplication is done.
//
// Returns the question text trimmed of surrounding whitespace or:
//   - store.ErrSettingsNotFound (wrapped) if the user has no saved settings.
//   - ErrEmptyGeneration if the provider yields only whitespace.
//   - A wrapped provider error on generation failure.
func (s *interviewService) NextQuestion(ctx context.Context, userID int64, askedQuestions []string) (string, error) {
	log := logger.FromContext(ctx)

	settings, err := s.settingsRepository.GetSettings(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("fetching settings for question generation failed")
		return "", fmt.Errorf("fetching settings for question generation failed: %w", err)
	}

	prompt, err := prompts.NextQuestion(settings, askedQuestions)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("building question prompt failed")
		return "", fmt.Errorf("building question prompt failed: %w", err)
	}

	generated, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("question generation failed")
		return "", fmt.Errorf("question generation failed: %w", err)
	}

	question := strings.TrimSpace(generated)
	if question == "" {
		log.Error().Int64("user_id", userID).Msg("provider returned empty question")
		return "", ErrEmptyGeneration
	}

	return question, nil
}

// GradeAnswer classifies the candidate's answer to one question.
//
// The prompt instructs the provider to begin its reply with the literal token
// "Correct" or "Wrong" followed by a one-line rationale; the reply is parsed
// by case-insensitive prefix match on those two tokens. The full response
// text (token included) is carried in the result.
//
// Returns the parsed result or:
//   - ErrInvalidDataProvided if question or answer is missing/empty.
//   - ErrUnparseableVerdict if the reply starts with neither token.
//   - A wrapped provider error on generation failure.
func (s *interviewService) GradeAnswer(ctx context.Context, question string, answer string) (models.GradeResult, error) {
	log := logger.FromContext(ctx)

	request := models.GradeAnswerRequest{Question: question, Answer: answer}
	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Msg("invalid grading request")
		return models.GradeResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	prompt, err := prompts.GradeAnswer(question, answer)
	if err != nil {
		log.Err(err).Msg("building grade prompt failed")
		return models.GradeResult{}, fmt.Errorf("building grade prompt failed: %w", err)
	}

	generated, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		log.Err(err).Msg("verdict generation failed")
		return models.GradeResult{}, fmt.Errorf("verdict generation failed: %w", err)
	}

	response := strings.TrimSpace(generated)
	lowered := strings.ToLower(response)

	switch {
	case strings.HasPrefix(lowered, strings.ToLower(string(models.VerdictCorrect))):
		return models.GradeResult{Verdict: models.VerdictCorrect, Text: response}, nil
	case strings.HasPrefix(lowered, strings.ToLower(string(models.VerdictWrong))):
		return models.GradeResult{Verdict: models.VerdictWrong, Text: response}, nil
	default:
		log.Error().Str("response", response).Msg("grading response starts with neither verdict token")
		return models.GradeResult{}, ErrUnparseableVerdict
	}
}
