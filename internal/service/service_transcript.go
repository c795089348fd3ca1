// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/internal/store"
	"github.com/simterview/simterview/internal/validators"
	"github.com/simterview/simterview/models"
)

// transcriptService is the concrete implementation of TranscriptService.
type transcriptService struct {
	transcriptRepository store.TranscriptRepository
	validator            validators.Validator

	logger *logger.Logger
}

// NewTranscriptService constructs a TranscriptService backed by the given
// repository.
func NewTranscriptService(transcriptRepository store.TranscriptRepository, logger *logger.Logger) TranscriptService {
	return &transcriptService{
		transcriptRepository: transcriptRepository,
		validator:            validators.NewInterviewValidator(),
		logger:               logger,
	}
}

// SaveTranscript reduces the session log to its persisted form and stores it
// as one transcript row. The save is all-or-nothing: a failure persists no
// entries at all.
//
// Each log entry is reduced to question, answer, grade, and remarks. The
// grade is "Correct" when the report's Correct key is set, otherwise "Wrong"
// when the Wrong key is set, otherwise empty. Remarks are copied from the
// report as-is.
//
// Returns the stored transcript carrying its server-assigned ID or:
//   - ErrInvalidDataProvided if the log is empty or an entry lacks a question.
//   - A wrapped storage error if the insert fails.
func (t *transcriptService) SaveTranscript(ctx context.Context, userID int64, questionsLog []models.QuestionLogEntry) (models.InterviewTranscript, error) {
	log := logger.FromContext(ctx)

	request := models.SaveLogRequest{QuestionsLog: questionsLog}
	if err := t.validator.Validate(ctx, request); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("invalid questions log provided")
		return models.InterviewTranscript{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entries := make([]models.TranscriptEntry, 0, len(questionsLog))
	for _, logged := range questionsLog {
		entries = append(entries, models.TranscriptEntry{
			Question: logged.Question,
			Answer:   logged.Answer,
			Grade:    reduceGrade(logged.Report),
			Remarks:  logged.Report.Remarks,
		})
	}

	transcript := models.InterviewTranscript{
		UserID:  userID,
		Entries: entries,
	}

	saved, err := t.transcriptRepository.SaveTranscript(ctx, transcript)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int("entries", len(entries)).Msg("saving transcript failed")
		return models.InterviewTranscript{}, fmt.Errorf("saving transcript failed: %w", err)
	}

	return saved, nil
}

// GetTranscript returns the transcript identified by transcriptID, provided
// it belongs to userID. Propagates store.ErrTranscriptNotFound for missing
// and foreign transcripts alike.
func (t *transcriptService) GetTranscript(ctx context.Context, userID int64, transcriptID int64) (models.InterviewTranscript, error) {
	log := logger.FromContext(ctx)

	transcript, err := t.transcriptRepository.GetTranscript(ctx, userID, transcriptID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Int64("transcript_id", transcriptID).Msg("fetching transcript failed")
		return models.InterviewTranscript{}, fmt.Errorf("fetching transcript failed: %w", err)
	}

	return transcript, nil
}

// reduceGrade collapses a grade report to its stored tag. The Correct key
// wins when both are set; an entry with neither key keeps an empty grade.
func reduceGrade(report models.GradeReport) string {
	switch {
	case report.Correct != "":
		return string(models.VerdictCorrect)
	case report.Wrong != "":
		return string(models.VerdictWrong)
	default:
		return ""
	}
}
