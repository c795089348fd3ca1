// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/models"
)

// transcriptRepository is the PostgreSQL-backed implementation of
// [TranscriptRepository]. Transcript entries are stored as a single JSONB
// document, so a save is atomic: either the whole transcript lands or
// nothing does.
type transcriptRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTranscriptRepository constructs a [TranscriptRepository] backed by the
// provided database connection and logger.
func NewTranscriptRepository(db *DB, logger *logger.Logger) TranscriptRepository {
	logger.Debug().Msg("creating transcript repository")
	return &transcriptRepository{
		db:     db,
		logger: logger,
	}
}

// SaveTranscript persists a finished interview transcript and returns it with
// the server-assigned TranscriptID and CreatedAt.
func (r *transcriptRepository) SaveTranscript(ctx context.Context, transcript models.InterviewTranscript) (models.InterviewTranscript, error) {
	log := logger.FromContext(ctx)

	entries, err := json.Marshal(transcript.Entries)
	if err != nil {
		log.Err(err).Str("func", "*transcriptRepository.SaveTranscript").Msg("error: encoding entries")
		return models.InterviewTranscript{}, fmt.Errorf("%w: %w", ErrEncodingEntries, err)
	}

	row := r.db.QueryRowContext(ctx, saveTranscript, transcript.UserID, entries)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*transcriptRepository.SaveTranscript").
			Str("classification", r.db.classification(err)).Msg("error: row is nil")
		return models.InterviewTranscript{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&transcript.TranscriptID, &transcript.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InterviewTranscript{}, ErrTranscriptNotSaved
		}

		log.Err(err).Str("func", "*transcriptRepository.SaveTranscript").Msg("error: scanning error")
		return models.InterviewTranscript{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return transcript, nil
}

// GetTranscript returns the transcript identified by transcriptID, provided
// it belongs to userID. A transcript owned by another user is reported as
// [ErrTranscriptNotFound], same as a missing one.
func (r *transcriptRepository) GetTranscript(ctx context.Context, userID int64, transcriptID int64) (models.InterviewTranscript, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectTranscriptQuery(ctx, userID, transcriptID)
	if err != nil {
		log.Err(err).Str("func", "*transcriptRepository.GetTranscript").Msg("error: building query")
		return models.InterviewTranscript{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*transcriptRepository.GetTranscript").
			Str("classification", r.db.classification(err)).Msg("error: row is nil")
		return models.InterviewTranscript{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var transcript models.InterviewTranscript
	var rawEntries []byte
	if err := row.Scan(&transcript.TranscriptID, &transcript.UserID, &rawEntries, &transcript.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InterviewTranscript{}, ErrTranscriptNotFound
		}

		log.Err(err).Str("func", "*transcriptRepository.GetTranscript").Msg("error: scanning error")
		return models.InterviewTranscript{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err := json.Unmarshal(rawEntries, &transcript.Entries); err != nil {
		log.Err(err).Str("func", "*transcriptRepository.GetTranscript").Msg("error: decoding entries")
		return models.InterviewTranscript{}, fmt.Errorf("%w: %w", ErrDecodingEntries, err)
	}

	return transcript, nil
}
