// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/models"
)

// settingsRepository is the PostgreSQL-backed implementation of
// [SettingsRepository]. The "interview_settings" table keys on user_id, so
// each user owns at most one settings record and a save always replaces the
// previous one.
type settingsRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	logger.Debug().Msg("creating settings repository")
	return &settingsRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertSettings inserts the user's interview settings or overwrites the
// existing record in a single statement. The returned value carries the
// server-assigned timestamps.
func (r *settingsRepository) UpsertSettings(ctx context.Context, settings models.InterviewSettings) (models.InterviewSettings, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, upsertSettings,
		settings.UserID,
		settings.InterviewType,
		settings.Difficulty,
		settings.Field,
		settings.Length,
		settings.FeedbackFocus,
	)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertSettings").
			Str("classification", r.db.classification(err)).Msg("error: row is nil")
		return models.InterviewSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var saved models.InterviewSettings
	if err := row.Scan(
		&saved.UserID,
		&saved.InterviewType,
		&saved.Difficulty,
		&saved.Field,
		&saved.Length,
		&saved.FeedbackFocus,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	); err != nil {
		log.Err(err).Str("func", "*settingsRepository.UpsertSettings").Msg("error: scanning error")
		return models.InterviewSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// GetSettings returns the user's saved interview settings.
// An empty result set is reported as [ErrSettingsNotFound].
func (r *settingsRepository) GetSettings(ctx context.Context, userID int64) (models.InterviewSettings, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getSettings, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*settingsRepository.GetSettings").
			Str("classification", r.db.classification(err)).Msg("error: row is nil")
		return models.InterviewSettings{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var settings models.InterviewSettings
	if err := row.Scan(
		&settings.UserID,
		&settings.InterviewType,
		&settings.Difficulty,
		&settings.Field,
		&settings.Length,
		&settings.FeedbackFocus,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.InterviewSettings{}, ErrSettingsNotFound
		}

		log.Err(err).Str("func", "*settingsRepository.GetSettings").Msg("error: scanning error")
		return models.InterviewSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}
