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

// settingsService is the concrete implementation of SettingsService.
// Each user owns at most one settings record; a save always replaces the
// previous one in full.
type settingsService struct {
	settingsRepository store.SettingsRepository
	validator          validators.Validator

	logger *logger.Logger
}

// NewSettingsService constructs a SettingsService backed by the given
// repository.
func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		validator:          validators.NewInterviewValidator(),
		logger:             logger,
	}
}

// SaveSettings validates and persists the user's interview settings,
// replacing any previous record.
//
// Returns the saved settings with server-assigned timestamps or:
//   - ErrInvalidDataProvided if any field is missing or the length is not positive.
//   - A wrapped storage error if the upsert fails.
func (s *settingsService) SaveSettings(ctx context.Context, settings models.InterviewSettings) (models.InterviewSettings, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, settings); err != nil {
		log.Err(err).Int64("user_id", settings.UserID).Msg("invalid interview settings provided")
		return models.InterviewSettings{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.settingsRepository.UpsertSettings(ctx, settings)
	if err != nil {
		log.Err(err).Int64("user_id", settings.UserID).Msg("saving interview settings failed")
		return models.InterviewSettings{}, fmt.Errorf("saving interview settings failed: %w", err)
	}

	return saved, nil
}

// GetSettings returns the user's saved interview settings.
// Propagates store.ErrSettingsNotFound when the user has never saved any.
func (s *settingsService) GetSettings(ctx context.Context, userID int64) (models.InterviewSettings, error) {
	log := logger.FromContext(ctx)

	settings, err := s.settingsRepository.GetSettings(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("fetching interview settings failed")
		return models.InterviewSettings{}, fmt.Errorf("fetching interview settings failed: %w", err)
	}

	return settings, nil
}

// GetLength returns the configured number of questions for one interview
// session. Propagates store.ErrSettingsNotFound when no settings exist.
func (s *settingsService) GetLength(ctx context.Context, userID int64) (int, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return 0, err
	}

	return settings.Length, nil
}
