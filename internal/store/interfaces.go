package store

import (
	"context"

	"github.com/simterview/simterview/models"
)

// UserRepository persists and retrieves user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SettingsRepository persists one interview settings record per user.
type SettingsRepository interface {
	UpsertSettings(ctx context.Context, settings models.InterviewSettings) (models.InterviewSettings, error)
	GetSettings(ctx context.Context, userID int64) (models.InterviewSettings, error)
}

// TranscriptRepository persists finished interview transcripts and serves
// owner-scoped reads.
type TranscriptRepository interface {
	SaveTranscript(ctx context.Context, transcript models.InterviewTranscript) (models.InterviewTranscript, error)
	GetTranscript(ctx context.Context, userID int64, transcriptID int64) (models.InterviewTranscript, error)
}
