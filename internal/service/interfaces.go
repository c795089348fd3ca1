package service

import (
	"context"

	"github.com/simterview/simterview/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SettingsService manages the single interview settings record each user owns.
type SettingsService interface {
	SaveSettings(ctx context.Context, settings models.InterviewSettings) (models.InterviewSettings, error)
	GetSettings(ctx context.Context, userID int64) (models.InterviewSettings, error)
	GetLength(ctx context.Context, userID int64) (int, error)
}

// InterviewService drives a running interview session: it generates the next
// question from the user's settings and grades submitted answers. It holds no
// session state of its own; the asked-question history arrives with every call.
type InterviewService interface {
	NextQuestion(ctx context.Context, userID int64, askedQuestions []string) (string, error)
	GradeAnswer(ctx context.Context, question string, answer string) (models.GradeResult, error)
}

// TranscriptService persists finished interview sessions and serves
// owner-scoped reads of past results.
type TranscriptService interface {
	SaveTranscript(ctx context.Context, userID int64, questionsLog []models.QuestionLogEntry) (models.InterviewTranscript, error)
	GetTranscript(ctx context.Context, userID int64, transcriptID int64) (models.InterviewTranscript, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
