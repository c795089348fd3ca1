package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/models"
)

func newTestSettingsRepo(t *testing.T) (*settingsRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &settingsRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func settingsColumns() []string {
	return []string{"user_id", "interview_type", "difficulty", "field", "length", "feedback_focus", "created_at", "updated_at"}
}

func TestUpsertSettings_Success(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	ctx := context.Background()
	settings := models.InterviewSettings{
		UserID:        42,
		InterviewType: "technical",
		Difficulty:    "senior",
		Field:         "backend",
		Length:        5,
		FeedbackFocus: "system design",
	}

	now := time.Now()
	rows := sqlmock.NewRows(settingsColumns()).
		AddRow(settings.UserID, settings.InterviewType, settings.Difficulty, settings.Field, settings.Length, settings.FeedbackFocus, now, now)

	mock.ExpectQuery("INSERT INTO interview_settings").
		WithArgs(settings.UserID, settings.InterviewType, settings.Difficulty, settings.Field, settings.Length, settings.FeedbackFocus).
		WillReturnRows(rows)

	saved, err := repo.UpsertSettings(ctx, settings)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.UserID != settings.UserID {
		t.Errorf("expected UserID=%d, got %d", settings.UserID, saved.UserID)
	}
	if saved.Length != 5 {
		t.Errorf("expected Length=5, got %d", saved.Length)
	}
	if saved.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be populated")
	}
}

func TestUpsertSettings_DBError(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO interview_settings").
		WillReturnError(errors.New("db network error"))

	_, err := repo.UpsertSettings(ctx, models.InterviewSettings{UserID: 42})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestUpsertSettings_RetryableDriverError(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO interview_settings").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.UpsertSettings(ctx, models.InterviewSettings{UserID: 42})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if got := repo.db.errorClassificator.Classify(err); got != Retryable {
		t.Fatalf("expected connection failure to classify as Retryable, got %v", got)
	}
}

func TestGetSettings_Success(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(settingsColumns()).
		AddRow(int64(42), "behavioral", "junior", "frontend", 3, "communication", now, now)

	mock.ExpectQuery("SELECT (.+) FROM interview_settings").
		WithArgs(int64(42)).
		WillReturnRows(rows)

	settings, err := repo.GetSettings(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if settings.InterviewType != "behavioral" {
		t.Errorf("expected interview type 'behavioral', got %q", settings.InterviewType)
	}
	if settings.Length != 3 {
		t.Errorf("expected Length=3, got %d", settings.Length)
	}
}

func TestGetSettings_NotFound(t *testing.T) {
	repo, mock, db := newTestSettingsRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM interview_settings").
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(settingsColumns()))

	_, err := repo.GetSettings(ctx, 42)
	if !errors.Is(err, ErrSettingsNotFound) {
		t.Fatalf("expected ErrSettingsNotFound, got %v", err)
	}
}
