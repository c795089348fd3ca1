package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/simterview/simterview/internal/logger"
	"github.com/simterview/simterview/models"
)

func newTestTranscriptRepo(t *testing.T) (*transcriptRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &transcriptRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveTranscript_Success(t *testing.T) {
	repo, mock, db := newTestTranscriptRepo(t)
	defer db.Close()

	ctx := context.Background()
	transcript := models.InterviewTranscript{
		UserID: 42,
		Entries: []models.TranscriptEntry{
			{Question: "Q1", Answer: "A1", Grade: "Correct"},
			{Question: "Q2", Answer: "A2", Grade: "Wrong"},
		},
	}

	now := time.Now()
	rows := sqlmock.NewRows([]string{"transcript_id", "created_at"}).AddRow(int64(9), now)

	mock.ExpectQuery("INSERT INTO interview_transcripts").
		WithArgs(transcript.UserID, sqlmock.AnyArg()).
		WillReturnRows(rows)

	saved, err := repo.SaveTranscript(ctx, transcript)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.TranscriptID != 9 {
		t.Errorf("expected TranscriptID=9, got %d", saved.TranscriptID)
	}
	if len(saved.Entries) != 2 {
		t.Errorf("expected entries to be preserved, got %d", len(saved.Entries))
	}
}

func TestSaveTranscript_DBError(t *testing.T) {
	repo, mock, db := newTestTranscriptRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO interview_transcripts").
		WillReturnError(errors.New("db network error"))

	_, err := repo.SaveTranscript(ctx, models.InterviewTranscript{UserID: 42})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetTranscript_Success(t *testing.T) {
	repo, mock, db := newTestTranscriptRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	entries := []byte(`[{"question":"Q1","answer":"A1","grade":"Correct","remarks":""}]`)

	rows := sqlmock.NewRows([]string{"transcript_id", "user_id", "entries", "created_at"}).
		AddRow(int64(9), int64(42), entries, now)

	mock.ExpectQuery("SELECT (.+) FROM interview_transcripts").
		WithArgs(int64(9), int64(42)).
		WillReturnRows(rows)

	transcript, err := repo.GetTranscript(ctx, 42, 9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transcript.TranscriptID != 9 {
		t.Errorf("expected TranscriptID=9, got %d", transcript.TranscriptID)
	}
	if len(transcript.Entries) != 1 || transcript.Entries[0].Question != "Q1" {
		t.Errorf("expected decoded entries, got %+v", transcript.Entries)
	}
}

func TestGetTranscript_NotFound(t *testing.T) {
	repo, mock, db := newTestTranscriptRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM interview_transcripts").
		WithArgs(int64(9), int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"transcript_id", "user_id", "entries", "created_at"}))

	_, err := repo.GetTranscript(ctx, 42, 9)
	if !errors.Is(err, ErrTranscriptNotFound) {
		t.Fatalf("expected ErrTranscriptNotFound, got %v", err)
	}
}

func TestGetTranscript_CorruptEntries(t *testing.T) {
	repo, mock, db := newTestTranscriptRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"transcript_id", "user_id", "entries", "created_at"}).
		AddRow(int64(9), int64(42), []byte(`not json`), now)

	mock.ExpectQuery("SELECT (.+) FROM interview_transcripts").
		WithArgs(int64(9), int64(42)).
		WillReturnRows(rows)

	_, err := repo.GetTranscript(ctx, 42, 9)
	if !errors.Is(err, ErrDecodingEntries) {
		t.Fatalf("expected ErrDecodingEntries, got %v", err)
	}
}
