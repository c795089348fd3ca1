package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (name, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, name, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, name, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	upsertSettings = `INSERT INTO interview_settings (user_id, interview_type, difficulty, field, length, feedback_focus)
    VALUES ($1, $2, $3, $4, $5, $6)
    ON CONFLICT (user_id) DO UPDATE
    SET interview_type = EXCLUDED.interview_type,
        difficulty     = EXCLUDED.difficulty,
        field          = EXCLUDED.field,
        length         = EXCLUDED.length,
        feedback_focus = EXCLUDED.feedback_focus,
        updated_at     = NOW()
    RETURNING user_id, interview_type, difficulty, field, length, feedback_focus, created_at, updated_at;`

	getSettings = `SELECT user_id, interview_type, difficulty, field, length, feedback_focus, created_at, updated_at
    FROM interview_settings
    WHERE user_id = $1;`

	saveTranscript = `INSERT INTO interview_transcripts (user_id, entries)
    VALUES ($1, $2)
    RETURNING transcript_id, created_at;`
)

// buildSelectTranscriptQuery builds the owner-scoped transcript lookup.
// Filtering on user_id in the query itself guarantees that a transcript
// belonging to another user is indistinguishable from a missing one.
func buildSelectTranscriptQuery(_ context.Context, userID int64, transcriptID int64) (string, []any, error) {
	return sq.Select("transcript_id", "user_id", "entries", "created_at").
		From("interview_transcripts").
		Where(sq.Eq{"transcript_id": transcriptID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
