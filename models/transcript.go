package models

import "time"

// GradeReport is the grading outcome attached to a logged question by the
// client. Exactly one of Correct or Wrong is expected to carry the grader's
// full response text; the other stays empty.
//
// The keys are capitalized on the wire ("Correct"/"Wrong") because the
// grading endpoint answers with exactly one of those two keys and the client
// stores the envelope verbatim in its session log.
type GradeReport struct {
	Correct string `json:"Correct,omitempty"`
	Wrong   string `json:"Wrong,omitempty"`

	// Remarks is read when a transcript is saved but is never populated by
	// the grading flow, so it is effectively always empty. Kept for wire
	// compatibility with the session log format.
	Remarks string `json:"remarks,omitempty"`
}

// QuestionLogEntry is one question/answer/report triple accumulated by the
// client over a running interview session and submitted wholesale when the
// session ends. It exists only for the duration of one session; the server
// never stores it in this raw form.
type QuestionLogEntry struct {
	Question string      `json:"question"`
	Answer   string      `json:"answer"`
	Report   GradeReport `json:"report"`
}

// TranscriptEntry is the reduced, persisted form of a QuestionLogEntry.
// Grade holds "Correct" or "Wrong" depending on which report key was set,
// or an empty string when neither was.
type TranscriptEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Grade    string `json:"grade"`
	Remarks  string `json:"remarks"`
}

// InterviewTranscript is the immutable record of one completed interview
// session. Exactly one row is created per session when the client ends the
// interview; it is never updated afterwards.
type InterviewTranscript struct {
	// TranscriptID is the server-assigned identifier returned to the client
	// at save time and used to fetch the result for review.
	TranscriptID int64 `json:"interview_id"`

	// UserID is the owning user. All reads are scoped by it: a transcript
	// belonging to another user is indistinguishable from a missing one.
	UserID int64 `json:"-"`

	// Entries is the ordered sequence of reduced log entries, stored as a
	// single serialized blob.
	Entries []TranscriptEntry `json:"interview_details"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the InterviewTranscript model.
func (t InterviewTranscript) TableName() string {
	return "interview_transcripts"
}
