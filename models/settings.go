package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// InterviewSettings is the single active interview configuration of a user.
// Exactly one row may exist per user; saving again fully replaces the
// previous values (upsert, never merge).
type InterviewSettings struct {
	// UserID is the owning user. Not exposed via JSON; ownership is always
	// derived from the authenticated identity, never from request data.
	UserID int64 `json:"-"`

	// InterviewType is the kind of interview to simulate
	// (e.g. "technical", "behavioral").
	InterviewType string `json:"interviewType"`

	// Difficulty is the requested question difficulty
	// (e.g. "easy", "medium", "hard").
	Difficulty string `json:"difficulty"`

	// Field is the professional area the questions should cover
	// (e.g. "backend", "data science").
	Field string `json:"field"`

	// Length is the number of questions the client intends to ask in one
	// session. Enforcement is advisory and client-side only: the server
	// accepts transcripts of any non-zero length at save time.
	Length int `json:"length"`

	// FeedbackFocus is what the grading feedback should concentrate on
	// (e.g. "correctness", "communication").
	FeedbackFocus string `json:"feedbackFocus"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// UnmarshalJSON decodes interview settings while accepting the "length"
// field either as a JSON number or as a numeric string. Browser clients
// send the value straight out of a form input, which arrives quoted.
func (s *InterviewSettings) UnmarshalJSON(data []byte) error {
	type alias InterviewSettings
	aux := struct {
		Length json.RawMessage `json:"length"`
		*alias
	}{
		alias: (*alias)(s),
	}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	raw := strings.TrimSpace(string(aux.Length))
	if raw == "" || raw == "null" {
		s.Length = 0
		return nil
	}
	raw = strings.Trim(raw, `"`)

	length, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid length value %q: %w", raw, err)
	}
	s.Length = length

	return nil
}

// TableName returns the name of the database table
// associated with the InterviewSettings model.
func (s InterviewSettings) TableName() string {
	return "interview_settings"
}
