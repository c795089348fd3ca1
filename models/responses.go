package models

// SaveSettingsResponse acknowledges a successful settings upsert.
type SaveSettingsResponse struct {
	Success bool `json:"success"`
}

// QuestionResponse carries the next generated interview question.
type QuestionResponse struct {
	Question string `json:"question"`
}

// LengthResponse carries the configured session length. The client caches it
// and decides on its own when the session is over; the server never enforces
// the count.
type LengthResponse struct {
	Length int `json:"length"`
}

// SaveLogResponse acknowledges a persisted transcript and returns the
// identifier under which it can be fetched for review.
type SaveLogResponse struct {
	Success     bool  `json:"success"`
	InterviewID int64 `json:"interview_id"`
}
