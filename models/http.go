package models

// NextQuestionRequest is the body of POST /api/get-question. The client sends
// its entire accumulated session log so the generator can steer the provider
// away from questions that were already asked.
type NextQuestionRequest struct {
	QuestionsLog []QuestionLogEntry `json:"questions_log"`
}

// GradeAnswerRequest is the body of POST /api/get-answer. Field names mirror
// the client payload: ix_question is the question that was presented,
// ix_answer the transcribed answer of the candidate.
type GradeAnswerRequest struct {
	Question string `json:"ix_question"`
	Answer   string `json:"ix_answer"`
}

// SaveLogRequest is the body of POST /api/save-log: the full session log
// submitted once, when the client ends the interview.
type SaveLogRequest struct {
	QuestionsLog []QuestionLogEntry `json:"questions_log"`
}
