package models

// Verdict is the grader's binary classification of a submitted answer.
type Verdict string

const (
	VerdictCorrect Verdict = "Correct"
	VerdictWrong   Verdict = "Wrong"
)

// GradeResult is the parsed outcome of one grading call: the verdict tag and
// the provider's full response text (verdict token plus one-line rationale).
type GradeResult struct {
	Verdict Verdict
	Text    string
}

// Envelope renders the result in the wire format consumed by the client:
// a single-key object whose key is the verdict token and whose value is the
// full response text.
func (g GradeResult) Envelope() map[string]string {
	return map[string]string{string(g.Verdict): g.Text}
}
