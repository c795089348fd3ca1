// Package prompts holds the embedded prompt templates sent to the text
// generation provider and the helpers that render them.
package prompts

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/simterview/simterview/models"
)

var (
	questionTmpl = template.Must(template.New("question").Parse(QuestionTemplate))
	gradeTmpl    = template.Must(template.New("grade").Parse(GradeTemplate))
)

// NextQuestion renders the prompt asking for the next interview question.
// The asked list is advisory: it instructs the model to avoid repeats but
// does not guarantee novelty.
func NextQuestion(settings models.InterviewSettings, asked []string) (string, error) {
	data := struct {
		models.InterviewSettings
		Asked []string
	}{InterviewSettings: settings, Asked: asked}

	var b strings.Builder
	if err := questionTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render question prompt: %w", err)
	}

	return b.String(), nil
}

// GradeAnswer renders the prompt asking for a Correct/Wrong verdict on the
// given question and answer pair.
func GradeAnswer(question string, answer string) (string, error) {
	data := struct {
		Question string
		Answer   string
	}{Question: question, Answer: answer}

	var b strings.Builder
	if err := gradeTmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render grade prompt: %w", err)
	}

	return b.String(), nil
}
