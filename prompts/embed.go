package prompts

import _ "embed"

//go:embed question.md.tmpl
var QuestionTemplate string

//go:embed grade.md.tmpl
var GradeTemplate string
