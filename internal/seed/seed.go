// Package seed holds question banks maintained as Go source.
package seed

import "github.com/RyanZhou416/QuizForge/internal/document"

// LowerExtremity returns a fresh copy of the lower extremity bank, ready for loader.Populate.
func LowerExtremity() *document.Document {
	meta := make(map[string]any, len(LowerExtremityMeta))
	for k, v := range LowerExtremityMeta {
		meta[k] = v
	}

	questions := make([]document.Question, len(lowerExtremityQuestions))
	for i, q := range lowerExtremityQuestions {
		q.Options = append([]document.Option(nil), q.Options...)
		questions[i] = q
	}

	return &document.Document{Meta: meta, Questions: questions}
}

func text(s string) *string {
	return &s
}

// option builds an answer choice; exp is either empty or (explanation_zh, explanation_en).
func option(label, zh, en string, correct bool, exp ...string) document.Option {
	o := document.Option{
		Label:     text(label),
		TextZh:    text(zh),
		TextEn:    text(en),
		IsCorrect: &correct,
	}
	if len(exp) == 2 {
		o.ExplanationZh = text(exp[0])
		o.ExplanationEn = text(exp[1])
	}
	return o
}
