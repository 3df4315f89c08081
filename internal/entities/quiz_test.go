package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionType_Valid(t *testing.T) {
	assert.True(t, QuestionTypeSingle.Valid())
	assert.True(t, QuestionTypeMultiple.Valid())
	assert.True(t, QuestionTypeTrueFalse.Valid())
	assert.False(t, QuestionType("essay").Valid())
	assert.False(t, QuestionType("").Valid())
}
