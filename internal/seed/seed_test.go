package seed

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanZhou416/QuizForge/internal/bank"
	"github.com/RyanZhou416/QuizForge/internal/database"
	"github.com/RyanZhou416/QuizForge/internal/entities"
	"github.com/RyanZhou416/QuizForge/internal/loader"
)

func TestLowerExtremity_Shape(t *testing.T) {
	doc := LowerExtremity()

	require.Len(t, doc.Questions, 64)
	assert.Equal(t, "2.0", doc.Meta["version"])
	assert.Len(t, doc.Meta, 4)

	topics := map[string]int{}
	types := map[string]int{}
	for _, q := range doc.Questions {
		require.NotNil(t, q.Topic)
		topics[*q.Topic]++
		types[q.Type]++

		assert.True(t, entities.QuestionType(q.Type).Valid(), q.Type)
		require.NotNil(t, q.QuestionZh)
		require.NotNil(t, q.QuestionEn)
		assert.NotEmpty(t, q.Options, *q.QuestionEn)
	}

	assert.Equal(t, map[string]int{
		"Ankle & Lower Leg":       23,
		"Knee":                    23,
		"Hip & Thigh":             12,
		"General Injury Concepts": 6,
	}, topics)
	assert.Equal(t, map[string]int{"single": 44, "multiple": 15, "truefalse": 5}, types)
}

func TestLowerExtremity_EveryQuestionHasACorrectOption(t *testing.T) {
	for _, q := range LowerExtremity().Questions {
		correct := 0
		for _, o := range q.Options {
			require.NotNil(t, o.IsCorrect)
			if *o.IsCorrect {
				correct++
			}
		}
		assert.Positive(t, correct, *q.QuestionEn)
		if q.Type == string(entities.QuestionTypeSingle) || q.Type == string(entities.QuestionTypeTrueFalse) {
			assert.Equal(t, 1, correct, *q.QuestionEn)
		}
	}
}

func TestLowerExtremity_ReturnsIndependentCopies(t *testing.T) {
	first := LowerExtremity()
	first.Meta["version"] = "changed"
	first.Questions[0].Options[0] = option("Z", "z", "z", true)

	second := LowerExtremity()
	assert.Equal(t, "2.0", second.Meta["version"])
	assert.Equal(t, "A", *second.Questions[0].Options[0].Label)
}

func TestOption_Explanations(t *testing.T) {
	plain := option("A", "甲", "a", false)
	assert.Nil(t, plain.ExplanationZh)
	assert.Nil(t, plain.ExplanationEn)

	explained := option("B", "乙", "b", true, "解释", "why")
	assert.Equal(t, "解释", *explained.ExplanationZh)
	assert.Equal(t, "why", *explained.ExplanationEn)
	assert.True(t, *explained.IsCorrect)
}

func TestLowerExtremity_Populate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lower_extremity_injuries.db")
	db, err := database.Create(path, database.Options{})
	require.NoError(t, err)

	stats, err := loader.Populate(db, LowerExtremity(), nil, nil)
	require.NoError(t, err)
	require.NoError(t, db.Close())
	assert.Equal(t, 64, stats.Questions)
	assert.Equal(t, 246, stats.Options)

	r, err := bank.Open(path)
	require.NoError(t, err)
	defer r.Close()

	meta, err := r.Meta()
	require.NoError(t, err)
	assert.Equal(t, LowerExtremityMeta, meta)

	topics, err := r.Topics()
	require.NoError(t, err)
	assert.Equal(t, []string{"Ankle & Lower Leg", "General Injury Concepts", "Hip & Thigh", "Knee"}, topics)

	first, err := r.Question(1)
	require.NoError(t, err)
	assert.Equal(t, "What is the MOST common sport injury?", *first.QuestionEn)
	assert.Equal(t, []string{"A", "B", "C", "D"}, []string{
		first.Options[0].Label, first.Options[1].Label, first.Options[2].Label, first.Options[3].Label,
	})
	assert.True(t, first.Options[1].IsCorrect)
	assert.Nil(t, first.ImagePath)
}
