package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const plainDoc = `{
  "meta": {"title": "T"},
  "questions": [
    {
      "type": "single",
      "question_zh": "Q?",
      "options": [
        {"text_zh": "A1", "is_correct": true},
        {"text_zh": "A2"}
      ]
    }
  ]
}`

func TestStripFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "no fence", input: `{"a":1}`, want: `{"a":1}`},
		{name: "language tagged fence", input: "```json\n{\"a\":1}\n```", want: "{\"a\":1}\n"},
		{name: "bare fence with padding", input: "\n  ```\n{\"a\":1}\n```  \n", want: "{\"a\":1}\n"},
		{name: "only leading fence", input: "```\n{\"a\":1}", want: `{"a":1}`},
		{name: "only trailing fence", input: "{\"a\":1}```", want: `{"a":1}`},
		{name: "fence without newline", input: "```", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(StripFence([]byte(tt.input))))
		})
	}
}

func TestParse_FencedMatchesUnwrapped(t *testing.T) {
	plain, err := Parse([]byte(plainDoc), FormatJSON)
	require.NoError(t, err)

	fenced, err := Parse([]byte("```json\n"+plainDoc+"\n```\n"), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, plain, fenced)
}

func TestParse_KeepsAbsentFieldsNil(t *testing.T) {
	doc, err := Parse([]byte(plainDoc), FormatJSON)
	require.NoError(t, err)

	require.Len(t, doc.Questions, 1)
	q := doc.Questions[0]
	assert.Equal(t, "single", q.Type)
	assert.Equal(t, "Q?", *q.QuestionZh)
	assert.Nil(t, q.QuestionEn)
	assert.Nil(t, q.ImagePath)

	require.Len(t, q.Options, 2)
	assert.Nil(t, q.Options[0].Label)
	assert.True(t, *q.Options[0].IsCorrect)
	assert.Nil(t, q.Options[1].IsCorrect)
}

func TestParse_RejectsMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"questions": [`), FormatJSON)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}

func TestParse_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "top level array", doc: `[]`},
		{name: "questions not a list", doc: `{"questions": {"type": "single"}}`},
		{name: "unknown question type", doc: `{"questions": [{"type": "essay", "question_zh": "x"}]}`},
		{name: "non string text", doc: `{"questions": [{"question_zh": 42}]}`},
		{name: "correctness not boolean", doc: `{"questions": [{"options": [{"text_zh": "a", "is_correct": "yes"}]}]}`},
		{name: "nested meta value", doc: `{"meta": {"title": {"zh": "x"}}, "questions": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc), FormatJSON)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.NotEmpty(t, verr.Problems)
		})
	}
}

func TestParse_NullsAreTolerated(t *testing.T) {
	doc, err := Parse([]byte(`{"questions": [{"type": null, "question_zh": null, "question_en": "Q", "options": [{"label": null, "text_en": "a", "is_correct": null}]}]}`), FormatJSON)
	require.NoError(t, err)

	q := doc.Questions[0]
	assert.Equal(t, "", q.Type)
	assert.Nil(t, q.QuestionZh)
	assert.Nil(t, q.Options[0].Label)
	assert.Nil(t, q.Options[0].IsCorrect)
}

func TestMetaEntries(t *testing.T) {
	doc, err := Parse([]byte(`{"meta": {"version": 2.0, "title": "T", "count": 3, "draft": true, "author": null}}`), FormatJSON)
	require.NoError(t, err)

	entries := doc.MetaEntries()
	require.Len(t, entries, 5)

	got := map[string]*string{}
	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key)
		got[e.Key] = e.Value
	}

	assert.Equal(t, []string{"author", "count", "draft", "title", "version"}, keys)
	assert.Nil(t, got["author"])
	assert.Equal(t, "3", *got["count"])
	assert.Equal(t, "1", *got["draft"])
	assert.Equal(t, "T", *got["title"])
	assert.Equal(t, "2.0", *got["version"])
}

func TestMetaEntries_YAMLKeepsSpelling(t *testing.T) {
	raw := "meta:\n  version: 2.0\n  ratio: 1.50\n  count: 3\n  draft: true\n  title: T\n  author: ~\n" +
		"questions:\n  - question_en: Q?\n    options: []\n"
	doc, err := Parse([]byte(raw), FormatYAML)
	require.NoError(t, err)

	got := map[string]*string{}
	for _, e := range doc.MetaEntries() {
		got[e.Key] = e.Value
	}

	require.Len(t, got, 6)
	assert.Equal(t, "2.0", *got["version"])
	assert.Equal(t, "1.50", *got["ratio"])
	assert.Equal(t, "3", *got["count"])
	assert.Equal(t, "1", *got["draft"])
	assert.Equal(t, "T", *got["title"])
	assert.Contains(t, got, "author")
	assert.Nil(t, got["author"])
}

func TestFormatForPath(t *testing.T) {
	f, ok := FormatForPath("bank.JSON")
	assert.True(t, ok)
	assert.Equal(t, FormatJSON, f)

	f, ok = FormatForPath("dir/bank.yml")
	assert.True(t, ok)
	assert.Equal(t, FormatYAML, f)

	_, ok = FormatForPath("bank.db")
	assert.False(t, ok)
	assert.False(t, HasDocumentExtension("notes.txt"))
}

func TestLoad_FencedFile(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "fenced.json"))
	require.NoError(t, err)

	assert.Equal(t, "Fenced", doc.Meta["title"])
	require.Len(t, doc.Questions, 1)
	assert.Len(t, doc.Questions[0].Options, 2)
}

func TestLoad_YAML(t *testing.T) {
	doc, err := Load(filepath.Join("testdata", "bank.yaml"))
	require.NoError(t, err)

	entries := doc.MetaEntries()
	require.Len(t, entries, 3)
	assert.Equal(t, "draft", entries[0].Key)
	assert.Equal(t, "1", *entries[0].Value)
	assert.Equal(t, "3", *entries[2].Value)

	require.Len(t, doc.Questions, 1)
	q := doc.Questions[0]
	assert.Equal(t, "truefalse", q.Type)
	assert.Nil(t, q.QuestionZh)
	assert.Equal(t, "True", *q.Options[0].Label)
	assert.True(t, *q.Options[0].IsCorrect)
	assert.Nil(t, q.Options[1].IsCorrect)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
