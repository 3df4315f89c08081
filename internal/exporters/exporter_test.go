package exporters

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RyanZhou416/QuizForge/internal/bank"
	"github.com/RyanZhou416/QuizForge/internal/document"
	"github.com/RyanZhou416/QuizForge/internal/loader"
)

const sourceDoc = `{
  "meta": {"title": "Hip & Thigh", "version": "2.0", "note": null},
  "questions": [
    {"type": "multiple", "topic": "Hip & Thigh", "difficulty": "medium",
     "question_zh": "哪些是髋部屈肌？", "question_en": "Which are hip flexors?",
     "image_path": "data:image/png;base64,iVBORw0KGgo=",
     "explanation_en": "Iliopsoas and rectus femoris.",
     "options": [
       {"text_zh": "髂腰肌", "text_en": "Iliopsoas", "is_correct": true},
       {"text_zh": "股直肌", "text_en": "Rectus femoris", "is_correct": true},
       {"text_zh": "臀大肌", "text_en": "Gluteus maximus", "explanation_zh": "伸髋"}
     ]},
    {"type": "truefalse", "question_en": "The femur is the longest bone.",
     "options": [{"label": "True", "text_en": "True", "is_correct": true}, {"label": "False", "text_en": "False"}]}
  ]
}`

type fakeReader struct {
	meta      map[string]*string
	questions []bank.QuestionDetail
	err       error
}

func (f *fakeReader) MetaValues() (map[string]*string, error)      { return f.meta, f.err }
func (f *fakeReader) AllQuestions() ([]bank.QuestionDetail, error) { return f.questions, f.err }

func convert(t *testing.T, dir, name, content string) string {
	t.Helper()
	docPath := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(docPath, []byte(content), 0o644))
	result, err := loader.New(loader.Config{}, nil).Convert(docPath, "")
	require.NoError(t, err)
	return result.StorePath
}

func readAll(t *testing.T, store string) (map[string]*string, []bank.QuestionDetail) {
	t.Helper()
	r, err := bank.Open(store)
	require.NoError(t, err)
	defer r.Close()
	meta, err := r.MetaValues()
	require.NoError(t, err)
	all, err := r.AllQuestions()
	require.NoError(t, err)
	return meta, all
}

func TestBuildDocument(t *testing.T) {
	topic := "Knee"
	title := "T"
	doc := BuildDocument(map[string]*string{"title": &title, "note": nil}, []bank.QuestionDetail{{
		QuestionSummary: bank.QuestionSummary{ID: 7, Type: "single", Topic: &topic, QuestionZh: "Q?"},
		Options: []bank.Option{
			{Label: "A", TextZh: "A1", IsCorrect: true},
			{Label: "B", TextZh: "A2"},
		},
	}})

	assert.Equal(t, map[string]any{"title": "T", "note": nil}, doc.Meta)
	require.Len(t, doc.Questions, 1)
	q := doc.Questions[0]
	assert.Equal(t, "single", q.Type)
	assert.Equal(t, "Knee", *q.Topic)
	assert.Equal(t, "Q?", *q.QuestionZh)
	assert.Nil(t, q.QuestionEn)
	require.Len(t, q.Options, 2)
	assert.Equal(t, "B", *q.Options[1].Label)
	assert.False(t, *q.Options[1].IsCorrect)

	assert.Nil(t, BuildDocument(nil, nil).Meta)
}

func TestEncode_JSONKeepsText(t *testing.T) {
	topic := "Hip & Thigh"
	zh := "髋关节"
	doc := &document.Document{Questions: []document.Question{{Type: "single", Topic: &topic, QuestionZh: &zh}}}

	data, err := Encode(doc, document.FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"topic": "Hip & Thigh"`)
	assert.Contains(t, string(data), `"question_zh": "髋关节"`)
	assert.NotContains(t, string(data), "question_en")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
}

func TestDocumentExporter_RoundTrip(t *testing.T) {
	for _, name := range []string{"exported.json", "exported.yaml"} {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			store := convert(t, dir, "source.json", sourceDoc)
			metaBefore, before := readAll(t, store)

			r, err := bank.Open(store)
			require.NoError(t, err)
			out := filepath.Join(dir, "export", name)
			result, err := NewDocumentExporter(out).Export(r)
			require.NoError(t, r.Close())
			require.NoError(t, err)
			assert.Equal(t, ExportResult{Path: out, Questions: 2, Options: 5}, result)

			raw, err := os.ReadFile(out)
			require.NoError(t, err)
			reimported := convert(t, dir, "again"+filepath.Ext(name), string(raw))

			metaAfter, after := readAll(t, reimported)
			require.Contains(t, metaBefore, "note")
			assert.Nil(t, metaBefore["note"])
			assert.Equal(t, metaBefore, metaAfter)
			assert.Equal(t, before, after)
		})
	}
}

func TestDocumentExporter_ReadError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.json")
	_, err := NewDocumentExporter(out).Export(&fakeReader{err: assert.AnError})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoFileExists(t, out)
}
