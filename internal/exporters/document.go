package exporters

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/RyanZhou416/QuizForge/internal/bank"
	"github.com/RyanZhou416/QuizForge/internal/document"
)

// DocumentExporter writes a store back out as a quiz bank document that
// json-to-db accepts. The format follows the output extension (JSON unless
// it is .yaml or .yml).
type DocumentExporter struct {
	outputPath string
}

func NewDocumentExporter(outputPath string) *DocumentExporter {
	return &DocumentExporter{outputPath: outputPath}
}

func (exporter *DocumentExporter) Export(reader BankReader) (ExportResult, error) {
	result := ExportResult{Path: exporter.outputPath}

	meta, err := reader.MetaValues()
	if err != nil {
		return result, fmt.Errorf("failed to read meta: %w", err)
	}
	questions, err := reader.AllQuestions()
	if err != nil {
		return result, fmt.Errorf("failed to read questions: %w", err)
	}

	doc := BuildDocument(meta, questions)
	format, ok := document.FormatForPath(exporter.outputPath)
	if !ok {
		format = document.FormatJSON
	}

	data, err := Encode(doc, format)
	if err != nil {
		return result, err
	}

	if err := os.MkdirAll(filepath.Dir(exporter.outputPath), 0o755); err != nil {
		return result, fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(exporter.outputPath, data, 0o644); err != nil {
		return result, fmt.Errorf("failed to write document: %w", err)
	}

	result.Questions = len(doc.Questions)
	for _, q := range doc.Questions {
		result.Options += len(q.Options)
	}
	log.Printf("Exported %d questions (%d options) to %s", result.Questions, result.Options, exporter.outputPath)

	return result, nil
}

// BuildDocument turns stored rows into a document. Labels and correctness are
// always written out so a re-import does not depend on defaults. A NULL meta
// value is written as null.
func BuildDocument(meta map[string]*string, questions []bank.QuestionDetail) *document.Document {
	doc := &document.Document{Questions: make([]document.Question, 0, len(questions))}
	if len(meta) > 0 {
		doc.Meta = make(map[string]any, len(meta))
		for k, v := range meta {
			if v == nil {
				doc.Meta[k] = nil
				continue
			}
			doc.Meta[k] = *v
		}
	}

	for _, q := range questions {
		questionZh := q.QuestionZh
		out := document.Question{
			Type:          q.Type,
			Topic:         q.Topic,
			Difficulty:    q.Difficulty,
			QuestionZh:    &questionZh,
			QuestionEn:    q.QuestionEn,
			ImagePath:     q.ImagePath,
			ExplanationZh: q.ExplanationZh,
			ExplanationEn: q.ExplanationEn,
		}
		for _, o := range q.Options {
			label, textZh, correct := o.Label, o.TextZh, o.IsCorrect
			out.Options = append(out.Options, document.Option{
				Label:         &label,
				TextZh:        &textZh,
				TextEn:        o.TextEn,
				IsCorrect:     &correct,
				ExplanationZh: o.ExplanationZh,
				ExplanationEn: o.ExplanationEn,
			})
		}
		doc.Questions = append(doc.Questions, out)
	}

	return doc
}

// Encode renders doc in the given format. JSON output leaves non-ASCII and
// HTML characters unescaped.
func Encode(doc *document.Document, format document.Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case document.FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode YAML: %w", err)
		}
	default:
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode JSON: %w", err)
		}
	}
	return buf.Bytes(), nil
}
