// Package document decodes externally authored quiz bank files.
//
// A document is a JSON (or YAML) object with an optional "meta" mapping and a
// "questions" list; each question embeds its "options". Every field except the
// lists is optional: defaults are applied when the document is written to a
// store, not here, so a decoded Document still tells absent apart from empty.
package document

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// ErrNoQuestions marks a structurally valid document with an empty question list.
var ErrNoQuestions = errors.New("no questions found")

//go:embed document.schema.json
var schemaJSON []byte

var documentSchema = mustCompileSchema(schemaJSON)

func mustCompileSchema(raw []byte) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("document: invalid embedded schema: %v", err))
	}
	return schema
}

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Extensions lists the file extensions recognised as documents.
var Extensions = []string{".json", ".yaml", ".yml"}

// FormatForPath picks the decoder from the file extension.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	}
	return "", false
}

// HasDocumentExtension reports whether path ends in one of Extensions.
func HasDocumentExtension(path string) bool {
	_, ok := FormatForPath(path)
	return ok
}

type Document struct {
	Meta      map[string]any `json:"meta,omitempty" yaml:"meta,omitempty"`
	Questions []Question     `json:"questions" yaml:"questions"`
}

type Question struct {
	Type          string   `json:"type,omitempty" yaml:"type,omitempty"`
	Topic         *string  `json:"topic,omitempty" yaml:"topic,omitempty"`
	Difficulty    *string  `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	QuestionZh    *string  `json:"question_zh,omitempty" yaml:"question_zh,omitempty"`
	QuestionEn    *string  `json:"question_en,omitempty" yaml:"question_en,omitempty"`
	ImagePath     *string  `json:"image_path,omitempty" yaml:"image_path,omitempty"`
	ExplanationZh *string  `json:"explanation_zh,omitempty" yaml:"explanation_zh,omitempty"`
	ExplanationEn *string  `json:"explanation_en,omitempty" yaml:"explanation_en,omitempty"`
	Options       []Option `json:"options,omitempty" yaml:"options,omitempty"`
}

type Option struct {
	Label         *string `json:"label,omitempty" yaml:"label,omitempty"`
	TextZh        *string `json:"text_zh,omitempty" yaml:"text_zh,omitempty"`
	TextEn        *string `json:"text_en,omitempty" yaml:"text_en,omitempty"`
	IsCorrect     *bool   `json:"is_correct,omitempty" yaml:"is_correct,omitempty"`
	ExplanationZh *string `json:"explanation_zh,omitempty" yaml:"explanation_zh,omitempty"`
	ExplanationEn *string `json:"explanation_en,omitempty" yaml:"explanation_en,omitempty"`
}

// MetaEntry is one meta row; a nil Value is stored as NULL.
type MetaEntry struct {
	Key   string
	Value *string
}

// MetaEntries flattens Meta into rows sorted by key.
// Numbers keep their source spelling, booleans become "1"/"0".
func (d *Document) MetaEntries() []MetaEntry {
	keys := make([]string, 0, len(d.Meta))
	for k := range d.Meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]MetaEntry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, MetaEntry{Key: k, Value: metaText(d.Meta[k])})
	}
	return entries
}

func metaText(v any) *string {
	var s string
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		s = val
	case json.Number:
		s = val.String()
	case bool:
		s = "0"
		if val {
			s = "1"
		}
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		s = fmt.Sprint(val)
	}
	return &s
}

// StripFence removes a leading ``` line and a trailing ``` marker, as left
// behind when a document is pasted out of a chat or markdown file.
func StripFence(raw []byte) []byte {
	raw = bytes.TrimSpace(raw)
	if bytes.HasPrefix(raw, []byte("```")) {
		if i := bytes.IndexByte(raw, '\n'); i >= 0 {
			raw = raw[i+1:]
		} else {
			raw = nil
		}
	}
	if bytes.HasSuffix(raw, []byte("```")) {
		raw = raw[:bytes.LastIndex(raw, []byte("```"))]
	}
	return raw
}

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid document: " + strings.Join(e.Problems, "; ")
}

// Parse strips fencing, validates the structure and decodes raw.
func Parse(raw []byte, format Format) (*Document, error) {
	raw = StripFence(raw)

	var generic any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &generic); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}

	if err := validate(generic); err != nil {
		return nil, err
	}

	doc := &Document{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(raw, doc); err != nil {
			return nil, fmt.Errorf("failed to decode YAML document: %w", err)
		}
		meta, err := yamlMeta(raw)
		if err != nil {
			return nil, err
		}
		doc.Meta = meta
	default:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()
		if err := dec.Decode(doc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON document: %w", err)
		}
	}

	return doc, nil
}

// yamlMeta decodes the meta mapping keeping numbers as written, so that
// "version: 2.0" stays "2.0" as it does for JSON.
func yamlMeta(raw []byte) (map[string]any, error) {
	var wrapper struct {
		Meta yaml.Node `yaml:"meta"`
	}
	if err := yaml.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode YAML meta: %w", err)
	}

	node := resolveAlias(&wrapper.Meta)
	if node.Kind != yaml.MappingNode {
		return nil, nil
	}

	meta := make(map[string]any, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := resolveAlias(node.Content[i+1])
		switch value.ShortTag() {
		case "!!int", "!!float":
			meta[key] = json.Number(value.Value)
		default:
			var v any
			if err := value.Decode(&v); err != nil {
				return nil, fmt.Errorf("failed to decode meta %q: %w", key, err)
			}
			meta[key] = v
		}
	}
	return meta, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}

// Load reads and parses the document at path, choosing the format by extension
// (JSON when the extension is not recognised).
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	format, ok := FormatForPath(path)
	if !ok {
		format = FormatJSON
	}

	return Parse(raw, format)
}

func validate(generic any) error {
	result, err := documentSchema.Validate(gojsonschema.NewGoLoader(generic))
	if err != nil {
		return fmt.Errorf("failed to validate document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, e := range result.Errors() {
		verr.Problems = append(verr.Problems, e.String())
	}
	return verr
}
