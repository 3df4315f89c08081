// Package loader turns quiz documents into stores.
//
// Populate is the insertion contract shared with the seed program. Convert
// handles one document end to end (parse, rebuild the store, resolve images,
// summarize) and Run drives a whole json-to-db invocation, isolating each
// document so one bad file never stops the rest.
package loader

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/RyanZhou416/QuizForge/internal/config"
	"github.com/RyanZhou416/QuizForge/internal/database"
	"github.com/RyanZhou416/QuizForge/internal/document"
	"github.com/RyanZhou416/QuizForge/internal/entities"
	"github.com/RyanZhou416/QuizForge/internal/images"
)

type Config struct {
	Schema         database.Schema // database.DefaultSchema when empty
	ImageDirs      []string        // searched first, in order
	ExtraImageDirs []string        // searched after ImageDirs, before the document's directory
	SniffContent   bool
	LogSQL         bool
}

// ConfigFrom builds a loader config from the environment config plus -i directories.
func ConfigFrom(cfg *config.Config, imageDirs []string) Config {
	return Config{
		Schema:         database.DefaultSchema,
		ImageDirs:      imageDirs,
		ExtraImageDirs: cfg.Images.ExtraDirs,
		SniffContent:   cfg.Images.SniffContent,
		LogSQL:         cfg.Database.LogSQL,
	}
}

type Loader struct {
	cfg Config
	out io.Writer
}

func New(cfg Config, out io.Writer) *Loader {
	if out == nil {
		out = io.Discard
	}
	return &Loader{cfg: cfg, out: out}
}

// Result summarizes one converted document.
type Result struct {
	Document       string
	StorePath      string
	Questions      int64
	EmbeddedImages int
	MissingImages  []string
	Topics         []entities.TopicCount
	Size           int64
}

// SearchDirs lists image directories for docPath in precedence order.
func (l *Loader) SearchDirs(docPath string) []string {
	var dirs []string
	for _, d := range append(append([]string{}, l.cfg.ImageDirs...), l.cfg.ExtraImageDirs...) {
		if abs, err := filepath.Abs(d); err == nil {
			d = abs
		}
		dirs = append(dirs, d)
	}

	docDir := filepath.Dir(docPath)
	if abs, err := filepath.Abs(docPath); err == nil {
		docDir = filepath.Dir(abs)
	}
	return append(dirs, docDir)
}

// Convert loads docPath into a freshly created store at storePath, or at the
// derived path when storePath is empty. An unparseable document leaves any
// existing store untouched.
func (l *Loader) Convert(docPath, storePath string) (*Result, error) {
	if storePath == "" {
		storePath = DeriveStorePath(docPath)
	}

	doc, err := document.Load(docPath)
	if err != nil {
		return nil, err
	}

	db, err := database.Create(storePath, database.Options{Schema: l.cfg.Schema, LogSQL: l.cfg.LogSQL})
	if err != nil {
		return nil, err
	}
	defer db.Close()

	resolver := images.NewResolver(l.SearchDirs(docPath), images.DefaultChain(l.cfg.SniffContent))
	stats, err := Populate(db, doc, resolver, l.out)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Document:       docPath,
		StorePath:      storePath,
		EmbeddedImages: stats.EmbeddedImages,
		MissingImages:  stats.MissingImages,
	}
	if result.Questions, err = db.CountQuestions(); err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	if result.Topics, err = db.TopicCounts(); err != nil {
		return nil, err
	}
	if result.Size, err = db.Size(); err != nil {
		return nil, fmt.Errorf("failed to stat store: %w", err)
	}

	l.printResult(result)
	return result, nil
}

func (l *Loader) printResult(r *Result) {
	fmt.Fprintf(l.out, "\nCreated %s (%.1f KB) with %d questions, %d embedded images:\n",
		r.StorePath, float64(r.Size)/1024, r.Questions, r.EmbeddedImages)
	for _, t := range r.Topics {
		topic := "(no topic)"
		if t.Topic != nil && *t.Topic != "" {
			topic = *t.Topic
		}
		fmt.Fprintf(l.out, "  %s: %d\n", topic, t.Count)
	}
}

// Failure is a document that could not be converted.
type Failure struct {
	Document string
	Err      error
}

// Report collects the outcome of a Run.
type Report struct {
	Converted []*Result
	Skipped   []string // documents without questions
	Failed    []Failure
}

// Run converts every document named by inv. Only ErrNoInputFiles and a bad
// glob pattern are returned as errors; per-document problems end up in the report.
func (l *Loader) Run(inv Invocation) (*Report, error) {
	files, err := ExpandInputs(inv.Documents)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoInputFiles
	}

	report := &Report{}
	if len(files) == 1 && inv.Output != "" {
		l.convertInto(report, files[0], inv.Output)
		return report, nil
	}

	if inv.Output != "" {
		fmt.Fprintf(l.out, "WARNING: Output path %s ignored: %d documents given, each is written next to its source\n",
			inv.Output, len(files))
	}
	for _, f := range files {
		fmt.Fprintf(l.out, "\n--- Processing %s ---\n", f)
		l.convertInto(report, f, "")
	}
	return report, nil
}

func (l *Loader) convertInto(report *Report, docPath, storePath string) {
	result, err := l.Convert(docPath, storePath)
	switch {
	case err == nil:
		report.Converted = append(report.Converted, result)
	case errors.Is(err, document.ErrNoQuestions):
		fmt.Fprintf(l.out, "WARNING: No questions found in %s\n", docPath)
		report.Skipped = append(report.Skipped, docPath)
	default:
		fmt.Fprintf(l.out, "ERROR processing %s: %v\n", docPath, err)
		report.Failed = append(report.Failed, Failure{Document: docPath, Err: err})
	}
}
