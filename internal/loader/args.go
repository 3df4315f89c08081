package loader

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/RyanZhou416/QuizForge/internal/config"
	"github.com/RyanZhou416/QuizForge/internal/document"
)

// ErrNoInputFiles is returned when no argument expands to a document file.
var ErrNoInputFiles = errors.New("no input files found")

// Invocation is a parsed json-to-db command line.
type Invocation struct {
	Documents []string // paths or glob patterns
	Output    string   // explicit store path, honored for a single document only
	ImageDirs []string
}

// ParseArgs classifies positional arguments by extension:
//
//   - -i/--images DIR adds an image directory (repeatable)
//   - an argument ending in .json/.yaml/.yml is a document
//   - any other argument is a document while none has been seen yet, so a
//     pattern such as "banks/*" still works on its own
//   - after that it is the output path; the last one wins
//
// An output path that itself ends in .json is therefore taken as a document.
func ParseArgs(args []string) (Invocation, error) {
	var inv Invocation
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-i" || arg == "--images":
			if i+1 >= len(args) {
				return inv, fmt.Errorf("missing directory after %s", arg)
			}
			i++
			inv.ImageDirs = append(inv.ImageDirs, args[i])
		case document.HasDocumentExtension(arg):
			inv.Documents = append(inv.Documents, arg)
		case len(inv.Documents) == 0:
			inv.Documents = append(inv.Documents, arg)
		default:
			inv.Output = arg
		}
	}
	return inv, nil
}

// ExpandInputs expands each pattern with filepath.Glob and keeps the matches
// that carry a document extension. Matches of a pattern come back sorted.
func ExpandInputs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if document.HasDocumentExtension(m) {
				files = append(files, m)
			}
		}
	}
	return files, nil
}

// DeriveStorePath replaces the document's extension with ".db".
func DeriveStorePath(docPath string) string {
	return docPath[:len(docPath)-len(filepath.Ext(docPath))] + config.DefaultStoreExtension
}
