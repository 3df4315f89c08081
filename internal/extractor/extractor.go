// Package extractor dumps the raster images embedded in a PDF into a directory.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrDocumentNotFound is returned when the source document does not exist.
var ErrDocumentNotFound = errors.New("document not found")

// FileName is the name given to the index-th image (1-based) of a page.
func FileName(page, index int, ext string) string {
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("page%d_img%d.%s", page, index, ext)
}

type Result struct {
	OutputDir string
	Files     []string
	Failed    int
}

type Extractor struct {
	source Source
	out    io.Writer
}

func New(source Source, out io.Writer) *Extractor {
	if out == nil {
		out = io.Discard
	}
	return &Extractor{source: source, out: out}
}

// Extract writes every image of docPath into outputDir, creating it if needed.
// A single image that cannot be decoded or written is reported and skipped.
func (e *Extractor) Extract(docPath, outputDir string) (*Result, error) {
	if _, err := os.Stat(docPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, docPath)
		}
		return nil, fmt.Errorf("failed to stat document: %w", err)
	}

	if _, err := os.Stat(outputDir); errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
		fmt.Fprintf(e.out, "Created directory: %s\n", outputDir)
	}

	images, err := e.source.Images(docPath)
	if err != nil {
		return nil, err
	}

	result := &Result{OutputDir: outputDir}
	perPage := make(map[int]int)
	for _, img := range images {
		perPage[img.Page]++
		index := perPage[img.Page]

		if img.Err != nil {
			e.warn(result, img.Page, index, img.Err)
			continue
		}

		name := FileName(img.Page, index, img.Ext)
		if err := os.WriteFile(filepath.Join(outputDir, name), img.Data, 0o644); err != nil {
			e.warn(result, img.Page, index, err)
			continue
		}

		result.Files = append(result.Files, name)
		fmt.Fprintf(e.out, "Extracted: %s (page %d)\n", name, img.Page)
	}

	fmt.Fprintf(e.out, "\nDone! Extracted %d images to %s\n", len(result.Files), outputDir)
	return result, nil
}

func (e *Extractor) warn(result *Result, page, index int, err error) {
	result.Failed++
	fmt.Fprintf(e.out, "WARNING: Could not extract image %d on page %d: %v\n", index, page, err)
}
