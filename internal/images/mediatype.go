package images

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// DefaultMediaType is used when no strategy recognises a file.
const DefaultMediaType = "image/png"

// MediaTypeFunc guesses the media type of an image file. An empty result
// means "no opinion" and lets the next strategy in a Chain try.
type MediaTypeFunc func(path string, data []byte) string

var extensionTable = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".bmp":  "image/bmp",
}

// ByExtensionTable looks the lowercased extension up in a fixed table.
func ByExtensionTable(path string, _ []byte) string {
	return extensionTable[strings.ToLower(filepath.Ext(path))]
}

// BySystemGuess defers to the mime package, which also reads the
// system's mime.types files. Parameters such as charset are dropped.
func BySystemGuess(path string, _ []byte) string {
	return bareType(mime.TypeByExtension(filepath.Ext(path)))
}

// ByContent sniffs the file header. Only image types are accepted.
func ByContent(_ string, data []byte) string {
	if len(data) == 0 {
		return ""
	}
	t := bareType(mimetype.Detect(data).String())
	if !strings.HasPrefix(t, "image/") {
		return ""
	}
	return t
}

func bareType(t string) string {
	if t == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(t)
	if err != nil {
		return ""
	}
	return mediaType
}

// Chain tries each strategy in order and falls back to DefaultMediaType.
type Chain []MediaTypeFunc

func (c Chain) MediaType(path string, data []byte) string {
	for _, guess := range c {
		if t := guess(path, data); t != "" {
			return t
		}
	}
	return DefaultMediaType
}

// DefaultChain is extension table, then system guess, then (optionally) content sniffing.
func DefaultChain(sniffContent bool) Chain {
	chain := Chain{ByExtensionTable, BySystemGuess}
	if sniffContent {
		chain = append(chain, ByContent)
	}
	return chain
}
