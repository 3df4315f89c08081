package images

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DataURIPrefix marks a reference that already carries its image bytes.
const DataURIPrefix = "data:"

type Status int

const (
	StatusEmpty      Status = iota // no reference given
	StatusInline                   // reference was already a data URI
	StatusEmbedded                 // file found and converted to a data URI
	StatusNotFound                 // no candidate directory holds the file
	StatusUnreadable               // file found but could not be read
)

// Resolution is the outcome for one reference. Value is what gets stored:
// the data URI on success, the original reference otherwise.
type Resolution struct {
	Value     string
	Status    Status
	MediaType string
	Source    string // file that was embedded
	Err       error  // set for StatusUnreadable
}

// IsDataURI reports whether Value is an inline image.
func (r Resolution) IsDataURI() bool {
	return r.Status == StatusInline || r.Status == StatusEmbedded
}

// Resolver turns relative image references into data URIs by searching
// directories in order. The first directory holding the file wins.
type Resolver struct {
	searchDirs []string
	chain      Chain
}

func NewResolver(searchDirs []string, chain Chain) *Resolver {
	if chain == nil {
		chain = DefaultChain(false)
	}
	return &Resolver{searchDirs: searchDirs, chain: chain}
}

// SearchDirs returns the directories in precedence order.
func (r *Resolver) SearchDirs() []string {
	return r.searchDirs
}

func (r *Resolver) Resolve(ref string) Resolution {
	if ref == "" {
		return Resolution{Status: StatusEmpty}
	}
	if strings.HasPrefix(ref, DataURIPrefix) {
		return Resolution{Value: ref, Status: StatusInline}
	}

	for _, dir := range r.searchDirs {
		candidate := ref
		if !filepath.IsAbs(ref) {
			candidate = filepath.Join(dir, ref)
		}

		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		data, err := os.ReadFile(candidate)
		if err != nil {
			return Resolution{
				Value:  ref,
				Status: StatusUnreadable,
				Source: candidate,
				Err:    fmt.Errorf("read image %s: %w", candidate, err),
			}
		}

		mediaType := r.chain.MediaType(candidate, data)
		return Resolution{
			Value:     EncodeDataURI(mediaType, data),
			Status:    StatusEmbedded,
			MediaType: mediaType,
			Source:    candidate,
		}
	}

	return Resolution{Value: ref, Status: StatusNotFound}
}

// EncodeDataURI builds data:<media-type>;base64,<bytes>.
func EncodeDataURI(mediaType string, data []byte) string {
	return DataURIPrefix + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}
