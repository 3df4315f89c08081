package extractor

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// RawImage is one embedded image as stored in the document.
// Err is set when the image was found but its bytes could not be decoded.
type RawImage struct {
	Page  int // 1-based
	ObjNr int
	Ext   string
	Data  []byte
	Err   error
}

// Source enumerates the embedded images of a document, ordered by page and
// then by their order inside the page.
type Source interface {
	Images(path string) ([]RawImage, error)
}

// PDFSource reads PDF files with pdfcpu.
type PDFSource struct {
	conf *model.Configuration
}

func NewPDFSource() *PDFSource {
	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTIMAGES
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFSource{conf: conf}
}

// Images decodes every image a page's resources reference, one object at a
// time, so a broken image only marks its own RawImage. Page thumbnails are
// not returned.
func (s *PDFSource) Images(path string) ([]RawImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer f.Close()

	ctx, err := api.ReadValidateAndOptimize(f, s.conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to count pages: %w", err)
	}

	var found []RawImage
	for page := 1; page <= ctx.PageCount; page++ {
		// object numbers come back in map order
		objNrs := pdfcpu.ImageObjNrs(ctx, page)
		sort.Ints(objNrs)
		for _, objNr := range objNrs {
			if raw, ok := extractImage(ctx, page, objNr); ok {
				found = append(found, raw)
			}
		}
	}
	return found, nil
}

// extractImage reports false for objects that are not standalone images.
func extractImage(ctx *model.Context, page, objNr int) (raw RawImage, ok bool) {
	raw = RawImage{Page: page, ObjNr: objNr}
	defer func() {
		if r := recover(); r != nil {
			raw.Err, ok = fmt.Errorf("pdfcpu failed on object %d: %v", objNr, r), true
		}
	}()

	obj := ctx.Optimize.ImageObjects[objNr]
	if obj == nil || obj.ImageDict == nil {
		raw.Err = fmt.Errorf("no image dictionary for object %d", objNr)
		return raw, true
	}

	img, err := pdfcpu.ExtractImage(ctx, obj.ImageDict, false, "", objNr, false)
	if err != nil {
		raw.Err = err
		return raw, true
	}
	if img == nil || img.Thumb {
		return raw, false
	}

	raw.Ext = strings.ToLower(img.FileType)
	if img.Reader == nil {
		raw.Err = fmt.Errorf("no image data for object %d", objNr)
		return raw, true
	}
	raw.Data, raw.Err = io.ReadAll(img)
	return raw, true
}

var _ Source = (*PDFSource)(nil)
