package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var gifHeader = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\xff\xff\xff\x00\x00\x00!\xf9\x04\x01\x00\x00\x00\x00,\x00\x00\x00\x00\x01\x00\x01\x00\x00\x02\x02D\x01\x00;")

func TestByExtensionTable(t *testing.T) {
	tests := map[string]string{
		"a.png":        "image/png",
		"dir/b.JPG":    "image/jpeg",
		"c.jpeg":       "image/jpeg",
		"d.gif":        "image/gif",
		"e.webp":       "image/webp",
		"f.svg":        "image/svg+xml",
		"g.bmp":        "image/bmp",
		"h.pdf":        "",
		"no-extension": "",
	}
	for path, want := range tests {
		assert.Equal(t, want, ByExtensionTable(path, nil), path)
	}
}

func TestBySystemGuess_StripsParameters(t *testing.T) {
	assert.Equal(t, "application/pdf", BySystemGuess("scan.pdf", nil))
	assert.Equal(t, "text/html", BySystemGuess("page.html", nil))
	assert.Equal(t, "", BySystemGuess("figure.qfunknown", nil))
}

func TestByContent(t *testing.T) {
	assert.Equal(t, "image/gif", ByContent("figure.qfunknown", gifHeader))
	assert.Equal(t, "", ByContent("notes.qfunknown", []byte("plain words, not an image")))
	assert.Equal(t, "", ByContent("empty.qfunknown", nil))
}

func TestChain_Order(t *testing.T) {
	always := func(v string) MediaTypeFunc {
		return func(string, []byte) string { return v }
	}

	assert.Equal(t, "first/x", Chain{always(""), always("first/x"), always("second/y")}.MediaType("f", nil))
	assert.Equal(t, DefaultMediaType, Chain{always(""), always("")}.MediaType("f", nil))
	assert.Equal(t, DefaultMediaType, Chain{}.MediaType("f", nil))
}

func TestDefaultChain(t *testing.T) {
	// table wins over system guess and content
	assert.Equal(t, "image/png", DefaultChain(true).MediaType("photo.png", gifHeader))

	// unknown extension falls through to png unless sniffing is on
	assert.Equal(t, "image/png", DefaultChain(false).MediaType("figure.qfunknown", gifHeader))
	assert.Equal(t, "image/gif", DefaultChain(true).MediaType("figure.qfunknown", gifHeader))
}
