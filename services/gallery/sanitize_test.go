package gallery

import (
	"math/rand"
	"strings"
	"testing"

	"nudelguides/lib/testutil"

	"github.com/stretchr/testify/require"
)

func TestPdfFilename(t *testing.T) {
	testCases := []struct {
		url      string
		expected string
	}{
		{"https://nudel.shop/files/tunnel-fort.pdf", "tunnel-fort.pdf"},
		{"https://nudel.shop/files/tunnel fort (v2).pdf", "tunnel_fort__v2_.pdf"},
		{"https://cdn.nudel.shop/files/seesaw_v2.PDF", "seesaw_v2.PDF"},
		{"https://nudel.shop/download", "download.pdf"},
		{"https://nudel.shop/", "download.pdf"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, PdfFilename(test.url), test.url)
	}
}

func TestThumbFilename(t *testing.T) {
	testCases := []struct {
		pdf      string
		url      string
		expected string
	}{
		{"tunnel-fort.pdf", "https://nudel.shop/cdn/thumb.png?width=300", "tunnel-fort_thumb.png"},
		{"seesaw.pdf", "https://nudel.shop/cdn/seesaw", "seesaw_thumb.jpg"},
		{"a.pdf", "https://nudel.shop/cdn/a.jpeg", "a_thumb.jpeg"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, ThumbFilename(test.pdf, test.url), test.url)
	}
}

// sanitization must be pure and must never emit path separators or shell
// metacharacters, whatever the source url looks like
func TestSanitizeFilenameProperties(t *testing.T) {
	rndm := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		raw := "https://nudel.shop" + testutil.RandomUrlPath(rndm, 3) + ".pdf"
		name := PdfFilename(raw)

		require.Equal(t, name, PdfFilename(raw))
		require.NotContains(t, name, "/")
		require.NotContains(t, name, "\\")
		for _, c := range name {
			ok := c >= 'a' && c <= 'z' ||
				c >= 'A' && c <= 'Z' ||
				c >= '0' && c <= '9' ||
				c == '.' || c == '_' || c == '-'
			require.True(t, ok, "unexpected character %q in %q", c, name)
		}
		require.True(t, strings.HasSuffix(strings.ToLower(name), ".pdf"))
	}
}
