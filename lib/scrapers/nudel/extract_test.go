package nudel

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const guidePageFixture = `<!DOCTYPE html>
<html>
<body>
<div class="grid">
	<div class="card">
		<div class="media"><img data-src="/cdn/tunnel-fort.jpg"></div>
		<div class="content"><a href="/files/tunnel-fort.pdf">Let's Build It!</a></div>
	</div>
	<div class="card">
		<a href="https://cdn.nudel.shop/files/seesaw_v2.pdf"><img src="/cdn/seesaw.png" alt="Seesaw Guide"></a>
	</div>
	<div class="card">
		<div><div><div><a href="/files/reading-nook.pdf">Reading Nook Guide</a></div></div></div>
	</div>
	<div class="card">
		<!-- duplicate of the first pdf, should keep the first association -->
		<div class="media"><img src="/cdn/unrelated.jpg"></div>
		<div class="content"><a href="/files/tunnel-fort.pdf">Download</a></div>
	</div>
</div>
<embed src="/files/slide.pdf">
<script>var featured = "https://nudel.shop/files/bridge.pdf";</script>
<div data-file="/files/swing.pdf"></div>
</body>
</html>`

func parseFixture(t testing.TB, page string) (*goquery.Document, *url.URL) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		t.Fatal(err)
	}
	base, err := url.Parse("https://nudel.shop/pages/step-by-step")
	if err != nil {
		t.Fatal(err)
	}
	return doc, base
}

func TestExtractGuides(t *testing.T) {
	doc, base := parseFixture(t, guidePageFixture)

	guides := ExtractGuides(context.Background(), doc, base)

	expected := []Guide{
		{
			// generic anchor text replaced by the humanized file name
			Title:        "tunnel fort",
			PdfUrl:       "https://nudel.shop/files/tunnel-fort.pdf",
			ThumbnailUrl: "https://nudel.shop/cdn/tunnel-fort.jpg",
		},
		{
			// title from the image alt, thumbnail from inside the anchor
			Title:        "Seesaw Guide",
			PdfUrl:       "https://cdn.nudel.shop/files/seesaw_v2.pdf",
			ThumbnailUrl: "https://nudel.shop/cdn/seesaw.png",
		},
		{
			// no image within 3 ancestor levels
			Title:  "Reading Nook Guide",
			PdfUrl: "https://nudel.shop/files/reading-nook.pdf",
		},
		{
			Title:  "slide",
			PdfUrl: "https://nudel.shop/files/slide.pdf",
		},
		{
			Title:  "bridge",
			PdfUrl: "https://nudel.shop/files/bridge.pdf",
		},
		{
			Title:  "swing",
			PdfUrl: "https://nudel.shop/files/swing.pdf",
		},
	}

	diff := cmp.Diff(expected, guides)
	if diff != "" {
		t.Fatal(diff)
	}
}

func TestExtractGuidesDeterministic(t *testing.T) {
	doc, base := parseFixture(t, guidePageFixture)

	first := ExtractGuides(context.Background(), doc, base)
	second := ExtractGuides(context.Background(), doc, base)
	require.Equal(t, first, second)
}

func TestExtractGuidesEmptyPage(t *testing.T) {
	doc, base := parseFixture(t, `<html><body><a href="/about">About</a></body></html>`)

	guides := ExtractGuides(context.Background(), doc, base)
	require.Empty(t, guides)
}

func TestNormalizeTitle(t *testing.T) {
	testCases := []struct {
		title    string
		expected string
	}{
		{"Reading Nook Guide", "Reading Nook Guide"},
		{"Download", "tunnel fort v2"},
		{"LET'S BUILD IT!", "tunnel fort v2"},
		{"pdf", "tunnel fort v2"},
		{"", "tunnel fort v2"},
		{"abc", "tunnel fort v2"},
	}

	for _, test := range testCases {
		got := normalizeTitle(test.title, "https://nudel.shop/files/tunnel-fort_v2.pdf")
		require.Equal(t, test.expected, got, test.title)
	}
}
