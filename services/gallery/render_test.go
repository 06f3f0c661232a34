package gallery

import (
	"strings"
	"testing"

	"nudelguides/lib/scrapers/nudel"

	"github.com/stretchr/testify/require"
)

func renderFixture() []nudel.Guide {
	return []nudel.Guide{
		{
			Title:          "Guide A",
			PdfUrl:         "https://nudel.shop/files/a.pdf",
			ThumbnailUrl:   "https://nudel.shop/cdn/a.jpg",
			LocalPdf:       "pdfs/a.pdf",
			LocalThumbnail: "thumbnails/a_thumb.jpg",
			VideoUrl:       "https://vimeo.com/a",
		},
		{
			Title:    "Guide B",
			PdfUrl:   "https://nudel.shop/files/b.pdf",
			LocalPdf: "pdfs/b.pdf",
		},
	}
}

func TestRender(t *testing.T) {
	html, err := Render(renderFixture(), "pdfs", "thumbnails")
	require.NoError(t, err)

	require.Equal(t, 2, strings.Count(html, `<div class="card">`))
	require.Contains(t, html, `href="pdfs/a.pdf"`)
	require.Contains(t, html, `href="pdfs/b.pdf"`)
	require.Contains(t, html, `src="thumbnails/a_thumb.jpg"`)
	require.Contains(t, html, `href="https://vimeo.com/a"`)
	// the entry without a thumbnail gets the placeholder block
	require.Equal(t, 1, strings.Count(html, `class="thumbnail no-thumbnail"`))
	require.Contains(t, html, "<strong>Total Guides:</strong> 2")
}

func TestRenderIsPure(t *testing.T) {
	first, err := Render(renderFixture(), "pdfs", "thumbnails")
	require.NoError(t, err)
	second, err := Render(renderFixture(), "pdfs", "thumbnails")
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRenderEscapesTitles(t *testing.T) {
	guides := []nudel.Guide{{
		Title:    `<script>alert("x")</script>`,
		PdfUrl:   "https://nudel.shop/files/x.pdf",
		LocalPdf: "pdfs/x.pdf",
	}}

	html, err := Render(guides, "pdfs", "thumbnails")
	require.NoError(t, err)
	require.NotContains(t, html, `<script>alert`)
}
