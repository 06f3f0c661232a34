package nudel

import (
	"context"
	"log/slog"
	"net/url"
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"nudelguides/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Guide is a single downloadable step-by-step PDF, optionally paired with
// a thumbnail image and a tutorial video link. Local paths are filled in by
// the downloader only on successful save.
type Guide struct {
	Title          string
	PdfUrl         string
	ThumbnailUrl   string
	VideoUrl       string
	LocalPdf       string
	LocalThumbnail string
}

// Video is an external tutorial video scraped off a level page.
type Video struct {
	Title string
	Url   string
}

// anchor texts that say nothing about which guide the pdf belongs to
var genericTitles = map[string]bool{
	"let's build it!": true,
	"download":        true,
	"view":            true,
	"pdf":             true,
	"click here":      true,
}

var pdfUrlRegex = regexp.MustCompile(`(?i)https?://[^\s"'<>]+\.pdf`)

// ExtractGuides walks the guide listing document and returns one Guide per
// distinct PDF url, in document order. Duplicate urls keep their first
// occurrence, including its thumbnail association.
func ExtractGuides(ctx context.Context, doc *goquery.Document, base *url.URL) []Guide {
	seen := map[string]bool{}
	var guides []Guide

	add := func(g Guide) {
		if g.PdfUrl == "" || seen[g.PdfUrl] {
			return
		}
		seen[g.PdfUrl] = true
		guides = append(guides, g)
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(strings.ToLower(href), ".pdf") {
			return
		}
		pdfUrl := resolveUrl(ctx, base, href)
		if pdfUrl == "" {
			return
		}

		title := htmlutil.CleanText(sel.Text())
		thumb := ""

		img := sel.Find("img").First()
		if img.Length() > 0 {
			if src, ok := htmlutil.ImageSource(img); ok {
				thumb = resolveUrl(ctx, base, src)
			}
			if title == "" {
				title = htmlutil.CleanText(img.AttrOr("alt", img.AttrOr("title", "")))
			}
		}
		if thumb == "" {
			thumb = nearbyImage(ctx, sel, base)
		}

		add(Guide{
			Title:        normalizeTitle(title, pdfUrl),
			PdfUrl:       pdfUrl,
			ThumbnailUrl: thumb,
		})
	})

	// pdfs referenced outside of anchors never have a usable thumbnail
	for _, src := range []struct{ selector, attr string }{
		{"embed[src]", "src"},
		{"iframe[src]", "src"},
		{"object[data]", "data"},
	} {
		doc.Find(src.selector).Each(func(_ int, sel *goquery.Selection) {
			val, _ := sel.Attr(src.attr)
			if !strings.Contains(strings.ToLower(val), ".pdf") {
				return
			}
			pdfUrl := resolveUrl(ctx, base, val)
			add(Guide{Title: titleFromUrl(pdfUrl), PdfUrl: pdfUrl})
		})
	}

	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		for _, match := range pdfUrlRegex.FindAllString(sel.Text(), -1) {
			add(Guide{Title: titleFromUrl(match), PdfUrl: match})
		}
	})

	doc.Find("*").Each(func(_ int, sel *goquery.Selection) {
		for _, attr := range sel.Nodes[0].Attr {
			if !strings.Contains(strings.ToLower(attr.Val), ".pdf") {
				continue
			}
			pdfUrl := resolveUrl(ctx, base, attr.Val)
			add(Guide{Title: titleFromUrl(pdfUrl), PdfUrl: pdfUrl})
		}
	})

	return guides
}

// nearbyImage looks for the structurally closest image to an anchor,
// climbing at most 3 ancestor levels.
func nearbyImage(ctx context.Context, sel *goquery.Selection, base *url.URL) string {
	parent := sel.Parent()
	for depth := 0; depth < 3 && parent.Length() > 0; depth++ {
		img := parent.Find("img").First()
		if img.Length() > 0 {
			if src, ok := htmlutil.ImageSource(img); ok {
				return resolveUrl(ctx, base, src)
			}
		}
		parent = parent.Parent()
	}
	return ""
}

func resolveUrl(ctx context.Context, base *url.URL, href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		slog.WarnContext(ctx, "skipping unparseable url", "href", href, "err", err)
		return ""
	}
	return base.ResolveReference(ref).String()
}

// titleFromUrl humanizes a pdf url's base name: "tunnel-fort_v2.pdf"
// becomes "tunnel fort v2".
func titleFromUrl(pdfUrl string) string {
	u, err := url.Parse(pdfUrl)
	name := pdfUrl
	if err == nil {
		name = path.Base(u.Path)
	}
	name = strings.TrimSuffix(name, path.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}

// normalizeTitle swaps out empty or generic anchor titles for the
// humanized pdf file name.
func normalizeTitle(title, pdfUrl string) string {
	if genericTitles[strings.ToLower(title)] || utf8.RuneCountInString(title) < 5 {
		return titleFromUrl(pdfUrl)
	}
	return title
}
