package nudel

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"nudelguides/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

var videoHosts = []string{"youtube.com", "youtu.be", "vimeo.com"}

func isVideoUrl(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	for _, h := range videoHosts {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

// FetchLevelVideos scrapes the tutorial level pages for embedded build
// videos. A page that fails to fetch just contributes no videos, it never
// fails the run.
func (c *Client) FetchLevelVideos(ctx context.Context, pages []string) []Video {
	var videos []Video
	seen := map[string]bool{}

	for _, page := range pages {
		doc, err := c.fetchDocument(ctx, page)
		if err != nil {
			slog.WarnContext(ctx, "failed to fetch tutorial level page", "url", page, "err", err)
			continue
		}
		for _, v := range ExtractVideos(doc) {
			if seen[v.Url] {
				continue
			}
			seen[v.Url] = true
			videos = append(videos, v)
		}
	}

	return videos
}

// ExtractVideos collects youtube/vimeo embeds and links from a level page.
// A video's title is the nearest enclosing heading, falling back to the
// iframe title attribute or anchor text.
func ExtractVideos(doc *goquery.Document) []Video {
	var videos []Video
	seen := map[string]bool{}

	add := func(videoUrl, title string) {
		if videoUrl == "" || seen[videoUrl] {
			return
		}
		seen[videoUrl] = true
		videos = append(videos, Video{
			Title: htmlutil.CleanText(title),
			Url:   videoUrl,
		})
	}

	doc.Find("iframe[src]").Each(func(_ int, sel *goquery.Selection) {
		src, _ := sel.Attr("src")
		if !isVideoUrl(src) {
			return
		}
		title := nearestHeading(sel)
		if title == "" {
			title = sel.AttrOr("title", "")
		}
		add(src, title)
	})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !isVideoUrl(href) {
			return
		}
		title := htmlutil.CleanText(sel.Text())
		if title == "" {
			title = nearestHeading(sel)
		}
		add(href, title)
	})

	return videos
}

func nearestHeading(sel *goquery.Selection) string {
	parent := sel.Parent()
	for depth := 0; depth < 3 && parent.Length() > 0; depth++ {
		heading := parent.Find("h1, h2, h3, h4").First()
		if heading.Length() > 0 {
			return htmlutil.GetText(heading.Nodes[0])
		}
		parent = parent.Parent()
	}
	return ""
}
