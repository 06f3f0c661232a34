package gallery

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"nudelguides/lib/scrapers/nudel"
)

type ResultKind int

const (
	ResultSuccess ResultKind = iota
	// the file was already on disk, no request was made
	ResultSkipped
	ResultFailed
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultSkipped:
		return "skipped-existing"
	case ResultFailed:
		return "failed"
	}
	return "unknown"
}

const (
	AssetPdf       = "pdf"
	AssetThumbnail = "thumbnail"
)

type DownloadResult struct {
	Kind  ResultKind
	Asset string
	Title string
	Url   string
	Path  string
	Err   error
}

// DownloadAll fetches every guide's pdf and thumbnail, one request at a
// time in entry order. It returns the guides whose pdf made it to disk
// (local paths filled in) and one result per attempted asset. A single
// failed asset never aborts the loop.
func (s Service) DownloadAll(ctx context.Context, guides []nudel.Guide) ([]nudel.Guide, []DownloadResult) {
	var kept []nudel.Guide
	var results []DownloadResult

	for _, g := range guides {
		pdfName := PdfFilename(g.PdfUrl)
		res := s.fetchAsset(ctx, g.PdfUrl, filepath.Join(s.pdfDir, pdfName), true)
		res.Asset = AssetPdf
		res.Title = g.Title
		results = append(results, res)
		if res.Kind == ResultFailed {
			slog.WarnContext(ctx, "failed to download pdf", "title", g.Title, "url", g.PdfUrl, "err", res.Err)
			continue
		}
		g.LocalPdf = res.Path

		if g.ThumbnailUrl != "" {
			thumbName := ThumbFilename(pdfName, g.ThumbnailUrl)
			res := s.fetchAsset(ctx, g.ThumbnailUrl, filepath.Join(s.thumbDir, thumbName), false)
			res.Asset = AssetThumbnail
			res.Title = g.Title
			results = append(results, res)
			if res.Kind == ResultFailed {
				// the card falls back to a placeholder graphic
				slog.WarnContext(ctx, "failed to download thumbnail", "title", g.Title, "url", g.ThumbnailUrl, "err", res.Err)
			} else {
				g.LocalThumbnail = res.Path
			}
		}

		kept = append(kept, g)
	}

	return kept, results
}

func (s Service) fetchAsset(ctx context.Context, assetUrl, target string, wantPdf bool) DownloadResult {
	if _, err := os.Stat(target); err == nil {
		slog.DebugContext(ctx, "skipping existing file", "path", target)
		return DownloadResult{Kind: ResultSkipped, Url: assetUrl, Path: target}
	}

	fail := func(err error) DownloadResult {
		return DownloadResult{Kind: ResultFailed, Url: assetUrl, Err: err}
	}

	res, err := s.http.R().
		SetContext(ctx).
		Get(assetUrl)
	if err != nil {
		return fail(err)
	}
	if res.IsError() {
		return fail(fmt.Errorf("got status %s", res.Status()))
	}
	if wantPdf && !looksLikePdf(res.Header().Get("Content-Type"), assetUrl, res.Body()) {
		return fail(fmt.Errorf(
			"url does not appear to be a pdf (content-type: %s)",
			res.Header().Get("Content-Type"),
		))
	}

	err = os.WriteFile(target, res.Body(), 0644)
	if err != nil {
		return fail(err)
	}

	slog.InfoContext(ctx, "downloaded", "path", target, "bytes", len(res.Body()))
	return DownloadResult{Kind: ResultSuccess, Url: assetUrl, Path: target}
}

var pdfMagic = []byte("%PDF")

func looksLikePdf(contentType, assetUrl string, body []byte) bool {
	if strings.Contains(strings.ToLower(contentType), "pdf") {
		return true
	}
	if strings.HasSuffix(strings.ToLower(assetUrl), ".pdf") {
		return true
	}
	return bytes.HasPrefix(body, pdfMagic)
}
