package gallery

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

type Summary struct {
	PdfSuccess   int
	PdfSkipped   int
	PdfFailed    int
	ThumbSuccess int
	ThumbSkipped int
	ThumbFailed  int
	Failures     []DownloadResult
}

func Summarize(results []DownloadResult) Summary {
	var s Summary
	for _, r := range results {
		switch {
		case r.Asset == AssetPdf && r.Kind == ResultSuccess:
			s.PdfSuccess++
		case r.Asset == AssetPdf && r.Kind == ResultSkipped:
			s.PdfSkipped++
		case r.Asset == AssetPdf && r.Kind == ResultFailed:
			s.PdfFailed++
		case r.Asset == AssetThumbnail && r.Kind == ResultSuccess:
			s.ThumbSuccess++
		case r.Asset == AssetThumbnail && r.Kind == ResultSkipped:
			s.ThumbSkipped++
		case r.Asset == AssetThumbnail && r.Kind == ResultFailed:
			s.ThumbFailed++
		}
		if r.Kind == ResultFailed {
			s.Failures = append(s.Failures, r)
		}
	}
	return s
}

// Render formats the summary as a table plus one detail line per failure.
// This is the run's sole user-facing report.
func (s Summary) Render() string {
	var out strings.Builder

	t := table.NewWriter()
	t.AppendHeader(table.Row{"Asset", "Downloaded", "Skipped", "Failed"})
	t.AppendRow(table.Row{"pdfs", s.PdfSuccess, s.PdfSkipped, s.PdfFailed})
	t.AppendRow(table.Row{"thumbnails", s.ThumbSuccess, s.ThumbSkipped, s.ThumbFailed})
	t.SetStyle(table.StyleRounded)
	out.WriteString(t.Render())

	for _, f := range s.Failures {
		fmt.Fprintf(&out, "\nfailed %s '%s': %s", f.Asset, f.Url, f.Err)
	}

	return out.String()
}
