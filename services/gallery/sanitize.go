package gallery

import (
	"net/url"
	"path"
	"strings"
)

// SanitizeFilename replaces every character outside of
// [A-Za-z0-9._-] with an underscore. Pure, so a given source url always
// maps to the same local name across runs.
func SanitizeFilename(name string) string {
	var out strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z',
			c >= '0' && c <= '9',
			c == '.', c == '_', c == '-':
			out.WriteRune(c)
		default:
			out.WriteRune('_')
		}
	}
	return out.String()
}

// PdfFilename derives the local file name for a pdf url from its base
// name, forcing a .pdf suffix.
func PdfFilename(pdfUrl string) string {
	name := urlBasename(pdfUrl)
	if name == "" {
		name = "download.pdf"
	}
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		name += ".pdf"
	}
	return SanitizeFilename(name)
}

// ThumbFilename names a thumbnail after the pdf it belongs to, keeping the
// thumbnail url's extension (default .jpg).
func ThumbFilename(pdfFilename, thumbUrl string) string {
	base := strings.TrimSuffix(pdfFilename, path.Ext(pdfFilename))
	ext := path.Ext(urlBasename(thumbUrl))
	if ext == "" {
		ext = ".jpg"
	}
	return SanitizeFilename(base + "_thumb" + ext)
}

func urlBasename(rawUrl string) string {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}
