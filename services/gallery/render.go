package gallery

import (
	"bytes"
	"html/template"
	"path"
	"path/filepath"

	"nudelguides/lib/scrapers/nudel"
)

type galleryCard struct {
	Title     string
	PdfHref   string
	ThumbHref string
	VideoUrl  string
}

type galleryData struct {
	Title string
	Count int
	Cards []galleryCard
}

// Render produces the complete gallery document as a string. It performs
// no I/O and is deterministic for a given entry list; the caller writes it
// to disk. pdfDir and thumbDir are the asset directory names as seen from
// the gallery file.
func Render(guides []nudel.Guide, pdfDir, thumbDir string) (string, error) {
	data := galleryData{
		Title: "Nudel Step-by-Step Guides",
		Count: len(guides),
	}
	for _, g := range guides {
		card := galleryCard{
			Title:    g.Title,
			PdfHref:  path.Join(pdfDir, filepath.Base(g.LocalPdf)),
			VideoUrl: g.VideoUrl,
		}
		if g.LocalThumbnail != "" {
			card.ThumbHref = path.Join(thumbDir, filepath.Base(g.LocalThumbnail))
		}
		data.Cards = append(data.Cards, card)
	}

	var buf bytes.Buffer
	err := galleryTemplate.Execute(&buf, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

var galleryTemplate = template.Must(template.New("gallery").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    padding: 20px;
    min-height: 100vh;
}
.container { max-width: 1400px; margin: 0 auto; }
h1 {
    color: white;
    text-align: center;
    margin-bottom: 30px;
    font-size: 2.5em;
    text-shadow: 2px 2px 4px rgba(0,0,0,0.3);
}
.stats {
    background: white;
    padding: 15px;
    border-radius: 10px;
    margin-bottom: 30px;
    display: flex;
    justify-content: space-between;
    align-items: center;
    flex-wrap: wrap;
    gap: 15px;
    box-shadow: 0 4px 6px rgba(0,0,0,0.1);
}
.random-button {
    padding: 12px 24px;
    background: linear-gradient(135deg, #f093fb 0%, #f5576c 100%);
    color: white;
    border: none;
    border-radius: 8px;
    font-size: 1em;
    font-weight: 600;
    cursor: pointer;
}
.gallery {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(280px, 1fr));
    gap: 25px;
}
.card {
    background: white;
    border-radius: 12px;
    overflow: hidden;
    box-shadow: 0 4px 6px rgba(0,0,0,0.1);
    display: flex;
    flex-direction: column;
}
.thumbnail {
    width: 100%;
    height: 200px;
    object-fit: cover;
    background: #f0f0f0;
}
.no-thumbnail {
    display: flex;
    align-items: center;
    justify-content: center;
    background: linear-gradient(135deg, #f093fb 0%, #f5576c 100%);
    color: white;
    font-weight: 500;
}
.card-content {
    padding: 15px;
    flex-grow: 1;
    display: flex;
    flex-direction: column;
    gap: 10px;
}
.card-title { font-size: 1.1em; font-weight: 600; color: #333; line-height: 1.4; }
.card-link {
    display: inline-block;
    margin-top: auto;
    padding: 10px 20px;
    background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
    color: white;
    text-decoration: none;
    border-radius: 6px;
    text-align: center;
    font-weight: 500;
}
.video-link {
    color: #764ba2;
    font-weight: 500;
    text-decoration: none;
}
@media (max-width: 768px) {
    .gallery { grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 15px; }
    h1 { font-size: 2em; }
}
</style>
</head>
<body>
<div class="container">
    <h1>{{.Title}}</h1>
    <div class="stats">
        <div><strong>Total Guides:</strong> {{.Count}}</div>
        <button class="random-button" onclick="openRandomGuide()">Random Guide</button>
    </div>
    <div class="gallery">
{{- range .Cards}}
        <div class="card">
{{- if .ThumbHref}}
            <img src="{{.ThumbHref}}" alt="{{.Title}}" class="thumbnail">
{{- else}}
            <div class="thumbnail no-thumbnail">PDF</div>
{{- end}}
            <div class="card-content">
                <div class="card-title">{{.Title}}</div>
{{- if .VideoUrl}}
                <a href="{{.VideoUrl}}" class="video-link" target="_blank">Watch video</a>
{{- end}}
                <a href="{{.PdfHref}}" class="card-link" target="_blank">View PDF</a>
            </div>
        </div>
{{- end}}
    </div>
</div>
<script>
const guideLinks = [];
document.querySelectorAll('.card-link').forEach(link => {
    guideLinks.push(link.href);
});

function openRandomGuide() {
    if (guideLinks.length === 0) {
        alert('No guides available');
        return;
    }
    const pick = guideLinks[Math.floor(Math.random() * guideLinks.length)];
    window.open(pick, '_blank');
}
</script>
</body>
</html>
`))
