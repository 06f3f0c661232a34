package gallery

import (
	"strings"

	"nudelguides/lib/scrapers/nudel"

	"github.com/antzucaro/matchr"
)

// titles are scraped from two different pages, so they only ever match
// approximately
const videoMatchThreshold = 0.82

// AttachVideos assigns each tutorial video to the single guide whose title
// matches it best. Guides without a sufficiently close video keep an empty
// VideoUrl. The input slice is not mutated.
func AttachVideos(guides []nudel.Guide, videos []nudel.Video) []nudel.Guide {
	out := append([]nudel.Guide(nil), guides...)
	bestScore := make([]float64, len(out))

	for _, v := range videos {
		if v.Title == "" {
			continue
		}

		idx := -1
		var score float64
		for i, g := range out {
			sim := matchr.JaroWinkler(
				strings.ToLower(g.Title),
				strings.ToLower(v.Title),
				false,
			)
			if sim > score {
				score = sim
				idx = i
			}
		}

		if idx < 0 || score < videoMatchThreshold {
			continue
		}
		if out[idx].VideoUrl == "" || score > bestScore[idx] {
			out[idx].VideoUrl = v.Url
			bestScore[idx] = score
		}
	}

	return out
}
