package gallery

import (
	"os"

	"github.com/go-resty/resty/v2"
)

// Service downloads guide assets into a pair of output directories and
// renders the gallery over them.
type Service struct {
	http     *resty.Client
	pdfDir   string
	thumbDir string
}

func NewService(http *resty.Client, pdfDir, thumbDir string) (Service, error) {
	for _, dir := range []string{pdfDir, thumbDir} {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return Service{}, err
		}
	}
	return Service{
		http:     http,
		pdfDir:   pdfDir,
		thumbDir: thumbDir,
	}, nil
}
