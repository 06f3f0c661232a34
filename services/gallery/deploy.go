package gallery

import (
	"io"
	"os"
	"path/filepath"
)

// Bundle assembles a hosting-ready copy of the gallery under outDir: the
// gallery document as index.html plus copies of the asset directories.
func Bundle(outDir, galleryHtml, pdfDir, thumbDir string) error {
	err := os.MkdirAll(outDir, 0755)
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath.Join(outDir, "index.html"), []byte(galleryHtml), 0644)
	if err != nil {
		return err
	}

	for _, dir := range []string{pdfDir, thumbDir} {
		err = copyDir(dir, filepath.Join(outDir, filepath.Base(dir)))
		if err != nil {
			return err
		}
	}
	return nil
}

func copyDir(src, dst string) error {
	err := os.MkdirAll(dst, 0755)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		err = copyFile(
			filepath.Join(src, entry.Name()),
			filepath.Join(dst, entry.Name()),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
