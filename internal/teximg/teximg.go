// Package teximg compiles LaTeX source to a PNG image by shelling out to
// pdflatex and ImageMagick's convert. It backs the terminal preview mode.
package teximg

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// RenderPage compiles a complete LaTeX document and returns the first page
// as PNG data.
func RenderPage(latexSource string, dpi int) ([]byte, error) {
	if dpi <= 0 {
		dpi = 300
	}

	dir, err := os.MkdirTemp("", "mathtext")
	if err != nil {
		return nil, err
	}

	texFile := filepath.Join(dir, "doc.tex")
	if err := os.WriteFile(texFile, []byte(latexSource), 0644); err != nil {
		os.RemoveAll(dir)
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.Command("pdflatex", "-interaction=nonstopmode", "-output-directory", dir, texFile)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// Keep the temp directory so the logs can be inspected.
		return nil, fmt.Errorf("pdflatex failed: %v\nLaTeX STDOUT:\n%s\nLaTeX STDERR:\n%s\nTemp dir: %s",
			err, stdout.String(), stderr.String(), dir)
	}

	pdfFile := filepath.Join(dir, "doc.pdf")
	pngFile := filepath.Join(dir, "doc.png")
	stdout.Reset()
	stderr.Reset()

	cmd = exec.Command("convert",
		"-density", fmt.Sprintf("%d", dpi),
		"-quality", "100",
		"-trim",
		"+repage",
		pdfFile+"[0]", pngFile)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("convert failed for PDF '%s': %v\nConverter STDOUT:\n%s\nConverter STDERR:\n%s\nTemp dir: %s",
			pdfFile, err, stdout.String(), stderr.String(), dir)
	}

	if _, statErr := os.Stat(pngFile); os.IsNotExist(statErr) {
		return nil, fmt.Errorf("convert appeared to succeed but did not create PNG '%s'.\nConverter STDOUT:\n%s\nConverter STDERR:\n%s\nTemp dir: %s",
			pngFile, stdout.String(), stderr.String(), dir)
	}

	imgData, err := os.ReadFile(pngFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read PNG file '%s': %v\nTemp dir: %s", pngFile, err, dir)
	}

	os.RemoveAll(dir)
	return imgData, nil
}
