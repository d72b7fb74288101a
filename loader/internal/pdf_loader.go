package internal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"elanbot/types"

	"github.com/ledongthuc/pdf"
)

// PDFLoader turns the ELAN manual PDF into {title, content} chunks: crop the
// running headers and footers, pull the plain text, then split it on the
// manual's numbered section headings.
type PDFLoader struct {
	HeaderPt float64
	FooterPt float64
}

func NewPDFLoader() *PDFLoader {
	return &PDFLoader{
		HeaderPt: 46,
		FooterPt: 57,
	}
}

func (l *PDFLoader) ExtractChunks(path string) ([]types.Chunk, error) {
	cropped := filepath.Join(os.TempDir(), "elanbot-cropped.pdf")
	defer os.Remove(cropped)

	if err := RemoveHeaderFooterCrop(path, cropped, l.HeaderPt, l.FooterPt); err != nil {
		return nil, err
	}

	text, err := extractText(cropped)
	if err != nil {
		return nil, err
	}

	chunks := SplitSections(text)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no sections found in %s", path)
	}
	return chunks, nil
}

func extractText(path string) (string, error) {
	f, rdr, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}
	defer f.Close()

	b, err := rdr.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, b); err != nil {
		return "", fmt.Errorf("failed to read pdf buffer: %w", err)
	}
	return buf.String(), nil
}

// Matches the manual's numbered headings, e.g. "2.4 Adding a new tier".
var sectionHeadingRe = regexp.MustCompile(`^\d+(?:\.\d+)*\.?\s+\p{L}.*$`)

// SplitSections walks the extracted text line by line and opens a new chunk
// at every numbered heading. Text before the first heading is dropped
// (title page, table of contents noise).
func SplitSections(text string) []types.Chunk {
	var chunks []types.Chunk
	var title string
	var body strings.Builder

	flush := func() {
		content := strings.TrimSpace(body.String())
		if title != "" && content != "" {
			chunks = append(chunks, types.Chunk{
				Title:   title,
				Content: content,
			})
		}
		body.Reset()
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if sectionHeadingRe.MatchString(trimmed) {
			flush()
			title = trimmed
			continue
		}
		if title == "" {
			continue
		}
		body.WriteString(line)
		body.WriteString("\n")
	}

	flush()
	return chunks
}
