package label

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts per-page plain text from label PDFs
type Reader struct {
	maxFileSize int64
	validator   *Validator
}

// NewReader creates a new PDF text reader with the specified constraints
func NewReader(maxFileSize int64) *Reader {
	return &Reader{
		maxFileSize: maxFileSize,
		validator:   NewValidator(maxFileSize),
	}
}

// ExtractPageTexts returns one plain-text string per page, in page order.
// A page that fails to yield text contributes an empty string, keeping page
// indices aligned with the source document. A document that cannot be
// opened at all is an ExtractionError.
func (r *Reader) ExtractPageTexts(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("path cannot be empty")
	}

	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file does not exist: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}

	if err := r.validator.ValidateFileInfo(path, fileInfo); err != nil {
		return nil, err
	}

	f, pdfReader, err := pdf.Open(path)
	if err != nil {
		return nil, &ExtractionError{Path: path, Err: err}
	}
	defer f.Close()

	texts := make([]string, 0, pdfReader.NumPage())
	for pageNum := 1; pageNum <= pdfReader.NumPage(); pageNum++ {
		// Keep a slot for every page so later pages stay at their
		// original index
		texts = append(texts, pageText(pdfReader.Page(pageNum)))
	}

	return texts, nil
}

// pageText extracts one page's plain text. The text layer panics on some
// malformed content streams, so the call is isolated here; a panic counts
// as a page failure like any other and yields an empty string.
func pageText(page pdf.Page) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}

// DocumentText joins per-page texts into the document's full text, pages
// separated by a newline in page order. This is the input the segmenter
// expects.
func DocumentText(pages []string) string {
	return strings.Join(pages, "\n")
}
