package extractor

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// PDFExtractor extracts the text layer of a PDF held in memory.
type PDFExtractor struct{}

// NewPDFExtractor creates a new PDFExtractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// Extract concatenates the plain text of every page in page order.
// Documents without a text layer yield an empty string.
func (e *PDFExtractor) Extract(data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", &ExtractionError{Message: "empty document"}
	}
	// the pdf package panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Message: "malformed pdf", Cause: fmt.Errorf("%v", r)}
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Message: "failed to read pdf", Cause: err}
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", &ExtractionError{Message: fmt.Sprintf("failed to read text of page %d", i), Cause: err}
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}

// ExtractFile reads a document from disk into memory and extracts it.
func (e *PDFExtractor) ExtractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read resume %s", path)
	}
	return e.Extract(data)
}
