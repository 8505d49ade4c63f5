package infrastructure

import (
	"bytes"
	"strings"

	"github.com/unidoc/unipdf/v3/extractor"
	"github.com/unidoc/unipdf/v3/model"

	"recruiting-intake/domain"
)

// PDFExtractor pulls the text layer out of an uploaded PDF.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText returns each page's text concatenated in page order, without
// any normalization. A PDF with no text layer (a scan) yields an empty
// string, not an error; malformed bytes yield an ExtractionError.
func (e *PDFExtractor) ExtractText(data []byte) (string, error) {
	reader, err := model.NewPdfReader(bytes.NewReader(data))
	if err != nil {
		return "", &domain.ExtractionError{Err: err}
	}

	numPages, err := reader.GetNumPages()
	if err != nil {
		return "", &domain.ExtractionError{Err: err}
	}

	var text strings.Builder
	for i := 1; i <= numPages; i++ {
		page, err := reader.GetPage(i)
		if err != nil {
			return "", &domain.ExtractionError{Err: err}
		}

		ex, err := extractor.New(page)
		if err != nil {
			return "", &domain.ExtractionError{Err: err}
		}

		pageText, err := ex.ExtractText()
		if err != nil {
			return "", &domain.ExtractionError{Err: err}
		}

		text.WriteString(pageText)
	}

	return text.String(), nil
}
