package extract

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/readyforswiss/cvscan/internal/domain/document"
)

// Extractor implements document.Extractor for PDF and DOCX uploads.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract dispatches on the declared format, then applies the
// content-quality gate common to both paths.
func (e *Extractor) Extract(doc document.SourceDocument) (string, error) {
	format, err := document.DetectFormat(doc.ContentType, doc.FileName)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case document.FormatPDF:
		text, err = extractPDF(doc.Content)
	case document.FormatDOCX:
		text, err = extractDOCX(doc.Content)
	default:
		return "", document.ErrUnsupportedFormat
	}
	if err != nil {
		return "", err
	}

	if len(strings.TrimSpace(text)) < document.MinTextLength {
		return "", document.ErrEmptyContent
	}
	return text, nil
}

// extractPDF walks pages in order and joins them with a newline. Within a
// page, GetPlainText keeps text items whole in content-stream order;
// layout and columns are not interpreted.
func extractPDF(data []byte) (text string, err error) {
	// The pdf package panics on some malformed files; treat that the same
	// as a parse error.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", document.ErrExtractionFailed, r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", document.ErrExtractionFailed, err)
	}

	var pages []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, perr := page.GetPlainText(nil)
		if perr != nil {
			return "", fmt.Errorf("%w: %v", document.ErrExtractionFailed, perr)
		}
		pages = append(pages, pageText)
	}
	return strings.Join(pages, "\n"), nil
}

var (
	docxTags     = regexp.MustCompile(`<[^>]+>`)
	docxParaEnds = regexp.MustCompile(`</w:p>`)
	docxEntities = strings.NewReplacer(
		"&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'",
	)
)

// extractDOCX pulls the raw text out of the document body, discarding all
// styling and structure beyond paragraph breaks.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", document.ErrExtractionFailed, err)
	}
	defer doc.Close()

	content := doc.Editable().GetContent()
	content = docxParaEnds.ReplaceAllString(content, "\n")
	content = docxTags.ReplaceAllString(content, "")
	return docxEntities.Replace(content), nil
}
