package document

import "strings"

// Format enum
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// MinTextLength is the content-quality gate: extracted text shorter than
// this (after trimming) means the file is effectively unreadable and must
// never reach the AI stage.
const MinTextLength = 20

// SourceDocument is the uploaded resume for one request. It is never
// persisted; the bytes live only for the duration of the scan.
type SourceDocument struct {
	FileName    string
	ContentType string
	Content     []byte
}

// DetectFormat resolves the declared MIME type and filename to a Format.
// The DOCX MIME type is long and browsers are inconsistent about it, so a
// .docx filename suffix is accepted as well.
func DetectFormat(contentType, fileName string) (Format, error) {
	switch contentType {
	case "application/pdf":
		return FormatPDF, nil
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return FormatDOCX, nil
	}
	if strings.HasSuffix(strings.ToLower(fileName), ".docx") {
		return FormatDOCX, nil
	}
	if strings.HasSuffix(strings.ToLower(fileName), ".pdf") {
		return FormatPDF, nil
	}
	return "", ErrUnsupportedFormat
}
