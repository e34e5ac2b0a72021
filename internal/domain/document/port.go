package document

// Extractor port (interface for format-specific text extraction)
type Extractor interface {
	Extract(doc SourceDocument) (string, error)
}
