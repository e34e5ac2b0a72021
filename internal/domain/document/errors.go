package document

import "errors"

// Input errors. All three map to a 4xx response at the HTTP boundary and
// guarantee the AI stage is never reached.
var (
	// ErrUnsupportedFormat indicates the declared format is neither PDF nor DOCX.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrExtractionFailed indicates the file claimed a supported format but
	// could not be parsed (corrupt stream, unreadable structure).
	ErrExtractionFailed = errors.New("document extraction failed")

	// ErrEmptyContent indicates extraction succeeded but yielded too little
	// text to analyze.
	ErrEmptyContent = errors.New("document content too short")
)

// IsInputError reports whether err belongs to the input-error class
// (caller mistake, 4xx) as opposed to an internal or upstream failure.
func IsInputError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) ||
		errors.Is(err, ErrExtractionFailed) ||
		errors.Is(err, ErrEmptyContent)
}
