package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		fileName    string
		want        Format
		wantErr     bool
	}{
		{"pdf mime", "application/pdf", "cv.pdf", FormatPDF, false},
		{"docx mime", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "cv.docx", FormatDOCX, false},
		{"docx by extension", "application/octet-stream", "cv.docx", FormatDOCX, false},
		{"docx extension uppercase", "", "CV.DOCX", FormatDOCX, false},
		{"pdf by extension", "", "cv.pdf", FormatPDF, false},
		{"doc not supported", "application/msword", "cv.doc", "", true},
		{"plain text not supported", "text/plain", "cv.txt", "", true},
		{"no hints", "", "cv", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.contentType, tt.fileName)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(ErrUnsupportedFormat))
	assert.True(t, IsInputError(ErrExtractionFailed))
	assert.True(t, IsInputError(ErrEmptyContent))
	assert.False(t, IsInputError(assert.AnError))
}
