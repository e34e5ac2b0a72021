package extract

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readyforswiss/cvscan/internal/domain/document"
)

const docxMIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// buildDocx assembles a minimal DOCX archive with one run per paragraph.
func buildDocx(t *testing.T, paragraphs ...string) []byte {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		fmt.Fprintf(&body, "<w:p><w:r><w:t>%s</w:t></w:r></w:p>", p)
	}
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body>` + body.String() + `</w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(doc))
	require.NoError(t, err)

	// The docx reader requires the relationships part to be present.
	rels, err := zw.Create("word/_rels/document.xml.rels")
	require.NoError(t, err)
	_, err = rels.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}

func TestExtractDocx(t *testing.T) {
	data := buildDocx(t, "Jean Dupont, développeur logiciel", "Permis B, Lausanne")

	text, err := New().Extract(document.SourceDocument{
		FileName:    "cv.docx",
		ContentType: docxMIME,
		Content:     data,
	})
	require.NoError(t, err)

	assert.Contains(t, text, "Jean Dupont, développeur logiciel")
	assert.Contains(t, text, "Permis B, Lausanne")
	// Structure discarded, no markup survives.
	assert.NotContains(t, text, "<w:")
	assert.NotContains(t, text, ">")
}

func TestExtractDocxByFilenameOnly(t *testing.T) {
	data := buildDocx(t, "Candidate profile with enough text to pass the gate")

	text, err := New().Extract(document.SourceDocument{
		FileName:    "cv.docx",
		ContentType: "application/octet-stream",
		Content:     data,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "Candidate profile")
}

func TestExtractDocxDecodesEntities(t *testing.T) {
	data := buildDocx(t, "R&amp;D engineer, 10+ years of experience in Geneva")

	text, err := New().Extract(document.SourceDocument{
		FileName:    "cv.docx",
		ContentType: docxMIME,
		Content:     data,
	})
	require.NoError(t, err)
	assert.Contains(t, text, "R&D engineer")
}

func TestExtractDocxParagraphBreaks(t *testing.T) {
	data := buildDocx(t, "Première ligne du CV", "Seconde ligne du CV")

	text, err := New().Extract(document.SourceDocument{
		FileName:    "cv.docx",
		ContentType: docxMIME,
		Content:     data,
	})
	require.NoError(t, err)

	first := strings.Index(text, "Première")
	second := strings.Index(text, "Seconde")
	require.Greater(t, second, first)
	assert.Contains(t, text[first:second], "\n")
}

// buildPDF assembles a minimal uncompressed PDF: one content stream per
// page, one Tj text item per entry, classic xref table.
func buildPDF(t *testing.T, pages ...[]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	var offsets []int
	writeObj := func(num int, body string) {
		require.Equal(t, num, len(offsets)+1, "objects must be written in xref order")
		offsets = append(offsets, buf.Len())
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.Join(kids, " "), len(pages)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i, items := range pages {
		var stream strings.Builder
		stream.WriteString("BT /F1 12 Tf 72 720 Td ")
		for _, item := range items {
			fmt.Fprintf(&stream, "(%s) Tj ", item)
		}
		stream.WriteString("ET")

		writeObj(4+2*i, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			5+2*i))
		writeObj(5+2*i, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream",
			stream.Len(), stream.String()))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		len(offsets)+1, xref)

	return buf.Bytes()
}

func TestExtractPDFKeepsWordsIntact(t *testing.T) {
	data := buildPDF(t, []string{"Jean Dupont, developpeur logiciel. ", "Permis B, Lausanne."})

	text, err := New().Extract(document.SourceDocument{
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Content:     data,
	})
	require.NoError(t, err)

	assert.Contains(t, text, "Jean Dupont")
	assert.Contains(t, text, "Permis B, Lausanne")
	assert.NotContains(t, text, "J e a n")
}

func TestExtractPDFPageOrder(t *testing.T) {
	data := buildPDF(t,
		[]string{"Premiere page du CV"},
		[]string{"Seconde page du CV"},
	)

	text, err := New().Extract(document.SourceDocument{
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Content:     data,
	})
	require.NoError(t, err)

	first := strings.Index(text, "Premiere")
	second := strings.Index(text, "Seconde")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	assert.Contains(t, text[first:second], "\n", "pages are joined with a newline")
}

func TestExtractPDFEmptyContent(t *testing.T) {
	data := buildPDF(t, []string{"court"})

	_, err := New().Extract(document.SourceDocument{
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Content:     data,
	})
	require.ErrorIs(t, err, document.ErrEmptyContent)
}

func TestExtractEmptyContent(t *testing.T) {
	data := buildDocx(t, "trop court")

	_, err := New().Extract(document.SourceDocument{
		FileName:    "cv.docx",
		ContentType: docxMIME,
		Content:     data,
	})
	require.ErrorIs(t, err, document.ErrEmptyContent)
}

func TestExtractUnsupportedFormat(t *testing.T) {
	_, err := New().Extract(document.SourceDocument{
		FileName:    "cv.txt",
		ContentType: "text/plain",
		Content:     []byte("just some plain text, long enough to pass the gate"),
	})
	require.ErrorIs(t, err, document.ErrUnsupportedFormat)
}

func TestExtractCorruptPDF(t *testing.T) {
	_, err := New().Extract(document.SourceDocument{
		FileName:    "cv.pdf",
		ContentType: "application/pdf",
		Content:     []byte("%PDF-1.4 this is not actually a pdf body"),
	})
	require.ErrorIs(t, err, document.ErrExtractionFailed)
	assert.NotErrorIs(t, err, document.ErrUnsupportedFormat)
}

func TestExtractCorruptDocx(t *testing.T) {
	_, err := New().Extract(document.SourceDocument{
		FileName:    "cv.docx",
		ContentType: docxMIME,
		Content:     []byte("not a zip archive at all"),
	})
	require.ErrorIs(t, err, document.ErrExtractionFailed)
}
