package extract

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/lexsight/internal/config"
	"github.com/MKhiriev/lexsight/models"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type fakePDFText struct {
	text  string
	err   error
	calls int
}

func (f *fakePDFText) ReadText(context.Context, []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeRasterizer struct {
	pages [][]byte
	err   error
	calls int
}

func (f *fakeRasterizer) Rasterize(context.Context, []byte) ([][]byte, error) {
	f.calls++
	return f.pages, f.err
}

type fakeDocuments struct {
	text     string
	err      error
	docxCall int
	docCall  int
}

func (f *fakeDocuments) ReadDocx(context.Context, []byte) (string, error) {
	f.docxCall++
	return f.text, f.err
}

func (f *fakeDocuments) ReadDoc(context.Context, []byte) (string, error) {
	f.docCall++
	return f.text, f.err
}

type ocrCall struct {
	images    int
	languages []string
}

type fakeRecognizer struct {
	// results are consumed in order, one per call
	results []ocrResult
	calls   []ocrCall
}

type ocrResult struct {
	text string
	err  error
}

func (f *fakeRecognizer) Recognize(_ context.Context, images [][]byte, languages []string) (string, error) {
	f.calls = append(f.calls, ocrCall{images: len(images), languages: languages})
	if len(f.results) == 0 {
		return "", errors.New("unexpected OCR call")
	}
	r := f.results[0]
	f.results = f.results[1:]
	return r.text, r.err
}

type fixture struct {
	pdf    *fakePDFText
	raster *fakeRasterizer
	docs   *fakeDocuments
	ocr    *fakeRecognizer
	d      *Dispatcher
}

func newFixture() *fixture {
	f := &fixture{
		pdf:    &fakePDFText{},
		raster: &fakeRasterizer{},
		docs:   &fakeDocuments{},
		ocr:    &fakeRecognizer{},
	}
	f.d = NewDispatcher(Strategies{
		PDFText:    f.pdf,
		Rasterizer: f.raster,
		Documents:  f.docs,
		OCR:        f.ocr,
	}, config.OCR{
		Languages:        []string{"eng", "hin", "mar", "tam", "kan", "tel"},
		FallbackLanguage: "eng",
		Parallelism:      2,
	})
	return f
}

// ── Detect ────────────────────────────────────────────────────────────────────

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		fileName string
		want     Format
		wantErr  error
	}{
		{name: "pdf by mime", mimeType: "application/pdf", fileName: "upload", want: FormatPDF},
		{name: "pdf by extension", mimeType: "application/octet-stream", fileName: "Contract.PDF", want: FormatPDF},
		{name: "pdf wins over text mime", mimeType: "text/plain", fileName: "scan.pdf", want: FormatPDF},
		{name: "docx by mime", mimeType: mimeDOCX, fileName: "a", want: FormatDOCX},
		{name: "docx by extension", fileName: "nda.docx", want: FormatDOCX},
		{name: "doc by mime", mimeType: "application/msword", fileName: "a", want: FormatDOC},
		{name: "doc by extension", fileName: "old.doc", want: FormatDOC},
		{name: "txt with charset", mimeType: "text/plain; charset=utf-8", fileName: "a", want: FormatTXT},
		{name: "txt by extension", fileName: "notes.txt", want: FormatTXT},
		{name: "rtf by mime", mimeType: "application/rtf", fileName: "a", want: FormatRTF},
		{name: "rtf by extension", fileName: "memo.rtf", want: FormatRTF},
		{name: "image by mime", mimeType: "image/heic", fileName: "photo", want: FormatImage},
		{name: "image by extension", fileName: "scan.tiff", want: FormatImage},
		{name: "webp by extension", fileName: "scan.webp", want: FormatImage},
		{name: "unsupported", mimeType: "application/zip", fileName: "archive.zip", wantErr: ErrUnsupportedFileType},
		{name: "nothing known", wantErr: ErrUnsupportedFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(tt.mimeType, tt.fileName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── PDF ───────────────────────────────────────────────────────────────────────

func TestExtract_PDFTextLayerSkipsOCR(t *testing.T) {
	f := newFixture()
	f.pdf.text = "  " + strings.Repeat("a", 51) + "\n"

	got, err := f.d.Extract(context.Background(), []byte("%PDF"), "application/pdf", "c.pdf")

	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 51), got.Text)
	assert.Equal(t, models.ExtractionPDFText, got.Method)
	assert.Equal(t, 0, f.raster.calls)
	assert.Empty(t, f.ocr.calls)
}

func TestExtract_PDFShortTextLayerRunsOCROnce(t *testing.T) {
	f := newFixture()
	f.pdf.text = strings.Repeat("a", 50)
	f.raster.pages = [][]byte{[]byte("page-1"), []byte("page-2")}
	f.ocr.results = []ocrResult{{text: "Scanned agreement between the parties."}}

	got, err := f.d.Extract(context.Background(), []byte("%PDF"), "application/pdf", "scan.pdf")

	require.NoError(t, err)
	assert.Equal(t, "Scanned agreement between the parties.", got.Text)
	assert.Equal(t, models.ExtractionPDFOCR, got.Method)
	assert.Equal(t, 1, f.raster.calls)
	require.Len(t, f.ocr.calls, 1)
	assert.Equal(t, 2, f.ocr.calls[0].images)
	assert.Equal(t, []string{"eng", "hin", "mar", "tam", "kan", "tel"}, f.ocr.calls[0].languages)
}

func TestExtract_PDFUnreadableTextLayerFallsBackToOCR(t *testing.T) {
	f := newFixture()
	f.pdf.err = errors.New("malformed xref")
	f.raster.pages = [][]byte{[]byte("page-1")}
	f.ocr.results = []ocrResult{{text: "Recovered text from the scan."}}

	got, err := f.d.Extract(context.Background(), []byte("%PDF"), "application/pdf", "scan.pdf")

	require.NoError(t, err)
	assert.Equal(t, models.ExtractionPDFOCR, got.Method)
	assert.Len(t, f.ocr.calls, 1)
}

func TestExtract_PDFFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *fixture)
	}{
		{
			name:  "rasterize error",
			setup: func(f *fixture) { f.raster.err = errors.New("broken") },
		},
		{
			name:  "no page images",
			setup: func(f *fixture) {},
		},
		{
			name: "ocr and fallback fail",
			setup: func(f *fixture) {
				f.raster.pages = [][]byte{[]byte("p")}
				f.ocr.results = []ocrResult{{err: errors.New("tess")}, {err: errors.New("tess")}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f)

			_, err := f.d.Extract(context.Background(), []byte("%PDF"), "application/pdf", "scan.pdf")

			assert.ErrorIs(t, err, ErrPDFExtraction)
		})
	}
}

// ── DOCX / DOC ────────────────────────────────────────────────────────────────

func TestExtract_Documents(t *testing.T) {
	t.Run("docx trimmed", func(t *testing.T) {
		f := newFixture()
		f.docs.text = "\n  Master services agreement.  \n"

		got, err := f.d.Extract(context.Background(), []byte("PK"), mimeDOCX, "msa.docx")

		require.NoError(t, err)
		assert.Equal(t, "Master services agreement.", got.Text)
		assert.Equal(t, models.ExtractionDOCX, got.Method)
		assert.Equal(t, 1, f.docs.docxCall)
	})

	t.Run("doc uses legacy reader", func(t *testing.T) {
		f := newFixture()
		f.docs.text = "Legacy lease agreement text."

		got, err := f.d.Extract(context.Background(), []byte{0xD0, 0xCF}, "", "lease.doc")

		require.NoError(t, err)
		assert.Equal(t, models.ExtractionDOC, got.Method)
		assert.Equal(t, 1, f.docs.docCall)
	})

	t.Run("reader error", func(t *testing.T) {
		f := newFixture()
		f.docs.err = errors.New("zip: not a valid zip file")

		_, err := f.d.Extract(context.Background(), []byte("x"), "", "bad.docx")

		assert.ErrorIs(t, err, ErrDOCXExtraction)
	})
}

// ── TXT / RTF ─────────────────────────────────────────────────────────────────

func TestExtract_PlainTextVerbatim(t *testing.T) {
	f := newFixture()
	content := "Hello World, this is a test contract with enough length."

	got, err := f.d.Extract(context.Background(), []byte(content), "text/plain", "test.txt")

	require.NoError(t, err)
	assert.Equal(t, content, got.Text)
	assert.Equal(t, "test.txt", got.FileName)
	assert.Equal(t, "text/plain", got.FileType)
	assert.Equal(t, models.ExtractionText, got.Method)
	assert.Empty(t, f.ocr.calls)
}

func TestExtract_InvalidUTF8Replaced(t *testing.T) {
	f := newFixture()

	got, err := f.d.Extract(context.Background(), []byte("Clause one\xffapplies here"), "", "a.txt")

	require.NoError(t, err)
	assert.Equal(t, "Clause one�applies here", got.Text)
}

func TestExtract_RTFKeepsControlWords(t *testing.T) {
	f := newFixture()
	content := `{\rtf1\ansi Termination clause}`

	got, err := f.d.Extract(context.Background(), []byte(content), "application/rtf", "t.rtf")

	require.NoError(t, err)
	assert.Equal(t, content, got.Text)
	assert.Equal(t, models.ExtractionRTF, got.Method)
}

// ── images ────────────────────────────────────────────────────────────────────

func TestExtract_ImageRetriesWithFallbackLanguage(t *testing.T) {
	f := newFixture()
	f.ocr.results = []ocrResult{
		{err: errors.New("missing traineddata")},
		{text: "Recognised with english only."},
	}

	got, err := f.d.Extract(context.Background(), []byte("png"), "image/png", "photo.png")

	require.NoError(t, err)
	assert.Equal(t, "Recognised with english only.", got.Text)
	assert.Equal(t, models.ExtractionImageOCR, got.Method)
	require.Len(t, f.ocr.calls, 2)
	assert.Equal(t, []string{"eng"}, f.ocr.calls[1].languages)
}

func TestExtract_ImageFailure(t *testing.T) {
	f := newFixture()
	f.ocr.results = []ocrResult{{err: errors.New("a")}, {err: errors.New("b")}}

	_, err := f.d.Extract(context.Background(), []byte("png"), "image/png", "photo.png")

	assert.ErrorIs(t, err, ErrImageExtraction)
	assert.ErrorIs(t, err, ErrOCR)
}

func TestExtract_ImageCanceledIsNotRetried(t *testing.T) {
	f := newFixture()
	f.ocr.results = []ocrResult{{err: context.Canceled}}

	_, err := f.d.Extract(context.Background(), []byte("png"), "image/jpeg", "photo.jpg")

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, f.ocr.calls, 1)
}

// ── post-conditions ───────────────────────────────────────────────────────────

func TestExtract_ShortTextIsFailure(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty", content: ""},
		{name: "whitespace", content: "   \n\t  "},
		{name: "nine characters", content: "  123456789  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()

			got, err := f.d.Extract(context.Background(), []byte(tt.content), "text/plain", "a.txt")

			assert.ErrorIs(t, err, ErrNoTextExtracted)
			assert.Equal(t, tt.content, got.Text)
		})
	}
}

func TestExtract_TenCharactersIsSuccess(t *testing.T) {
	f := newFixture()

	got, err := f.d.Extract(context.Background(), []byte("1234567890"), "text/plain", "a.txt")

	require.NoError(t, err)
	assert.Equal(t, "1234567890", got.Text)
}

func TestExtract_Unsupported(t *testing.T) {
	f := newFixture()

	_, err := f.d.Extract(context.Background(), []byte("PK"), "application/zip", "a.zip")

	assert.ErrorIs(t, err, ErrUnsupportedFileType)
}
