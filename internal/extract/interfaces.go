package extract

import "context"

// PDFTextReader returns the embedded text layer of a PDF.
type PDFTextReader interface {
	ReadText(ctx context.Context, data []byte) (string, error)
}

// PageRasterizer returns one encoded image per page region of a PDF, in
// page order, suitable as OCR input.
type PageRasterizer interface {
	Rasterize(ctx context.Context, data []byte) ([][]byte, error)
}

// DocumentReader extracts the text of word-processor documents.
type DocumentReader interface {
	ReadDocx(ctx context.Context, data []byte) (string, error)
	ReadDoc(ctx context.Context, data []byte) (string, error)
}

// Recognizer performs a single OCR operation over images using the given
// language profile and returns the recognised text joined in input order.
type Recognizer interface {
	Recognize(ctx context.Context, images [][]byte, languages []string) (string, error)
}
