package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ocrImageTypes are the embedded image encodings Tesseract can decode.
var ocrImageTypes = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"tif":  {},
	"tiff": {},
}

// PDFCPURasterizer collects the images embedded in each PDF page with
// pdfcpu. Scanned documents carry one full-page image per page, which is
// what OCR needs.
type PDFCPURasterizer struct {
	conf *model.Configuration
}

// NewPDFCPURasterizer returns a rasterizer with relaxed validation so
// slightly broken scanner output is still accepted.
func NewPDFCPURasterizer() *PDFCPURasterizer {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFCPURasterizer{conf: conf}
}

// Rasterize returns the encoded page images in page order.
func (p *PDFCPURasterizer) Rasterize(ctx context.Context, data []byte) ([][]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pages, err := api.ExtractImagesRaw(bytes.NewReader(data), nil, p.conf)
	if err != nil {
		return nil, fmt.Errorf("error extracting page images: %w", err)
	}

	var images [][]byte
	for _, page := range pages {
		objNrs := make([]int, 0, len(page))
		for objNr := range page {
			objNrs = append(objNrs, objNr)
		}
		sort.Ints(objNrs)

		for _, objNr := range objNrs {
			img := page[objNr]
			if _, ok := ocrImageTypes[img.FileType]; !ok {
				continue
			}

			raw, err := io.ReadAll(img)
			if err != nil {
				return nil, fmt.Errorf("error reading image %d on page %d: %w", objNr, img.PageNr, err)
			}
			images = append(images, raw)
		}
	}

	return images, nil
}
