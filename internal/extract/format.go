package extract

import (
	"path/filepath"
	"strings"
)

// Format is a recognised upload format.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatDOCX  Format = "docx"
	FormatDOC   Format = "doc"
	FormatTXT   Format = "txt"
	FormatRTF   Format = "rtf"
	FormatImage Format = "image"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeDOC  = "application/msword"
	mimeTXT  = "text/plain"
	mimeRTF  = "application/rtf"
)

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

// Detect resolves the format of an upload. Formats are tried in a fixed
// order and each matches on either its MIME type or its extension, so a
// "text/plain" upload named "scan.pdf" is treated as a PDF.
func Detect(mimeType, fileName string) (Format, error) {
	mt := normalizeMIME(mimeType)
	ext := strings.ToLower(filepath.Ext(fileName))

	switch {
	case mt == mimePDF || ext == ".pdf":
		return FormatPDF, nil
	case mt == mimeDOCX || ext == ".docx":
		return FormatDOCX, nil
	case mt == mimeDOC || ext == ".doc":
		return FormatDOC, nil
	case mt == mimeTXT || ext == ".txt":
		return FormatTXT, nil
	case mt == mimeRTF || ext == ".rtf":
		return FormatRTF, nil
	case strings.HasPrefix(mt, "image/") || isImageExtension(ext):
		return FormatImage, nil
	default:
		return "", ErrUnsupportedFileType
	}
}

func normalizeMIME(mimeType string) string {
	mt, _, _ := strings.Cut(mimeType, ";")
	return strings.ToLower(strings.TrimSpace(mt))
}

func isImageExtension(ext string) bool {
	_, ok := imageExtensions[ext]
	return ok
}
