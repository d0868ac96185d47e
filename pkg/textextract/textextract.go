package textextract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"presscraft/pkg/utils"
)

// ErrUnsupportedFormat is returned for file types no extractor handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// OCREngine reads the text of an image.
type OCREngine interface {
	Recognize(ctx context.Context, data []byte, mimeType string) (string, error)
}

// Extractor turns uploaded documents into plain text.
type Extractor struct {
	ocr OCREngine
}

// New returns an Extractor. Images are only supported when ocr is not nil.
func New(ocr OCREngine) *Extractor {
	return &Extractor{ocr: ocr}
}

var imageMimeTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".bmp":  "image/bmp",
	".tif":  "image/tiff",
	".tiff": "image/tiff",
}

// Supported reports whether fileName has an extension Extract can handle.
func (e *Extractor) Supported(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".txt", ".md", ".csv", ".docx", ".pdf":
		return true
	}
	_, isImage := imageMimeTypes[ext]
	return isImage && e.ocr != nil
}

// Extract dispatches on the file extension.
func (e *Extractor) Extract(ctx context.Context, fileName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))

	var (
		text string
		err  error
	)
	switch ext {
	case ".txt", ".md", ".csv":
		text = string(data)
	case ".docx":
		text, err = extractDocx(data)
	case ".pdf":
		text, err = extractPDF(data)
	default:
		mime, isImage := imageMimeTypes[ext]
		if !isImage || e.ocr == nil {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
		}
		text, err = e.ocr.Recognize(ctx, data, mime)
	}
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", fileName, err)
	}

	return utils.CleanToValidUTF8(strings.TrimPrefix(text, "\ufeff")), nil
}
