package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Input types accepted by the extraction pipeline.
const (
	TypeImage = "image"
	TypePDF   = "pdf"
)

// ErrUnsupportedInputType is returned when an explicit input type is neither
// "image" nor "pdf".
var ErrUnsupportedInputType = errors.New("invalid input type, use 'image' or 'pdf'")

// DetectInputType resolves the input type for a file. An explicit type wins;
// otherwise the type is inferred from the file extension (application/pdf
// means pdf, everything else is treated as an image).
func DetectInputType(path string, explicit string) (string, error) {
	if explicit != "" {
		if explicit != TypeImage && explicit != TypePDF {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedInputType, explicit)
		}
		return explicit, nil
	}
	if mime.TypeByExtension(filepath.Ext(path)) == "application/pdf" {
		return TypePDF, nil
	}
	return TypeImage, nil
}

// EncodeImageFile reads an image file and returns its base64 encoding.
func EncodeImageFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error reading image file: %w", err)
	}
	return EncodeImageBytes(data), nil
}

// EncodeImageBytes base64-encodes raw image bytes.
func EncodeImageBytes(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// ImageMIME guesses the MIME type for an image path, defaulting to JPEG.
func ImageMIME(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".gif":
		return "image/gif"
	default:
		return "image/jpeg"
	}
}

// PDFToText extracts the plain text of every page and concatenates them,
// one page per line. Pages without extractable text contribute an empty
// string. The result is whitespace-trimmed.
func PDFToText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening pdf: %w", err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}
		pages = append(pages, text)
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}
