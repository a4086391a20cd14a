package media

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectInputTypeExplicitWins(t *testing.T) {
	got, err := DetectInputType("receipt.jpg", TypePDF)
	require.NoError(t, err)
	assert.Equal(t, TypePDF, got)
}

func TestDetectInputTypeRejectsUnknownExplicit(t *testing.T) {
	_, err := DetectInputType("receipt.jpg", "spreadsheet")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedInputType)
}

func TestDetectInputTypeFromExtension(t *testing.T) {
	got, err := DetectInputType("invoice.pdf", "")
	require.NoError(t, err)
	assert.Equal(t, TypePDF, got)

	got, err = DetectInputType("receipt.png", "")
	require.NoError(t, err)
	assert.Equal(t, TypeImage, got)

	// Unknown extensions fall back to image
	got, err = DetectInputType("upload.bin", "")
	require.NoError(t, err)
	assert.Equal(t, TypeImage, got)
}

func TestEncodeImageFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipt.jpg")
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	require.NoError(t, os.WriteFile(path, data, 0o644))

	encoded, err := EncodeImageFile(path)
	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), encoded)
}

func TestEncodeImageFileMissing(t *testing.T) {
	_, err := EncodeImageFile(filepath.Join(t.TempDir(), "missing.jpg"))
	assert.Error(t, err)
}

func TestImageMIME(t *testing.T) {
	assert.Equal(t, "image/png", ImageMIME("a.PNG"))
	assert.Equal(t, "image/webp", ImageMIME("a.webp"))
	assert.Equal(t, "image/gif", ImageMIME("a.gif"))
	assert.Equal(t, "image/jpeg", ImageMIME("a.jpg"))
	assert.Equal(t, "image/jpeg", ImageMIME("noext"))
}
