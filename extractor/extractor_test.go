package extractor

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tohidkhanbagani/expense-tracker/llm"
	"github.com/tohidkhanbagani/expense-tracker/media"
	"github.com/tohidkhanbagani/expense-tracker/models"
)

type stubInvoker struct {
	response string
	err      error
	prompts  []llm.Prompt
}

func (s *stubInvoker) Invoke(ctx context.Context, p llm.Prompt) (string, error) {
	s.prompts = append(s.prompts, p)
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

const extractionFixture = `[
	{"bill_no": "123", "expence_name": "Coffee", "amount": 4.5, "category": "Food", "mode": "card"}
]`

func writeImage(t *testing.T) ([]byte, string) {
	t.Helper()
	data := []byte{0xFF, 0xD8, 0xFF, 0xE0}
	path := filepath.Join(t.TempDir(), "receipt.jpg")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return data, path
}

func TestExtractFileImage(t *testing.T) {
	data, path := writeImage(t)
	invoker := &stubInvoker{response: extractionFixture}

	expenses, err := New(invoker).ExtractFile(context.Background(), path, "")
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Coffee", expenses[0].Name)
	assert.True(t, models.ValidCategory(expenses[0].Category))

	require.Len(t, invoker.prompts, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), invoker.prompts[0].ImageB64)
	assert.Equal(t, "image/jpeg", invoker.prompts[0].ImageMIME)
	assert.Contains(t, invoker.prompts[0].Text, "expence_name")
}

func TestExtractFileRejectsUnknownInputType(t *testing.T) {
	_, path := writeImage(t)
	invoker := &stubInvoker{response: extractionFixture}

	_, err := New(invoker).ExtractFile(context.Background(), path, "spreadsheet")
	require.Error(t, err)
	assert.ErrorIs(t, err, media.ErrUnsupportedInputType)
	assert.Empty(t, invoker.prompts, "no model call for a rejected input type")
}

func TestExtractFilePropagatesParseErrors(t *testing.T) {
	_, path := writeImage(t)
	invoker := &stubInvoker{response: "This is not a receipt."}

	_, err := New(invoker).ExtractFile(context.Background(), path, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, llm.ErrMalformedOutput)
}

func TestExtractImageBytes(t *testing.T) {
	invoker := &stubInvoker{response: extractionFixture}

	expenses, err := New(invoker).ExtractImageBytes(context.Background(), []byte{0xFF, 0xD8})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, 4.5, expenses[0].Amount)
}
