// Package extractor turns a receipt image or PDF into structured expense
// records: encode the media, compose the extraction prompt, invoke the model
// once, and parse its output. No OCR happens here; vision is the model's job.
package extractor

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tohidkhanbagani/expense-tracker/llm"
	"github.com/tohidkhanbagani/expense-tracker/logger"
	"github.com/tohidkhanbagani/expense-tracker/media"
	"github.com/tohidkhanbagani/expense-tracker/models"
	"github.com/tohidkhanbagani/expense-tracker/prompts"
)

// Invoker is the single opaque model call the pipeline depends on.
type Invoker interface {
	Invoke(ctx context.Context, p llm.Prompt) (string, error)
}

type Extractor struct {
	llm Invoker
}

func New(invoker Invoker) *Extractor {
	return &Extractor{llm: invoker}
}

// ExtractFile extracts expenses from a file on disk. inputType may be empty,
// in which case it is inferred from the file extension.
func (e *Extractor) ExtractFile(ctx context.Context, path, inputType string) ([]models.ExtractedExpense, error) {
	resolved, err := media.DetectInputType(path, inputType)
	if err != nil {
		return nil, err
	}

	var prompt llm.Prompt
	switch resolved {
	case media.TypeImage:
		imgB64, err := media.EncodeImageFile(path)
		if err != nil {
			return nil, err
		}
		prompt = llm.Prompt{
			Text:      prompts.ExtractionSystemPrompt(),
			ImageB64:  imgB64,
			ImageMIME: media.ImageMIME(path),
		}
	case media.TypePDF:
		pdfText, err := media.PDFToText(path)
		if err != nil {
			return nil, fmt.Errorf("error extracting pdf text: %w", err)
		}
		prompt = llm.Prompt{Text: prompts.ExtractionFromPDF(pdfText)}
	}

	return e.run(ctx, prompt)
}

// ExtractImageBytes extracts expenses from an in-memory image.
func (e *Extractor) ExtractImageBytes(ctx context.Context, data []byte) ([]models.ExtractedExpense, error) {
	prompt := llm.Prompt{
		Text:     prompts.ExtractionSystemPrompt(),
		ImageB64: media.EncodeImageBytes(data),
	}
	return e.run(ctx, prompt)
}

func (e *Extractor) run(ctx context.Context, prompt llm.Prompt) ([]models.ExtractedExpense, error) {
	raw, err := e.llm.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	expenses, err := llm.ParseExpenseArray(raw)
	if err != nil {
		return nil, err
	}

	logger.Get().Info("extracted expenses", zap.Int("count", len(expenses)))
	return expenses, nil
}
