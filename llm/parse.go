package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

// ErrMalformedOutput marks model output that is not valid JSON at all (prose,
// unstripped markdown, a truncated object). For extraction flows this usually
// means the input was not a receipt.
var ErrMalformedOutput = errors.New("model output is not valid JSON")

// ErrSchemaMismatch marks valid JSON whose shape does not decode into the
// expected result type. Raised deliberately here, never inferred from error
// message text downstream.
var ErrSchemaMismatch = errors.New("model output does not match the expected shape")

// CleanJSON strips a surrounding markdown code fence, which the model emits
// despite being told not to.
func CleanJSON(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		if idx := strings.Index(cleaned, "\n"); idx >= 0 {
			cleaned = cleaned[idx+1:]
		} else {
			cleaned = strings.TrimPrefix(cleaned, "```json")
			cleaned = strings.TrimPrefix(cleaned, "```")
		}
		cleaned = strings.TrimSuffix(strings.TrimSpace(cleaned), "```")
	}
	return strings.TrimSpace(cleaned)
}

// ParseJSON decodes model output into v. The model is the sole source of
// structure: deviations are detected, not reconciled.
func ParseJSON(text string, v any) error {
	cleaned := CleanJSON(text)
	if !json.Valid([]byte(cleaned)) {
		return fmt.Errorf("%w: %s", ErrMalformedOutput, snippet(cleaned))
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return nil
}

// ParseExpenseArray decodes extraction output, enforcing the top-level
// sequence shape the extraction contract promises.
func ParseExpenseArray(text string) ([]models.ExtractedExpense, error) {
	cleaned := CleanJSON(text)
	if !json.Valid([]byte(cleaned)) {
		return nil, fmt.Errorf("%w: %s", ErrMalformedOutput, snippet(cleaned))
	}

	trimmed := strings.TrimLeft(cleaned, " \t\r\n")
	if !strings.HasPrefix(trimmed, "[") {
		return nil, fmt.Errorf("%w: expected a top-level array of expenses", ErrSchemaMismatch)
	}

	var expenses []models.ExtractedExpense
	if err := json.Unmarshal([]byte(cleaned), &expenses); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, err)
	}
	return expenses, nil
}

func snippet(s string) string {
	if len(s) > 120 {
		return s[:120] + "..."
	}
	return s
}
