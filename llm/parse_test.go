package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONStripsCodeFence(t *testing.T) {
	fenced := "```json\n[{\"amount\": 4.5}]\n```"
	assert.Equal(t, `[{"amount": 4.5}]`, CleanJSON(fenced))

	bare := "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSON(bare))
}

func TestCleanJSONLeavesPlainJSONAlone(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSON("  {\"a\": 1}  "))
}

func TestParseJSONMalformedOutput(t *testing.T) {
	var v map[string]any
	err := ParseJSON("Sorry, I can't help with that.", &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedOutput)
	assert.NotErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseJSONSchemaMismatch(t *testing.T) {
	var v struct {
		Amount float64 `json:"amount"`
	}
	err := ParseJSON(`{"amount": "not a number"}`, &v)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseJSONSuccess(t *testing.T) {
	var v struct {
		Amount float64 `json:"amount"`
	}
	require.NoError(t, ParseJSON("```json\n{\"amount\": 42.5}\n```", &v))
	assert.Equal(t, 42.5, v.Amount)
}

func TestParseExpenseArray(t *testing.T) {
	raw := "```json\n" + `[
		{"bill_no": "123", "expence_name": "Coffee", "amount": 4.5, "category": "Food", "mode": "card"},
		{"bill_no": null, "expence_name": "Bus ticket", "amount": 2.0, "category": "Transport", "mode": "cash"}
	]` + "\n```"

	expenses, err := ParseExpenseArray(raw)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	require.NotNil(t, expenses[0].BillNo)
	assert.Equal(t, "123", *expenses[0].BillNo)
	assert.Equal(t, "Coffee", expenses[0].Name)
	assert.Equal(t, 4.5, expenses[0].Amount)
	assert.Equal(t, "Food", expenses[0].Category)
	assert.Equal(t, "card", expenses[0].Mode)

	assert.Nil(t, expenses[1].BillNo)
	assert.Equal(t, "Bus ticket", expenses[1].Name)
}

func TestParseExpenseArrayRejectsObject(t *testing.T) {
	_, err := ParseExpenseArray(`{"expence_name": "Coffee", "amount": 4.5}`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseExpenseArrayRejectsProse(t *testing.T) {
	_, err := ParseExpenseArray("This image does not look like a receipt.")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedOutput)
}

func TestParseExpenseArrayEmpty(t *testing.T) {
	expenses, err := ParseExpenseArray("[]")
	require.NoError(t, err)
	assert.Empty(t, expenses)
}
