// Package prompts holds the fixed system prompts and builds the final
// instruction-plus-data text sent to the model. The JSON skeletons embedded
// below are the output contract: the model is told to return isomorphic JSON
// with real values and nothing else.
package prompts

import (
	"fmt"
	"strings"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

// CategoryList is the fixed category set rendered the way the prompts quote it.
func CategoryList() string {
	return `["` + strings.Join(models.Categories, `", "`) + `"]`
}

// ExtractionSystemPrompt instructs the model to read a receipt and return an
// array of expense objects. The expence_name key is part of the contract.
func ExtractionSystemPrompt() string {
	return fmt.Sprintf(`You are an expert receipt and bill reader. Extract every expense line item from the provided receipt, bill, or invoice.

OUTPUT REQUIREMENTS:
- Return only a valid JSON array without explanations or markdown
- Each element must contain exactly these keys: "bill_no", "expence_name", "amount", "category", "mode"
- "bill_no" is the bill or invoice number, or null if none is printed
- "expence_name" is the item or merchant name
- "amount" is the numeric amount spent
- "category" must be exactly one value from the category list below
- "mode" is the payment mode (cash, card, upi, etc.), or "unknown" if not visible

FINANCIAL CATEGORIES (use only these):
%s

If the input is not a bill or receipt, still return only JSON: an empty array.

Example output:
[{"bill_no": "INV-1043", "expence_name": "Coffee", "amount": 4.5, "category": "Food", "mode": "card"}]`, CategoryList())
}

// ExtractionFromPDF appends extracted PDF text to the extraction prompt.
func ExtractionFromPDF(pdfText string) string {
	return fmt.Sprintf("%s\n\nHere is the extracted PDF text:\n%s", ExtractionSystemPrompt(), pdfText)
}
