package chatbot

import (
	"regexp"
	"strings"

	"github.com/tohidkhanbagani/expense-tracker/models"
)

// Lightweight entity pre-extraction used by the quick-response path instead
// of a data fetch. Hints only; the model does the actual interpretation.
var (
	amountPattern   = regexp.MustCompile(`(?:₹|Rs\.?|INR)?\s*(\d{1,3}(?:,\d{3})*(?:\.\d{2})?)`)
	categoryPattern = regexp.MustCompile(`\b(food|grocery|groceries|transport|fuel|travel|utilities|rent|health|pharmacy|education|entertainment|shopping|electronics|home|services|subscriptions|fees|taxes|office)\b`)
	timePattern     = regexp.MustCompile(`\b(today|yesterday|this week|last week|this month|last month|this year|last year|\d+ days?|\d+ weeks?|\d+ months?)\b`)
)

var comparisonWords = []string{"compare", "vs", "versus", "difference", "more than", "less than"}
var urgencyWords = []string{"urgent", "immediately", "asap", "quickly", "emergency"}

// ExtractEntities pulls financial entities out of free text with regexes.
func ExtractEntities(text string) models.TextEntities {
	lower := strings.ToLower(text)

	return models.TextEntities{
		Amounts:            captureAll(amountPattern, lower),
		Categories:         captureAll(categoryPattern, lower),
		TimeReferences:     captureAll(timePattern, lower),
		ContainsQuestion:   strings.Contains(text, "?"),
		ContainsComparison: containsAny(lower, comparisonWords),
		UrgencyIndicators:  containsAny(lower, urgencyWords),
	}
}

func captureAll(re *regexp.Regexp, text string) []string {
	matches := re.FindAllStringSubmatch(text, -1)
	captured := []string{}
	for _, m := range matches {
		if len(m) > 1 && m[1] != "" {
			captured = append(captured, m[1])
		}
	}
	return captured
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
