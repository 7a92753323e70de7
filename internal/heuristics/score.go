// Package heuristics holds the pure content scorers used to recover column
// roles when header text is missing or meaningless. Each function operates on
// raw cell strings only, so scoring behavior can be tested against synthetic
// column samples in isolation from the normalizers that consume it.
package heuristics

import (
	"regexp"
	"strings"
	"unicode"
)

// moneyRe matches a money-formatted cell: optional $, thousands separators,
// optional two-decimal cents, optional parenthesized accounting negative.
var moneyRe = regexp.MustCompile(`^\s*\(?\$?-?\d{1,3}(?:,\d{3})*(?:\.\d{2})?\)?\s*$|^\s*\(?\$?-?\d+(?:\.\d{2})?\)?\s*$`)

// catalogStopWords mark cells that describe services or products rather than
// people. Observed across commission exports from the upstream platform.
var catalogStopWords = []string{
	"service", "product", "sku", "qty", "quantity", "item", "description",
	"benefit", "benefits", "set", "refill", "refills", "package",
	"membership", "member", "add-on", "addon", "payscale", "pay rate", "|",
}

// LooksMoney reports whether a cell is money-formatted.
func LooksMoney(s string) bool {
	return moneyRe.MatchString(strings.TrimSpace(s))
}

// LooksName reports whether a cell plausibly holds a person name: either a
// "Last, First" comma form or at least two space-separated words with letters.
func LooksName(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" {
		return false
	}
	if strings.Contains(t, ",") && hasLetter(t) {
		return true
	}
	return strings.Contains(t, " ") && hasLetter(t)
}

// LooksCatalog reports whether a cell reads like a catalog or service string
// rather than a person name: stop words, long comma-less marketing text, many
// words, or digits without the comma name form.
func LooksCatalog(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return false
	}
	for _, kw := range catalogStopWords {
		if strings.Contains(t, kw) {
			return true
		}
	}
	if len(t) > 40 && !strings.Contains(t, ",") {
		return true
	}
	if strings.Count(t, " ") >= 6 {
		return true
	}
	if hasDigit(t) && !strings.Contains(t, ",") {
		return true
	}
	return false
}

// ScoreMoneyColumn counts money-formatted cells in a column sample.
func ScoreMoneyColumn(cells []string) int {
	n := 0
	for _, c := range cells {
		if LooksMoney(c) {
			n++
		}
	}
	return n
}

// ScoreNameColumn is the net name-likeness of a column sample: name-looking
// cells minus twice the catalog-looking cells, so columns full of service
// descriptions lose to genuine staff-name columns.
func ScoreNameColumn(cells []string) int {
	score := 0
	for _, c := range cells {
		if LooksName(c) {
			score++
		}
		if LooksCatalog(c) {
			score -= 2
		}
	}
	return score
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
