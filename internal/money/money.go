// Package money parses currency cell strings from loosely-structured report
// exports. Parsing is total: any input yields a finite float64, with 0.0 for
// anything unrecognizable.
package money

import (
	"regexp"
	"strconv"
	"strings"
)

var numberRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

// Parse converts a currency cell string to a float64. Empty and unparsable
// input yield 0.0. Accounting-style parenthesized values are negative.
func Parse(s string) float64 {
	v, _ := ParseDetail(s)
	return v
}

// ParseDetail is Parse plus an ok flag so callers can count malformed cells
// instead of mistaking them for legitimate zero-earning rows. Empty input is
// ok; input where no number could be extracted is not.
func ParseDetail(s string) (float64, bool) {
	t := strings.TrimSpace(s)
	if t == "" {
		return 0, true
	}
	neg := strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")")
	t = strings.NewReplacer("$", "", ",", "", "(", "", ")", "").Replace(t)
	m := numberRe.FindString(t)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		v = -v
	}
	return v, true
}

// ParsePercent converts a percent-like cell ("12%", "0.12", "12") to a
// fraction in [0, 1]. Values greater than 1 are treated as whole percentages
// and divided by 100.
func ParsePercent(s string) float64 {
	t := strings.ReplaceAll(strings.TrimSpace(s), "%", "")
	v := Parse(t)
	if v > 1 {
		v = v / 100
	}
	return v
}
