package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{name: "plain dollars", input: "$1,234.56", want: 1234.56},
		{name: "accounting negative", input: "(50.00)", want: -50.0},
		{name: "accounting negative with symbol", input: "($1,250.75)", want: -1250.75},
		{name: "empty", input: "", want: 0},
		{name: "whitespace only", input: "   ", want: 0},
		{name: "garbage", input: "garbage", want: 0},
		{name: "bare number", input: "42.5", want: 42.5},
		{name: "explicit negative", input: "-17.25", want: -17.25},
		{name: "thousands no decimals", input: "1,000", want: 1000},
		{name: "embedded number", input: "USD 99.95 total", want: 99.95},
		{name: "integer", input: "7", want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
		})
	}
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
	}{
		{input: "", wantOK: true},
		{input: "$10.00", wantOK: true},
		{input: "n/a", wantOK: false},
		{input: "--", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, ok := ParseDetail(tt.input)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{input: "12%", want: 0.12},
		{input: "0.12", want: 0.12},
		{input: "12", want: 0.12},
		{input: "1", want: 1},
		{input: "", want: 0},
		{input: "not a pct", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParsePercent(tt.input), 1e-9)
		})
	}
}
