package heuristics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLooksMoney(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"$1,234.56", true},
		{"1234", true},
		{"(50.00)", true},
		{"($1,250.75)", true},
		{" 42.50 ", true},
		{"-17.25", true},
		{"Gel Fill", false},
		{"", false},
		{"2024-01-01", false},
		{"12.345", false}, // three decimals is not a cents format
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksMoney(tt.input))
		})
	}
}

func TestLooksName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"Doe, Jane", true},
		{"Jane Doe", true},
		{"Jane", false},
		{"", false},
		{"1,234", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksName(tt.input))
		})
	}
}

func TestLooksCatalog(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"service keyword", "Brow Lamination Service", true},
		{"product keyword", "Retail Product", true},
		{"membership", "Gold Membership", true},
		{"long marketing text", "Deluxe signature hydrating facial with extended massage", true},
		{"digits without comma", "Set 1", true},
		{"person name comma form", "Doe, Jane", false},
		{"person name space form", "Jane Doe", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LooksCatalog(tt.input))
		})
	}
}

func TestScoreMoneyColumn(t *testing.T) {
	amounts := []string{"$10.00", "(5.00)", "20", "n/a", ""}
	names := []string{"Doe, Jane", "Roe, John", "Unknown"}

	assert.Equal(t, 3, ScoreMoneyColumn(amounts))
	assert.Equal(t, 0, ScoreMoneyColumn(names))
}

func TestScoreNameColumn(t *testing.T) {
	names := []string{"Doe, Jane", "Roe, John", "Smith, Ann"}
	services := []string{"Gel Fill Service", "Lash Refill", "Brow Tint Package"}

	nameScore := ScoreNameColumn(names)
	serviceScore := ScoreNameColumn(services)

	assert.Equal(t, 3, nameScore)
	assert.Greater(t, nameScore, serviceScore)
	assert.Negative(t, serviceScore)
}
