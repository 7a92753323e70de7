// Package tabular turns adversarial report exports into raw string grids.
// It detects the real encoding behind a filename (HTML mislabeled as .xls,
// true legacy BIFF, OOXML, delimited text), decodes it, and hands back
// undecorated rows of string cells. No header is promoted and no cell is
// type-coerced here; both are downstream concerns.
package tabular

import "strings"

// RawTable is an ordered grid of string cells, rows indexed from 0. Rows may
// be ragged; use Cell for bounds-safe access.
type RawTable [][]string

// NamedTable pairs a grid with an employee-name hint recovered from markup
// surrounding the table. Name is "" for tables without such context.
type NamedTable struct {
	Name  string
	Table RawTable
}

// IsEmpty reports whether the table has no non-blank cell at all.
func (t RawTable) IsEmpty() bool {
	for _, row := range t {
		if !RowEmpty(row) {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every cell in the row is blank.
func RowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// Cell returns row[i] or "" when the row is too short.
func Cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// DropEmptyRows filters fully-blank rows out of a row slice.
func DropEmptyRows(rows [][]string) [][]string {
	out := make([][]string, 0, len(rows))
	for _, row := range rows {
		if !RowEmpty(row) {
			out = append(out, row)
		}
	}
	return out
}
