package dataprocessing

import (
	"regexp"
	"strings"

	"paymerge/internal/tabular"
)

// totalForRe matches the marker rows that close employee sections in the
// payroll layout, capturing the employee name.
var totalForRe = regexp.MustCompile(`(?i)^\s*total for\s+(.+?)\s*$`)

// payrollHeaderTokens identify a payroll section header row, in preference
// order.
var payrollHeaderTokens = []string{"appointment date", "date"}

// commissionHeaderTokens must all appear somewhere in a commission header
// row (the dual-header layout).
var commissionHeaderTokens = []string{"date", "item name"}

// payrollSections splits a payroll grid into per-employee sections.
//
// Tables that arrived with a markup name hint are one section each; the grid
// layout is segmented by "Total for <name>" marker rows, each closing the
// section whose header is the nearest preceding header-token row. A grid
// with no marker rows is a single section.
func payrollSections(nt tabular.NamedTable) []Section {
	grid := nt.Table
	if len(grid) == 0 {
		return nil
	}

	if nt.Name != "" {
		return wholeTableSection(grid, nt.Name, payrollHeaderTokens)
	}

	type marker struct {
		row  int
		name string
	}
	var markers []marker
	for i, row := range grid {
		for _, cell := range row {
			if m := totalForRe.FindStringSubmatch(cell); m != nil {
				markers = append(markers, marker{row: i, name: m[1]})
				break
			}
		}
	}

	if len(markers) == 0 {
		return wholeTableSection(grid, "", payrollHeaderTokens)
	}

	var sections []Section
	for _, mk := range markers {
		header := -1
		for i := mk.row - 1; i >= 0; i-- {
			if rowHasAnyToken(grid[i], payrollHeaderTokens) {
				header = i
				break
			}
		}
		if header < 0 || header >= mk.row {
			continue
		}
		if sec, ok := buildSection(grid[header], grid[header+1:mk.row], mk.name, header); ok {
			sections = append(sections, sec)
		}
	}
	return sections
}

// commissionSections splits a commission grid by its dual-header layout:
// every row containing both a date token and an item-name token starts a
// section, the nearest preceding non-empty row supplies the name hint, and
// the body runs to the next header. Grids without any such header default to
// header row index 1.
func commissionSections(nt tabular.NamedTable) []Section {
	grid := nt.Table
	if len(grid) == 0 {
		return nil
	}

	var headers []int
	for i, row := range grid {
		if rowHasAllTokens(row, commissionHeaderTokens) {
			headers = append(headers, i)
		}
	}

	if len(headers) == 0 {
		headerRow := 1
		if len(grid) < 2 {
			headerRow = 0
		}
		if sec, ok := buildSection(grid[headerRow], grid[headerRow+1:], nt.Name, headerRow); ok {
			return []Section{sec}
		}
		return nil
	}

	hints := make([]int, len(headers)) // row index used as each header's hint, -1 if none
	names := make([]string, len(headers))
	for k, h := range headers {
		hints[k] = -1
		lower := -1
		if k > 0 {
			lower = headers[k-1]
		}
		for i := h - 1; i > lower; i-- {
			if !tabular.RowEmpty(grid[i]) {
				hints[k] = i
				names[k] = firstNonEmptyCell(grid[i])
				break
			}
		}
	}

	var sections []Section
	for k, h := range headers {
		end := len(grid)
		if k+1 < len(headers) {
			end = headers[k+1]
		}
		body := make([][]string, 0, end-h-1)
		for i := h + 1; i < end; i++ {
			// the row naming the next section belongs to no body
			if k+1 < len(hints) && i == hints[k+1] {
				continue
			}
			body = append(body, grid[i])
		}
		if sec, ok := buildSection(grid[h], body, names[k], h); ok {
			sections = append(sections, sec)
		}
	}
	return sections
}

// wholeTableSection wraps a full grid as one section. The header is the
// first row containing any of the given tokens, defaulting to row 0; marker
// rows are dropped from the body so summary lines never become records.
func wholeTableSection(grid tabular.RawTable, hint string, tokens []string) []Section {
	header := 0
	for i, row := range grid {
		if rowHasAnyToken(row, tokens) {
			header = i
			break
		}
	}
	if header+1 > len(grid) {
		return nil
	}
	body := make([][]string, 0, len(grid)-header-1)
	for _, row := range grid[header+1:] {
		if isMarkerRow(row) {
			continue
		}
		body = append(body, row)
	}
	if sec, ok := buildSection(grid[header], body, hint, header); ok {
		return []Section{sec}
	}
	return nil
}

// buildSection trims headers, drops blank-header columns and empty body
// rows. Sections whose body is empty after filtering are discarded.
func buildSection(header []string, body [][]string, hint string, headerRow int) (Section, bool) {
	keep := make([]int, 0, len(header))
	trimmed := make([]string, 0, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		keep = append(keep, i)
		trimmed = append(trimmed, h)
	}
	if len(keep) == 0 {
		return Section{}, false
	}

	rows := make([][]string, 0, len(body))
	for _, row := range body {
		if tabular.RowEmpty(row) {
			continue
		}
		cells := make([]string, len(keep))
		for j, src := range keep {
			cells[j] = strings.TrimSpace(tabular.Cell(row, src))
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return Section{}, false
	}

	return Section{
		Header:    trimmed,
		Rows:      rows,
		NameHint:  strings.TrimSpace(hint),
		HeaderRow: headerRow,
	}, true
}

func isMarkerRow(row []string) bool {
	for _, cell := range row {
		if totalForRe.MatchString(cell) {
			return true
		}
	}
	return false
}

func rowHasAnyToken(row []string, tokens []string) bool {
	for _, cell := range row {
		lc := strings.ToLower(cell)
		for _, tok := range tokens {
			if strings.Contains(lc, tok) {
				return true
			}
		}
	}
	return false
}

func rowHasAllTokens(row []string, tokens []string) bool {
	joined := strings.ToLower(strings.Join(row, " "))
	for _, tok := range tokens {
		if !strings.Contains(joined, tok) {
			return false
		}
	}
	return true
}

func firstNonEmptyCell(row []string) string {
	for _, cell := range row {
		if t := strings.TrimSpace(cell); t != "" {
			return t
		}
	}
	return ""
}
