package dataprocessing

import (
	"fmt"
	"strings"

	"paymerge/internal/heuristics"
)

// scoreSampleRows caps how many body rows the content scorers look at.
const scoreSampleRows = 200

// Profile describes how roles resolve for one export family. Alias lists are
// ordered: earlier candidates win. ScoreRoles fall back to content scoring
// when no alias matches; Positional applies only when every header in the
// section is a bare digit string (labels lost on export).
type Profile struct {
	Name       string
	Aliases    map[Role][]string
	ScoreRoles []Role
	Positional map[Role]int
	Mandatory  Role
}

// payrollProfile resolves the payroll detail export. The strict positional
// layout (date=0, base pay=6, earnings=8) covers the platform's
// numeric-header HTML tables.
func payrollProfile(extra map[Role][]string) Profile {
	return Profile{
		Name: "payroll",
		Aliases: mergeAliases(map[Role][]string{
			RoleDate:         {"appointment date", "date"},
			RoleGrossAmount:  {"base pay", "base"},
			RoleNetAmount:    {"earnings", "net pay", "total pay", "total", "pay"},
			RoleEmployeeName: employeeNameAliases(),
			RoleEmployeeID:   {"employee id", "staff id"},
			RoleNotes:        {"notes", "note", "comment"},
		}, extra),
		ScoreRoles: []Role{RoleNetAmount},
		Positional: map[Role]int{
			RoleDate:        0,
			RoleGrossAmount: 6,
			RoleNetAmount:   8,
		},
		Mandatory: RoleNetAmount,
	}
}

// commissionProfile resolves the commission detail export.
func commissionProfile(extra map[Role][]string) Profile {
	return Profile{
		Name: "commission",
		Aliases: mergeAliases(map[Role][]string{
			RoleDate:             {"sale date", "sales date", "transaction date", "date"},
			RoleCommissionAmount: {"commission amount", "total commission", "commission", "amount", "amt"},
			RoleCommissionPct:    {"commission %", "commission pct", "commission rate", "percent"},
			RoleEmployeeName:     employeeNameAliases(),
			RoleEmployeeID:       {"employee id", "staff id"},
			RoleNotes:            {"notes", "note", "comment"},
		}, extra),
		ScoreRoles: []Role{RoleCommissionAmount, RoleEmployeeName},
		Mandatory:  RoleCommissionAmount,
	}
}

func employeeNameAliases() []string {
	return []string{
		"sold by", "salesperson", "staff name", "employee name",
		"employee", "staff", "provider", "service provider",
	}
}

func mergeAliases(base map[Role][]string, extra map[Role][]string) map[Role][]string {
	if len(extra) == 0 {
		return base
	}
	out := make(map[Role][]string, len(base))
	for role, list := range base {
		out[role] = append(append([]string(nil), list...), extra[role]...)
	}
	for role, list := range extra {
		if _, ok := out[role]; !ok {
			out[role] = append([]string(nil), list...)
		}
	}
	return out
}

// resolveColumns assigns roles to section columns: alias match first, the
// positional table for all-digit headers next, content scoring last. The
// returned reason is non-empty when the profile's mandatory role could not
// be resolved and the section must be skipped.
func resolveColumns(sec Section, profile Profile) (RoleMap, string) {
	roles := make(RoleMap)
	assigned := make(map[int]bool)

	lower := make([]string, len(sec.Header))
	for i, h := range sec.Header {
		lower[i] = strings.ToLower(h)
	}

	for role, candidates := range profile.Aliases {
		if idx, ok := aliasMatch(lower, candidates); ok {
			roles[role] = idx
			assigned[idx] = true
		}
	}

	if allDigitHeaders(sec.Header) {
		for role, idx := range profile.Positional {
			if _, done := roles[role]; done {
				continue
			}
			if idx < len(sec.Header) && !assigned[idx] {
				roles[role] = idx
				assigned[idx] = true
			}
		}
	}

	sample := sec.Rows
	if len(sample) > scoreSampleRows {
		sample = sample[:scoreSampleRows]
	}
	for _, role := range profile.ScoreRoles {
		if _, done := roles[role]; done {
			continue
		}
		if idx, ok := scoreColumn(sec, sample, role, assigned); ok {
			roles[role] = idx
			assigned[idx] = true
		}
	}

	if _, ok := roles[profile.Mandatory]; !ok {
		return nil, fmt.Sprintf("no usable %s column", profile.Mandatory)
	}
	return roles, ""
}

// aliasMatch finds the first column whose header contains a candidate,
// trying candidates in priority order.
func aliasMatch(lowerHeaders []string, candidates []string) (int, bool) {
	for _, cand := range candidates {
		for i, h := range lowerHeaders {
			if strings.Contains(h, cand) {
				return i, true
			}
		}
	}
	return 0, false
}

// scoreColumn picks the best-scoring unassigned column for a role. Money
// roles need at least one money-formatted cell; the name role needs a
// positive net score, so catalog-heavy tables resolve no name at all.
func scoreColumn(sec Section, sample [][]string, role Role, assigned map[int]bool) (int, bool) {
	best, bestScore := -1, 0
	for i := range sec.Header {
		if assigned[i] {
			continue
		}
		cells := columnSample(sample, i)
		var score int
		switch role {
		case RoleEmployeeName:
			score = heuristics.ScoreNameColumn(cells)
		default:
			score = heuristics.ScoreMoneyColumn(cells)
		}
		if score > bestScore {
			best, bestScore = i, score
		}
	}
	if best < 0 || bestScore <= 0 {
		return 0, false
	}
	return best, true
}

func columnSample(rows [][]string, col int) []string {
	cells := make([]string, 0, len(rows))
	for _, row := range rows {
		if col < len(row) {
			cells = append(cells, row[col])
		}
	}
	return cells
}

func allDigitHeaders(headers []string) bool {
	for _, h := range headers {
		t := strings.TrimSpace(h)
		if t == "" {
			return false
		}
		for _, r := range t {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return len(headers) > 0
}
