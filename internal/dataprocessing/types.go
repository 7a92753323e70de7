// Package dataprocessing contains the extraction pipeline for payroll and
// commission detail exports: section segmentation, column-role resolution,
// record normalization, and aggregation into the output payload. Everything
// here follows the accuracy-first policy: a section whose mandatory columns
// cannot be resolved is skipped with a tagged outcome, never guessed at.
package dataprocessing

import "paymerge/pkg/contracts/domain"

// Section is one contiguous row range of a raw table attributed to a single
// employee under one inferred layout. Header cells are trimmed; body rows
// have fully-empty rows removed.
type Section struct {
	Header   []string
	Rows     [][]string
	NameHint string
	// HeaderRow is the header's row index in the source grid, kept for
	// diagnostics only.
	HeaderRow int
}

// Role is the semantic meaning assigned to a physical column within a
// section.
type Role string

const (
	RoleEmployeeID       Role = "employee_id"
	RoleEmployeeName     Role = "employee_name"
	RoleDate             Role = "date"
	RoleGrossAmount      Role = "gross_amount"
	RoleNetAmount        Role = "net_amount"
	RoleCommissionPct    Role = "commission_pct"
	RoleCommissionAmount Role = "commission_amount"
	RoleNotes            Role = "notes"
)

// RoleMap assigns roles to physical column indices within one section. The
// mapping may be partial.
type RoleMap map[Role]int

// SectionStatus tags the outcome of processing one section, so callers can
// tell "genuinely empty input" from "heuristics gave up".
type SectionStatus int

const (
	// SectionExtracted means records were produced.
	SectionExtracted SectionStatus = iota
	// SectionSkipped means a mandatory column could not be resolved and
	// the section was discarded.
	SectionSkipped
	// NoUsableColumns means a whole table was discarded because no
	// section could be formed from it at all.
	NoUsableColumns
)

func (s SectionStatus) String() string {
	switch s {
	case SectionExtracted:
		return "extracted"
	case SectionSkipped:
		return "section_skipped"
	case NoUsableColumns:
		return "no_usable_columns"
	default:
		return "unknown"
	}
}

// SectionOutcome reports what happened to one section (or one whole table,
// for NoUsableColumns).
type SectionOutcome struct {
	Status   SectionStatus
	Reason   string
	NameHint string
	Records  []domain.CanonicalRecord
}

// ParseResult is the output of one export's pipeline: every record extracted
// plus the per-section outcomes, including skips.
type ParseResult struct {
	Records  []domain.CanonicalRecord
	Outcomes []SectionOutcome
}

// SkippedCount returns how many sections or tables were discarded.
func (r ParseResult) SkippedCount() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status != SectionExtracted {
			n++
		}
	}
	return n
}
