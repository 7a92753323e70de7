package dataprocessing

import (
	"context"
	"log/slog"
	"strconv"

	"paymerge/internal/heuristics"
	"paymerge/internal/money"
	"paymerge/internal/tabular"
	"paymerge/pkg/contracts/domain"
)

// ParseCommission runs the full commission pipeline over one upload buffer.
// Rows with no resolvable employee fall back to the "Unassigned" sentinel so
// per-employee totals always render; sections with no resolvable amount
// column are skipped.
func ParseCommission(ctx context.Context, logger *slog.Logger, data []byte, filename string, extraAliases map[Role][]string) ParseResult {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("export", "commission"), slog.String("filename", filename))

	profile := commissionProfile(extraAliases)
	tables := tabular.Extract(logger, data, filename)

	var result ParseResult
	for _, nt := range tables {
		sections := commissionSections(nt)
		if len(sections) == 0 {
			logger.WarnContext(ctx, "table yielded no commission sections", slog.Int("row_count", len(nt.Table)))
			result.Outcomes = append(result.Outcomes, SectionOutcome{
				Status: NoUsableColumns,
				Reason: "no sections could be formed",
			})
			continue
		}
		for _, sec := range sections {
			outcome := normalizeCommissionSection(ctx, logger, sec, profile, filename)
			result.Outcomes = append(result.Outcomes, outcome)
			result.Records = append(result.Records, outcome.Records...)
		}
	}

	logger.InfoContext(ctx, "commission parse complete",
		slog.Int("record_count", len(result.Records)),
		slog.Int("skipped_sections", result.SkippedCount()))
	return result
}

func normalizeCommissionSection(ctx context.Context, logger *slog.Logger, sec Section, profile Profile, filename string) SectionOutcome {
	cols, reason := resolveColumns(sec, profile)
	if reason != "" {
		logger.WarnContext(ctx, "skipping commission section",
			slog.String("name_hint", sec.NameHint),
			slog.String("reason", reason))
		return SectionOutcome{Status: SectionSkipped, Reason: reason, NameHint: sec.NameHint}
	}

	records := make([]domain.CanonicalRecord, 0, len(sec.Rows))
	malformed := 0
	for i, row := range sec.Rows {
		amount, ok := money.ParseDetail(roleCell(row, cols, RoleCommissionAmount))
		if !ok {
			malformed++
		}

		records = append(records, domain.CanonicalRecord{
			EmployeeID:         roleCell(row, cols, RoleEmployeeID),
			EmployeeName:       commissionEmployeeName(sec, row, cols),
			Date:               roleCell(row, cols, RoleDate),
			Source:             domain.SourceCommission,
			PayComponent:       "commission",
			CommissionPct:      money.ParsePercent(roleCell(row, cols, RoleCommissionPct)),
			CommissionAmount:   amount,
			Notes:              roleCell(row, cols, RoleNotes),
			OriginalRowID:      strconv.Itoa(i),
			OriginalSourceFile: filename,
		})
	}

	if malformed > 0 {
		logger.WarnContext(ctx, "malformed money cells in commission section",
			slog.String("name_hint", sec.NameHint),
			slog.Int("malformed_cells", malformed))
	}

	return SectionOutcome{Status: SectionExtracted, NameHint: sec.NameHint, Records: records}
}

// commissionEmployeeName prefers the section hint, then the resolved name
// column, then the Unassigned sentinel. Resolved cells that read like
// catalog strings are treated as unresolved; a service description grouped
// as an employee would corrupt the totals.
func commissionEmployeeName(sec Section, row []string, cols RoleMap) string {
	if sec.NameHint != "" {
		return sec.NameHint
	}
	name := roleCell(row, cols, RoleEmployeeName)
	if name == "" || heuristics.LooksCatalog(name) {
		return domain.UnassignedEmployee
	}
	return name
}
