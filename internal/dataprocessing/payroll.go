package dataprocessing

import (
	"context"
	"log/slog"
	"strconv"

	"paymerge/internal/money"
	"paymerge/internal/tabular"
	"paymerge/pkg/contracts/domain"
)

// ParsePayroll runs the full payroll pipeline over one upload buffer:
// extract grids, segment into per-employee sections, resolve columns,
// normalize records. Sections without a resolvable earnings column are
// skipped with a tagged outcome.
func ParsePayroll(ctx context.Context, logger *slog.Logger, data []byte, filename string, extraAliases map[Role][]string) ParseResult {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("export", "payroll"), slog.String("filename", filename))

	profile := payrollProfile(extraAliases)
	tables := tabular.Extract(logger, data, filename)

	var result ParseResult
	for _, nt := range tables {
		sections := payrollSections(nt)
		if len(sections) == 0 {
			logger.WarnContext(ctx, "table yielded no payroll sections", slog.Int("row_count", len(nt.Table)))
			result.Outcomes = append(result.Outcomes, SectionOutcome{
				Status: NoUsableColumns,
				Reason: "no sections could be formed",
			})
			continue
		}
		for _, sec := range sections {
			outcome := normalizePayrollSection(ctx, logger, sec, profile, filename)
			result.Outcomes = append(result.Outcomes, outcome)
			result.Records = append(result.Records, outcome.Records...)
		}
	}

	logger.InfoContext(ctx, "payroll parse complete",
		slog.Int("record_count", len(result.Records)),
		slog.Int("skipped_sections", result.SkippedCount()))
	return result
}

func normalizePayrollSection(ctx context.Context, logger *slog.Logger, sec Section, profile Profile, filename string) SectionOutcome {
	cols, reason := resolveColumns(sec, profile)
	if reason != "" {
		logger.WarnContext(ctx, "skipping payroll section",
			slog.String("name_hint", sec.NameHint),
			slog.String("reason", reason))
		return SectionOutcome{Status: SectionSkipped, Reason: reason, NameHint: sec.NameHint}
	}

	records := make([]domain.CanonicalRecord, 0, len(sec.Rows))
	malformed := 0
	for i, row := range sec.Rows {
		gross, grossOK := money.ParseDetail(roleCell(row, cols, RoleGrossAmount))
		net, netOK := money.ParseDetail(roleCell(row, cols, RoleNetAmount))
		if !grossOK || !netOK {
			malformed++
		}

		name := sec.NameHint
		if name == "" {
			name = roleCell(row, cols, RoleEmployeeName)
		}

		records = append(records, domain.CanonicalRecord{
			EmployeeID:         roleCell(row, cols, RoleEmployeeID),
			EmployeeName:       name,
			Date:               roleCell(row, cols, RoleDate),
			Source:             domain.SourcePayroll,
			PayComponent:       "appointment",
			GrossAmount:        gross,
			NetAmount:          net,
			Notes:              roleCell(row, cols, RoleNotes),
			OriginalRowID:      strconv.Itoa(i),
			OriginalSourceFile: filename,
		})
	}

	if malformed > 0 {
		// coerced to 0.0 by contract; surfaced here so export corruption
		// does not silently read as zero-earning rows
		logger.WarnContext(ctx, "malformed money cells in payroll section",
			slog.String("name_hint", sec.NameHint),
			slog.Int("malformed_cells", malformed))
	}

	return SectionOutcome{Status: SectionExtracted, NameHint: sec.NameHint, Records: records}
}

func roleCell(row []string, cols RoleMap, role Role) string {
	idx, ok := cols[role]
	if !ok {
		return ""
	}
	return tabular.Cell(row, idx)
}
