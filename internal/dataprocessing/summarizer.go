package dataprocessing

import (
	"log/slog"
	"sort"

	"paymerge/pkg/contracts/domain"
)

// Aggregator merges normalized payroll and commission record sets into the
// output payload: grand totals, per-employee totals, and display breakdowns.
type Aggregator struct {
	logger           *slog.Logger
	maxBreakdownRows int
}

// AggregatorConfig holds configuration options for the Aggregator.
type AggregatorConfig struct {
	// MaxBreakdownRows caps sample rows per employee breakdown.
	MaxBreakdownRows int
}

// NewAggregator creates an aggregator. A zero MaxBreakdownRows falls back to
// the schema default of 50.
func NewAggregator(logger *slog.Logger, config AggregatorConfig) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	if config.MaxBreakdownRows <= 0 {
		config.MaxBreakdownRows = domain.MaxBreakdownRows
	}
	return &Aggregator{
		logger:           logger,
		maxBreakdownRows: config.MaxBreakdownRows,
	}
}

// employeeKey groups records per (employee_id, employee_name).
type employeeKey struct {
	id   string
	name string
}

// Build concatenates both record sets, sanitizes every money field, applies
// the location override, and computes totals. Employee totals are sorted
// descending by combined total, label ascending on ties. Breakdown rows are
// display-only samples and never feed the sums.
func (a *Aggregator) Build(payroll, commission []domain.CanonicalRecord, location string) *domain.Payload {
	merged := make([]domain.CanonicalRecord, 0, len(payroll)+len(commission))
	merged = append(merged, payroll...)
	merged = append(merged, commission...)

	payload := domain.EmptyPayload()
	if len(merged) == 0 {
		return payload
	}

	totals := make(map[employeeKey]*domain.EmployeeTotal)
	rows := make(map[employeeKey][]domain.BreakdownRow)
	counts := make(map[employeeKey]int)
	var order []employeeKey

	for _, rec := range merged {
		rec = rec.Sanitized()
		if location != "" {
			rec.Location = location
		}

		pay := rec.PayrollContribution()
		com := rec.CommissionContribution()
		payload.GrandTotals.PayrollTotal += pay
		payload.GrandTotals.CommissionTotal += com

		key := employeeKey{id: rec.EmployeeID, name: rec.EmployeeName}
		total, ok := totals[key]
		if !ok {
			total = &domain.EmployeeTotal{EmployeeID: rec.EmployeeID, EmployeeName: rec.EmployeeName}
			totals[key] = total
			order = append(order, key)
		}
		total.PayrollTotal += pay
		total.CommissionTotal += com

		counts[key]++
		if len(rows[key]) < a.maxBreakdownRows {
			rows[key] = append(rows[key], domain.BreakdownRow{
				CanonicalRecord: rec,
				LineTotal:       rec.LineTotal(),
			})
		}
	}

	payload.GrandTotals.CombinedTotal = payload.GrandTotals.PayrollTotal + payload.GrandTotals.CommissionTotal

	for _, key := range order {
		total := totals[key]
		total.CombinedTotal = total.PayrollTotal + total.CommissionTotal
		payload.EmployeeTotals = append(payload.EmployeeTotals, *total)
	}
	sort.SliceStable(payload.EmployeeTotals, func(i, j int) bool {
		ti, tj := payload.EmployeeTotals[i], payload.EmployeeTotals[j]
		if ti.CombinedTotal != tj.CombinedTotal {
			return ti.CombinedTotal > tj.CombinedTotal
		}
		return groupLabel(ti) < groupLabel(tj)
	})

	for _, total := range payload.EmployeeTotals {
		key := employeeKey{id: total.EmployeeID, name: total.EmployeeName}
		payload.EmployeeBreakdowns = append(payload.EmployeeBreakdowns, domain.EmployeeBreakdown{
			EmployeeID:   total.EmployeeID,
			EmployeeName: total.EmployeeName,
			RowsCount:    counts[key],
			Rows:         rows[key],
		})
	}

	a.logger.Debug("payload built",
		slog.Int("record_count", len(merged)),
		slog.Int("employee_count", len(payload.EmployeeTotals)),
		slog.Float64("combined_total", payload.GrandTotals.CombinedTotal))

	return payload
}

// groupLabel is the display identity of an employee group: name when
// present, id otherwise.
func groupLabel(t domain.EmployeeTotal) string {
	if t.EmployeeName != "" {
		return t.EmployeeName
	}
	return t.EmployeeID
}
