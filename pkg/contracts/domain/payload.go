package domain

// GrandTotals holds the sums across every record in one ingest call.
type GrandTotals struct {
	PayrollTotal    float64 `json:"payroll_total"`
	CommissionTotal float64 `json:"commission_total"`
	CombinedTotal   float64 `json:"combined_total"`
}

// EmployeeTotal aggregates earnings per (employee_id, employee_name) key.
type EmployeeTotal struct {
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    string  `json:"employee_name"`
	PayrollTotal    float64 `json:"payroll_total"`
	CommissionTotal float64 `json:"commission_total"`
	CombinedTotal   float64 `json:"combined_total"`
}

// BreakdownRow is a canonical record plus its derived display total.
type BreakdownRow struct {
	CanonicalRecord
	LineTotal float64 `json:"line_total"`
}

// EmployeeBreakdown carries up to MaxBreakdownRows sample rows per employee
// together with the full row count. Display only, never summed.
type EmployeeBreakdown struct {
	EmployeeID   string         `json:"employee_id"`
	EmployeeName string         `json:"employee_name"`
	RowsCount    int            `json:"rows_count"`
	Rows         []BreakdownRow `json:"rows"`
}

// MaxBreakdownRows caps sample rows per employee breakdown.
const MaxBreakdownRows = 50

// Payload is the complete output of one ingest call. Together with
// CanonicalRecord sets it is the only object a caller may persist;
// everything upstream of it is transient.
type Payload struct {
	GrandTotals        GrandTotals         `json:"grand_totals"`
	EmployeeTotals     []EmployeeTotal     `json:"employee_totals"`
	EmployeeBreakdowns []EmployeeBreakdown `json:"employee_breakdowns"`
}

// EmptyPayload returns a payload with zero totals and non-nil slices, the
// result of ingesting buffers nothing could be extracted from.
func EmptyPayload() *Payload {
	return &Payload{
		EmployeeTotals:     []EmployeeTotal{},
		EmployeeBreakdowns: []EmployeeBreakdown{},
	}
}
