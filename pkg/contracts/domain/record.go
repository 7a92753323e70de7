package domain

import (
	"math"
	"strconv"
)

// Source identifies which export a canonical record came from.
type Source string

const (
	SourcePayroll    Source = "payroll"
	SourceCommission Source = "commission"
)

// UnassignedEmployee is the sentinel name used when a commission row has no
// resolvable employee, so per-employee grouping still renders a row.
const UnassignedEmployee = "Unassigned"

// CanonicalRecord is the normalized unit of output. Every earning line from
// either export is reduced to this 15-field shape; numeric fields default to
// 0.0 and string fields to "", so every field is always present.
type CanonicalRecord struct {
	EmployeeID         string  `json:"employee_id" csv:"employee_id"`
	EmployeeName       string  `json:"employee_name" csv:"employee_name"`
	Date               string  `json:"date" csv:"date"`
	Location           string  `json:"location" csv:"location"`
	Source             Source  `json:"source" csv:"source" validate:"required,oneof=payroll commission"`
	PayComponent       string  `json:"pay_component" csv:"pay_component"`
	GrossAmount        float64 `json:"gross_amount" csv:"gross_amount"`
	NetAmount          float64 `json:"net_amount" csv:"net_amount"`
	CommissionPct      float64 `json:"commission_pct" csv:"commission_pct" validate:"gte=0,lte=1"`
	CommissionAmount   float64 `json:"commission_amount" csv:"commission_amount"`
	Tips               float64 `json:"tips" csv:"tips"`
	Bonus              float64 `json:"bonus" csv:"bonus"`
	Notes              string  `json:"notes" csv:"notes"`
	OriginalRowID      string  `json:"original_row_id" csv:"original_row_id"`
	OriginalSourceFile string  `json:"original_source_file" csv:"original_source_file"`
}

// RecordHeader returns the canonical column order for delimited export.
// The order is part of the schema contract and must not change.
func RecordHeader() []string {
	return []string{
		"employee_id", "employee_name", "date", "location", "source",
		"pay_component", "gross_amount", "net_amount", "commission_pct",
		"commission_amount", "tips", "bonus", "notes", "original_row_id",
		"original_source_file",
	}
}

// Fields returns the record's values in canonical column order.
func (r CanonicalRecord) Fields() []string {
	return []string{
		r.EmployeeID,
		r.EmployeeName,
		r.Date,
		r.Location,
		string(r.Source),
		r.PayComponent,
		formatAmount(r.GrossAmount),
		formatAmount(r.NetAmount),
		formatAmount(r.CommissionPct),
		formatAmount(r.CommissionAmount),
		formatAmount(r.Tips),
		formatAmount(r.Bonus),
		r.Notes,
		r.OriginalRowID,
		r.OriginalSourceFile,
	}
}

// PayrollContribution is the amount a record contributes to payroll totals:
// net amount when positive, otherwise gross.
func (r CanonicalRecord) PayrollContribution() float64 {
	if r.NetAmount > 0 {
		return Sanitize(r.NetAmount)
	}
	return Sanitize(r.GrossAmount)
}

// CommissionContribution is the amount a record contributes to commission
// totals. Only commission-sourced records contribute.
func (r CanonicalRecord) CommissionContribution() float64 {
	if r.Source == SourceCommission {
		return Sanitize(r.CommissionAmount)
	}
	return 0
}

// LineTotal is the display total for a single record.
func (r CanonicalRecord) LineTotal() float64 {
	return r.PayrollContribution() + r.CommissionContribution()
}

// Sanitized returns a copy with every money field forced finite. No NaN or
// Infinity may leave the core.
func (r CanonicalRecord) Sanitized() CanonicalRecord {
	r.GrossAmount = Sanitize(r.GrossAmount)
	r.NetAmount = Sanitize(r.NetAmount)
	r.CommissionPct = Sanitize(r.CommissionPct)
	r.CommissionAmount = Sanitize(r.CommissionAmount)
	r.Tips = Sanitize(r.Tips)
	r.Bonus = Sanitize(r.Bonus)
	return r
}

// Sanitize maps NaN and Infinity to 0.
func Sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(Sanitize(v), 'f', -1, 64)
}
