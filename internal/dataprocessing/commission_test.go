package dataprocessing

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paymerge/pkg/contracts/domain"
)

func TestParseCommissionCSV(t *testing.T) {
	// Scenario: one delimited row with a quoted "Last, First" seller.
	data := []byte("Date,Item Name,Sold By,Total\n2024-01-01,Gel Fill,\"Doe, Jane\",42.50\n")

	result := ParseCommission(context.Background(), slog.Default(), data, "commission.csv", nil)

	require.Len(t, result.Records, 1)
	rec := result.Records[0]
	assert.Equal(t, "Doe, Jane", rec.EmployeeName)
	assert.InDelta(t, 42.50, rec.CommissionAmount, 1e-9)
	assert.Equal(t, domain.SourceCommission, rec.Source)
	assert.Equal(t, "commission", rec.PayComponent)
	assert.Equal(t, "2024-01-01", rec.Date)
	assert.Equal(t, "commission.csv", rec.OriginalSourceFile)
	assert.Equal(t, "0", rec.OriginalRowID)
}

func TestParseCommissionRoundTripPreservesAmounts(t *testing.T) {
	// A table already in canonical-style headers must come back with
	// identical amounts.
	data := []byte("Date,Item Name,Sold By,Commission Amount\n" +
		"2024-01-01,Gel Fill,\"Doe, Jane\",$12.34\n" +
		"2024-01-02,Lash Set,\"Doe, Jane\",$56.78\n")

	result := ParseCommission(context.Background(), slog.Default(), data, "commission.csv", nil)

	require.Len(t, result.Records, 2)
	assert.InDelta(t, 12.34, result.Records[0].CommissionAmount, 1e-9)
	assert.InDelta(t, 56.78, result.Records[1].CommissionAmount, 1e-9)
}

func TestParseCommissionNumericHeadersUnassigned(t *testing.T) {
	// Scenario: labels lost on export, no name-like column anywhere. The
	// title row pushes the numeric header to the default index 1.
	data := []byte("Commission Detail,,\n0,1,2\n2024-01-01,Gel Fill Service,$12.00\n2024-01-02,Lash Refill,$20.00\n")

	result := ParseCommission(context.Background(), slog.Default(), data, "commission.csv", nil)

	require.Len(t, result.Records, 2)
	for _, rec := range result.Records {
		assert.Equal(t, domain.UnassignedEmployee, rec.EmployeeName)
	}
}

func TestParseCommissionCatalogNameCellBecomesUnassigned(t *testing.T) {
	data := []byte("Date,Item Name,Sold By,Commission Amount\n" +
		"2024-01-01,Gel Fill,Deluxe Package,$12.00\n")

	result := ParseCommission(context.Background(), slog.Default(), data, "commission.csv", nil)

	require.Len(t, result.Records, 1)
	assert.Equal(t, domain.UnassignedEmployee, result.Records[0].EmployeeName)
}

func TestParseCommissionPercentColumn(t *testing.T) {
	data := []byte("Date,Item Name,Sold By,Commission %,Commission Amount\n" +
		"2024-01-01,Gel Fill,\"Doe, Jane\",25%,$12.00\n" +
		"2024-01-02,Lash Set,\"Doe, Jane\",0.30,$15.00\n")

	result := ParseCommission(context.Background(), slog.Default(), data, "commission.csv", nil)

	require.Len(t, result.Records, 2)
	assert.InDelta(t, 0.25, result.Records[0].CommissionPct, 1e-9)
	assert.InDelta(t, 0.30, result.Records[1].CommissionPct, 1e-9)
}

func TestParseCommissionNoAmountColumnSkipsTable(t *testing.T) {
	data := []byte("Date,Item Name,Sold By\n2024-01-01,Gel Fill,\"Doe, Jane\"\n")

	result := ParseCommission(context.Background(), slog.Default(), data, "commission.csv", nil)

	assert.Empty(t, result.Records)
	require.Len(t, result.Outcomes, 1)
	assert.Equal(t, SectionSkipped, result.Outcomes[0].Status)
}

func TestParseCommissionDualHeaderSections(t *testing.T) {
	data := []byte("Commission Detail,,,\n" +
		"\"Doe, Jane\",,,\n" +
		"Date,Item Name,Qty,Commission Amount\n" +
		"2024-01-02,Gel Fill,1,$12.00\n" +
		"\"Roe, John\",,,\n" +
		"Date,Item Name,Qty,Commission Amount\n" +
		"2024-01-04,Brow Tint,1,$8.00\n")

	result := ParseCommission(context.Background(), slog.Default(), data, "commission.csv", nil)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "Doe, Jane", result.Records[0].EmployeeName)
	assert.Equal(t, "Roe, John", result.Records[1].EmployeeName)
}
