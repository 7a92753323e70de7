package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paymerge/internal/tabular"
)

func TestPayrollSectionsMarkerLayout(t *testing.T) {
	grid := tabular.RawTable{
		{"Payroll Detail Report", "", "", ""},
		{"Appointment Date", "Client", "Base Pay", "Earnings"},
		{"2024-01-02", "Smith, Ann", "$30.00", "$45.00"},
		{"2024-01-03", "Jones, Pat", "$30.00", "$50.00"},
		{"Total for Jane Doe", "", "", "$95.00"},
		{"Appointment Date", "Client", "Base Pay", "Earnings"},
		{"2024-01-04", "Brown, Lee", "$25.00", "$40.00"},
		{"Total for John Roe", "", "", "$40.00"},
	}

	sections := payrollSections(tabular.NamedTable{Table: grid})

	require.Len(t, sections, 2)
	assert.Equal(t, "Jane Doe", sections[0].NameHint)
	assert.Len(t, sections[0].Rows, 2)
	assert.Equal(t, "John Roe", sections[1].NameHint)
	assert.Len(t, sections[1].Rows, 1)
	assert.Equal(t, []string{"Appointment Date", "Client", "Base Pay", "Earnings"}, sections[0].Header)
}

func TestPayrollSectionsNoMarkersYieldsOneSection(t *testing.T) {
	grid := tabular.RawTable{
		{"Appointment Date", "Base Pay", "Earnings"},
		{"2024-01-02", "$30.00", "$45.00"},
		{"2024-01-03", "$30.00", "$50.00"},
	}

	sections := payrollSections(tabular.NamedTable{Table: grid})

	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].NameHint)
	assert.Len(t, sections[0].Rows, 2)
}

func TestPayrollSectionsHeaderAtOffset(t *testing.T) {
	grid := tabular.RawTable{
		{"Exported 2024-02-01", "", ""},
		{"", "", ""},
		{"Appointment Date", "Base Pay", "Earnings"},
		{"2024-01-02", "$30.00", "$45.00"},
	}

	sections := payrollSections(tabular.NamedTable{Table: grid})

	require.Len(t, sections, 1)
	assert.Equal(t, 2, sections[0].HeaderRow)
	assert.Len(t, sections[0].Rows, 1)
}

func TestPayrollSectionsEmptyBodyDropped(t *testing.T) {
	grid := tabular.RawTable{
		{"Appointment Date", "Base Pay", "Earnings"},
		{"", "", ""},
		{"Total for Jane Doe", "", ""},
	}

	assert.Empty(t, payrollSections(tabular.NamedTable{Table: grid}))
}

func TestPayrollSectionsMarkerDirectlyAfterHeaderDropped(t *testing.T) {
	grid := tabular.RawTable{
		{"Appointment Date", "Base Pay", "Earnings"},
		{"Total for Jane Doe", "", ""},
		{"Appointment Date", "Base Pay", "Earnings"},
		{"2024-01-04", "$25.00", "$40.00"},
		{"Total for John Roe", "", ""},
	}

	sections := payrollSections(tabular.NamedTable{Table: grid})

	require.Len(t, sections, 1)
	assert.Equal(t, "John Roe", sections[0].NameHint)
}

func TestPayrollSectionsNamedTable(t *testing.T) {
	grid := tabular.RawTable{
		{"Appointment Date", "Base Pay", "Earnings"},
		{"2024-01-02", "$30.00", "$45.00"},
		{"Total for Jane Doe", "", "$45.00"},
	}

	sections := payrollSections(tabular.NamedTable{Name: "Jane Doe", Table: grid})

	require.Len(t, sections, 1)
	assert.Equal(t, "Jane Doe", sections[0].NameHint)
	// the summary marker row never becomes a data row
	assert.Len(t, sections[0].Rows, 1)
}

func TestPayrollSectionsBlankHeaderColumnsDropped(t *testing.T) {
	grid := tabular.RawTable{
		{"Appointment Date", "", "Earnings"},
		{"2024-01-02", "ghost", "$45.00"},
	}

	sections := payrollSections(tabular.NamedTable{Table: grid})

	require.Len(t, sections, 1)
	assert.Equal(t, []string{"Appointment Date", "Earnings"}, sections[0].Header)
	assert.Equal(t, []string{"2024-01-02", "$45.00"}, sections[0].Rows[0])
}

func TestCommissionSectionsDualHeader(t *testing.T) {
	grid := tabular.RawTable{
		{"Commission Detail", "", "", ""},
		{"Doe, Jane", "", "", ""},
		{"Date", "Item Name", "Qty", "Commission Amount"},
		{"2024-01-02", "Gel Fill", "1", "$12.00"},
		{"2024-01-03", "Lash Set", "1", "$20.00"},
		{"Roe, John", "", "", ""},
		{"Date", "Item Name", "Qty", "Commission Amount"},
		{"2024-01-04", "Brow Tint", "1", "$8.00"},
	}

	sections := commissionSections(tabular.NamedTable{Table: grid})

	require.Len(t, sections, 2)
	assert.Equal(t, "Doe, Jane", sections[0].NameHint)
	assert.Len(t, sections[0].Rows, 2)
	assert.Equal(t, "Roe, John", sections[1].NameHint)
	assert.Len(t, sections[1].Rows, 1)
}

func TestCommissionSectionsNoHeaderDefaultsToRowOne(t *testing.T) {
	grid := tabular.RawTable{
		{"Commission Detail Export", "", ""},
		{"When", "What", "How Much"},
		{"2024-01-02", "Gel Fill", "$12.00"},
	}

	sections := commissionSections(tabular.NamedTable{Table: grid})

	require.Len(t, sections, 1)
	assert.Equal(t, 1, sections[0].HeaderRow)
	assert.Equal(t, []string{"When", "What", "How Much"}, sections[0].Header)
}

func TestCommissionSectionsSingleRowTable(t *testing.T) {
	grid := tabular.RawTable{
		{"only", "one", "row"},
	}

	assert.Empty(t, commissionSections(tabular.NamedTable{Table: grid}))
}

func TestCommissionSectionsAllEmptyBodyDropped(t *testing.T) {
	grid := tabular.RawTable{
		{"Date", "Item Name", "Commission Amount"},
		{"", "", ""},
		{"", "", ""},
	}

	assert.Empty(t, commissionSections(tabular.NamedTable{Table: grid}))
}
