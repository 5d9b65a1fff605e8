package ledger

import (
	"testing"
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSavedLedger_ReadsLinesAndPeriod(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"title": "June 2025 Payroll",
		"payPeriodStart": "2025-06-01",
		"payPeriodEnd": "2025-06-30",
		"employees": [
			{
				"employeeId": "emp-1",
				"employeeName": "Santos, Maria",
				"firstName": "Maria",
				"lastName": "Santos",
				"totalEarnings": "20000",
				"grossPay": "20000",
				"totalDeductions": "3376.55",
				"netPay": "16623.45"
			}
		]
	}`)

	lines, period, err := ParseSavedLedger(blob)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), period.End)
	require.Len(t, lines, 1)

	// Amounts come back exactly as stored, nothing is recomputed.
	assert.True(t, lines[0].TotalDeductions.Equal(decimal.RequireFromString("3376.55")))
	assert.True(t, lines[0].NetPay.Equal(decimal.RequireFromString("16623.45")))
}

func TestParseSavedLedger_AcceptsRFC3339Dates(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"payPeriodStart": "2025-06-01T00:00:00Z",
		"payPeriodEnd": "2025-06-30T00:00:00Z",
		"employees": []
	}`)

	_, period, err := ParseSavedLedger(blob)
	require.NoError(t, err)

	assert.Equal(t, 2025, period.Start.Year())
	assert.Equal(t, time.June, period.End.Month())
}

func TestParseSavedLedger_MissingPeriodErrors(t *testing.T) {
	t.Parallel()

	blob := []byte(`{"title": "No dates", "employees": []}`)

	_, _, err := ParseSavedLedger(blob)

	assert.ErrorIs(t, err, ledger.ErrMissingPeriod)
}

func TestParseSavedLedger_UnparsableDateErrors(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"payPeriodStart": "June 1, 2025",
		"payPeriodEnd": "2025-06-30",
		"employees": []
	}`)

	_, _, err := ParseSavedLedger(blob)

	assert.ErrorIs(t, err, ledger.ErrInvalidPeriod)
}

func TestParseSavedLedger_MalformedJSONErrors(t *testing.T) {
	t.Parallel()

	_, _, err := ParseSavedLedger([]byte(`{"title": `))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ledger.ErrMissingPeriod)
}

func TestParseSavedLedger_SplitsCommaNames(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"payPeriodStart": "2025-06-01",
		"payPeriodEnd": "2025-06-30",
		"employees": [
			{"employeeId": "emp-1", "employeeName": "Dela Cruz, Juan"}
		]
	}`)

	lines, _, err := ParseSavedLedger(blob)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "Dela Cruz", lines[0].LastName)
	assert.Equal(t, "Juan", lines[0].FirstName)
}

func TestParseSavedLedger_PlainNameTakesFinalTokenAsLastName(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"payPeriodStart": "2025-06-01",
		"payPeriodEnd": "2025-06-30",
		"employees": [
			{"employeeId": "emp-1", "employeeName": "Maria Clara Santos"}
		]
	}`)

	lines, _, err := ParseSavedLedger(blob)
	require.NoError(t, err)
	require.Len(t, lines, 1)

	assert.Equal(t, "Santos", lines[0].LastName)
	assert.Equal(t, "Maria Clara", lines[0].FirstName)
}

func TestParseSavedLedger_KeepsExistingSplitNames(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"payPeriodStart": "2025-06-01",
		"payPeriodEnd": "2025-06-30",
		"employees": [
			{"employeeId": "emp-1", "employeeName": "whatever", "firstName": "Juan", "lastName": "Dela Cruz"}
		]
	}`)

	lines, _, err := ParseSavedLedger(blob)
	require.NoError(t, err)

	assert.Equal(t, "Juan", lines[0].FirstName)
	assert.Equal(t, "Dela Cruz", lines[0].LastName)
	assert.Equal(t, "whatever", lines[0].EmployeeName)
}

func TestParseSavedLedger_RebuildsDisplayNameFromSplit(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"payPeriodStart": "2025-06-01",
		"payPeriodEnd": "2025-06-30",
		"employees": [
			{"employeeId": "emp-1", "firstName": "Juan", "lastName": "Dela Cruz"},
			{"employeeId": "emp-2", "lastName": "Reyes"}
		]
	}`)

	lines, _, err := ParseSavedLedger(blob)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Dela Cruz, Juan", lines[0].EmployeeName)
	assert.Equal(t, "Reyes", lines[1].EmployeeName)
}

func TestParseSavedLedger_RoundTripRendersIdentically(t *testing.T) {
	t.Parallel()

	blob := []byte(`{
		"payPeriodStart": "2025-06-01",
		"payPeriodEnd": "2025-06-30",
		"employees": [
			{"employeeId": "e1", "employeeName": "Santos, Maria", "firstName": "Maria", "lastName": "Santos", "grossPay": "20000", "netPay": "20000"},
			{"employeeId": "e2", "employeeName": "Abad, Pedro", "firstName": "Pedro", "lastName": "Abad", "grossPay": "15000.75", "netPay": "15000.75"}
		]
	}`)

	parsed, period, err := ParseSavedLedger(blob)
	require.NoError(t, err)

	report, err := Render(parsed, period, ledger.TemplateStandard, nil)
	require.NoError(t, err)

	// Abad sorts first regardless of stored order; amounts survive exactly.
	require.Len(t, report.Tables[0].Rows, 2)
	assert.Equal(t, "Abad, Pedro", report.Tables[0].Rows[0][1])
	assert.Equal(t, "Santos, Maria", report.Tables[0].Rows[1][1])
	assert.Equal(t, "₱15,000.75", report.Tables[1].Rows[0][12])
	assert.Equal(t, "₱20,000.00", report.Tables[1].Rows[1][12])
}
