package payroll

import (
	"testing"
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/employee"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/holiday"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// defaultCalculator wires the fixture configuration and bracket tables with
// no rules and no holidays, so each test adds only what it exercises.
func defaultCalculator() Calculator {
	defaults := fixtures.NewProvider()
	return Calculator{
		Bundle:      defaults.Bundle(),
		TaxBrackets: defaults.TaxBrackets(),
		Contribution: map[bracket.ContributionType][]bracket.ContributionBracketRecord{
			bracket.ContributionGSIS:       defaults.ContributionBrackets(bracket.ContributionGSIS),
			bracket.ContributionPhilHealth: defaults.ContributionBrackets(bracket.ContributionPhilHealth),
			bracket.ContributionPagIBIG:    defaults.ContributionBrackets(bracket.ContributionPagIBIG),
		},
	}
}

// testEmployeeWithSalary uses 35200 so the derived rates are round numbers:
// 1600/day and 200/hour under the 22-day, 8-hour defaults.
func testEmployeeWithSalary() employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		FirstName:  "Juan",
		LastName:   "Dela Cruz",
		Department: "Registrar",
		Position:   "Clerk",
		Status:     "regular",
		BaseSalary: decPtr("35200"),
		IsActive:   true,
	}
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got),
		"want %s, got %s: %v", want, got, msgAndArgs)
}

func TestCalculatorCompute_FullMonthWithDefaults(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	att := employee.AttendanceSummary{EmployeeID: "emp-1", DaysPresent: 22, HoursWorked: decimal.NewFromInt(176)}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	assertDecimalEqual(t, "35200", data.Earnings.RegularPay)
	// GSIS 35200*0.09, PhilHealth 35200*0.025, Pag-IBIG capped at 200.
	assertDecimalEqual(t, "3168", data.Deductions.GSISContribution)
	assertDecimalEqual(t, "880", data.Deductions.PhilHealthContribution)
	assertDecimalEqual(t, "200", data.Deductions.PagIBIGContribution)
	// Taxable 35200 - 3168 - 880 - 200 = 30952, second band:
	// (30952 - 20833) * 0.20 = 2023.80.
	assertDecimalEqual(t, "2023.8", data.Deductions.WithholdingTax)
	assertDecimalEqual(t, "28928.2", data.NetPay)

	assert.Equal(t, "Dela Cruz, Juan", data.EmployeeName)
	assert.Equal(t, 22, data.Attendance.DaysPresent)
}

func TestCalculatorCompute_TotalsHoldTogether(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Rules = []rule.PayrollRule{
		{Name: "Rice Allowance", Type: rule.RuleTypeAdditional, Category: rule.CategoryAllowance, Amount: decimal.NewFromInt(2000), ApplyToAll: true, IsActive: true},
		{Name: "Salary Loan", Type: rule.RuleTypeDeduction, Category: rule.CategoryLoan, Amount: decimal.NewFromInt(1500), ApplyToAll: true, IsActive: true},
	}
	att := employee.AttendanceSummary{
		DaysPresent:    20,
		OvertimeHours:  decimal.NewFromInt(3),
		LateHours:      decimal.RequireFromString("1.5"),
		UndertimeHours: decimal.NewFromInt(1),
	}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	assert.True(t, data.TotalEarnings.Equal(data.Earnings.Total()))
	assert.True(t, data.TotalDeductions.Equal(data.Deductions.Total()))
	assert.True(t, data.NetPay.Equal(data.GrossPay.Sub(data.TotalDeductions)))
	assert.True(t, data.GrossPay.Equal(data.TotalEarnings))
}

func TestCalculatorCompute_OvertimeSplitsAtTwoHours(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	att := employee.AttendanceSummary{DaysPresent: 22, OvertimeHours: decimal.NewFromInt(5)}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	// First two hours at 1.25, the remaining three at 1.5, hourly rate 200:
	// 2*200*1.25 + 3*200*1.5 = 500 + 900.
	assertDecimalEqual(t, "1400", data.Earnings.OvertimePay)
}

func TestCalculatorCompute_HolidayPayByType(t *testing.T) {
	t.Parallel()

	regular := time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC)
	special := time.Date(2025, time.August, 21, 0, 0, 0, 0, time.UTC)
	ordinary := time.Date(2025, time.June, 13, 0, 0, 0, 0, time.UTC)

	calc := defaultCalculator()
	calc.Holidays = []holiday.Holiday{
		{Name: "Independence Day", Date: regular, Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "Ninoy Aquino Day", Date: special, Type: holiday.HolidaySpecial},
	}
	att := employee.AttendanceSummary{
		DaysPresent: 20,
		HolidayWork: []employee.HolidayWork{
			{Date: regular, Hours: decimal.NewFromInt(8)},
			{Date: special, Hours: decimal.NewFromInt(4)},
			{Date: ordinary, Hours: decimal.NewFromInt(8)}, // matches no holiday
		},
	}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	// 8h * 200/h * 200% + 4h * 200/h * 130% = 3200 + 1040.
	assertDecimalEqual(t, "4240", data.Earnings.HolidayPay)
}

func TestCalculatorCompute_AttendanceDeductionBases(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	// Late at 2 pesos per minute; undertime left at zero per-hour, which
	// falls back to losing the hourly rate.
	calc.Bundle.Rates.LateDeductionAmount = decimal.NewFromInt(2)
	att := employee.AttendanceSummary{
		DaysPresent:    22,
		LateHours:      decimal.RequireFromString("1.5"),
		UndertimeHours: decimal.NewFromInt(2),
	}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	// 1.5h * 60 * 2 + 2h * 200 = 180 + 400.
	assertDecimalEqual(t, "580", data.Deductions.LateDeductions)
}

func TestCalculatorCompute_IneligibleRoleSuppressesComponents(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	roles := []role.PayrollRole{{Name: "Job Order", IsActive: true}} // no flags set
	att := employee.AttendanceSummary{DaysPresent: 22, OvertimeHours: decimal.NewFromInt(4)}

	data, err := calc.Compute(testEmployeeWithSalary(), roles, att)
	require.NoError(t, err)

	assert.True(t, data.Earnings.OvertimePay.IsZero())
	assert.True(t, data.Deductions.GSISContribution.IsZero())
	assert.True(t, data.Deductions.PhilHealthContribution.IsZero())
	assert.True(t, data.Deductions.PagIBIGContribution.IsZero())
	assert.True(t, data.Deductions.WithholdingTax.IsZero())
	assertDecimalEqual(t, "35200", data.NetPay)
}

func TestCalculatorCompute_DisabledContributionStaysZero(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Bundle.Contributions.GSIS.Enabled = false
	att := employee.AttendanceSummary{DaysPresent: 22}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	assert.True(t, data.Deductions.GSISContribution.IsZero())
	assert.False(t, data.Deductions.PhilHealthContribution.IsZero())
}

func TestCalculatorCompute_DisabledWithholdingStaysZero(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Bundle.Tax.WithholdingEnabled = false
	att := employee.AttendanceSummary{DaysPresent: 22}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	assert.True(t, data.Deductions.WithholdingTax.IsZero())
}

func TestCalculatorCompute_BaseSalaryFallsBackToHighestActiveRole(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	emp := testEmployeeWithSalary()
	emp.BaseSalary = nil
	roles := []role.PayrollRole{
		{Name: "Instructor", IsActive: true, BaseSalary: decPtr("28000"), OvertimeEligible: true, GSISEligible: true, PhilHealthEligible: true, PagIBIGEligible: true, WithholdingTaxEligible: true},
		{Name: "Dean", IsActive: false, BaseSalary: decPtr("50000")},
		{Name: "Adviser", IsActive: true, BaseSalary: decPtr("30000")},
	}
	att := employee.AttendanceSummary{DaysPresent: 22}

	data, err := calc.Compute(emp, roles, att)
	require.NoError(t, err)

	// 30000 / 22 days * 22 days present: the inactive 50000 never counts.
	assertDecimalEqual(t, "30000", data.Earnings.RegularPay)
}

func TestCalculatorCompute_NoBaseSalaryAnywhereFails(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	emp := testEmployeeWithSalary()
	emp.BaseSalary = nil

	_, err := calc.Compute(emp, nil, employee.AttendanceSummary{DaysPresent: 22})

	assert.ErrorIs(t, err, payroll.ErrMissingBaseSalary)
}

func TestCalculatorCompute_PercentageRuleUsesBaseSalary(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Rules = []rule.PayrollRule{
		{Name: "COLA", Type: rule.RuleTypeAdditional, Category: rule.CategoryAllowance, Amount: decimal.NewFromInt(10), IsPercentage: true, ApplyToAll: true, IsActive: true},
	}
	att := employee.AttendanceSummary{DaysPresent: 22}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	assertDecimalEqual(t, "3520", data.Earnings.Allowances) // 10% of 35200
}

func TestCalculatorCompute_ThirteenthMonthAccruesTwelfthWhenUnpriced(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Rules = []rule.PayrollRule{
		{Name: "13th Month", Type: rule.RuleTypeAdditional, Category: rule.CategoryThirteenthMonth, ApplyToAll: true, IsActive: true},
	}
	att := employee.AttendanceSummary{DaysPresent: 22}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	assertDecimalEqual(t, "2933.33", data.Earnings.ThirteenthMonthPay) // 35200 / 12
}

func TestCalculatorCompute_InactiveRuleIsIgnored(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Rules = []rule.PayrollRule{
		{Name: "Old Loan", Type: rule.RuleTypeDeduction, Category: rule.CategoryLoan, Amount: decimal.NewFromInt(900), ApplyToAll: true, IsActive: false},
	}
	att := employee.AttendanceSummary{DaysPresent: 22}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	assert.True(t, data.Deductions.LoanDeductions.IsZero())
}

func TestCalculatorCompute_AgencyFlagsGateUnderSeedRules(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Rules = fixtures.NewProvider().Rules()
	emp := testEmployeeWithSalary()
	emp.BaseSalary = decPtr("30000")
	// The seed mandatory-contribution rules share one category across all
	// three agencies; only the agency this role actually grants may deduct.
	roles := []role.PayrollRole{{Name: "Part Time", IsActive: true, PhilHealthEligible: true}}
	att := employee.AttendanceSummary{DaysPresent: 22}

	data, err := calc.Compute(emp, roles, att)
	require.NoError(t, err)

	assertDecimalEqual(t, "750", data.Deductions.PhilHealthContribution) // 30000 * 0.025
	assert.True(t, data.Deductions.GSISContribution.IsZero())
	assert.True(t, data.Deductions.PagIBIGContribution.IsZero())
	assert.True(t, data.Deductions.WithholdingTax.IsZero())
	assertDecimalEqual(t, "29250", data.NetPay)
}

func TestCalculatorCompute_AssignedOnlyRuleReachesItsAssignee(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Rules = []rule.PayrollRule{
		{Name: "Overtime Pay", Type: rule.RuleTypeAdditional, Category: rule.CategoryOvertime, ApplyToAll: false, AssignedUserIDs: []string{"emp-1"}, IsActive: true},
	}
	roles := []role.PayrollRole{{Name: "Instructor", IsActive: true, OvertimeEligible: true}}
	att := employee.AttendanceSummary{DaysPresent: 22, OvertimeHours: decimal.NewFromInt(3)}

	data, err := calc.Compute(testEmployeeWithSalary(), roles, att)
	require.NoError(t, err)

	// 2*200*1.25 + 1*200*1.5 = 500 + 300.
	assertDecimalEqual(t, "800", data.Earnings.OvertimePay)

	other := testEmployeeWithSalary()
	other.ID = "emp-2"
	data, err = calc.Compute(other, roles, att)
	require.NoError(t, err)

	assert.True(t, data.Earnings.OvertimePay.IsZero(), "rule is assigned to emp-1 only")
}

func TestCalculatorCompute_DeductionRuleCategories(t *testing.T) {
	t.Parallel()

	calc := defaultCalculator()
	calc.Rules = []rule.PayrollRule{
		{Name: "Salary Loan", Type: rule.RuleTypeDeduction, Category: rule.CategoryLoan, Amount: decimal.NewFromInt(1500), ApplyToAll: true, IsActive: true},
		{Name: "City Savings", Type: rule.RuleTypeDeduction, Category: rule.CategoryCitySavings, Amount: decimal.NewFromInt(750), ApplyToAll: true, IsActive: true},
		{Name: "Union Dues", Type: rule.RuleTypeDeduction, Category: "union_dues", Amount: decimal.NewFromInt(100), ApplyToAll: true, IsActive: true},
	}
	att := employee.AttendanceSummary{DaysPresent: 22}

	data, err := calc.Compute(testEmployeeWithSalary(), nil, att)
	require.NoError(t, err)

	assertDecimalEqual(t, "1500", data.Deductions.LoanDeductions)
	assertDecimalEqual(t, "750", data.Deductions.CitySavingsLoan)
	assertDecimalEqual(t, "100", data.Deductions.OtherDeductions)
}
