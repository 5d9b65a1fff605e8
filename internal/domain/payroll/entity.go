package payroll

import (
	"github.com/shopspring/decimal"
)

// EarningsBreakdown - every earnings line for one employee and period
type EarningsBreakdown struct {
	RegularPay            decimal.Decimal `json:"regularPay"`
	OvertimePay           decimal.Decimal `json:"overtimePay"`
	HolidayPay            decimal.Decimal `json:"holidayPay"`
	Allowances            decimal.Decimal `json:"allowances"`
	Bonuses               decimal.Decimal `json:"bonuses"`
	ThirteenthMonthPay    decimal.Decimal `json:"thirteenthMonthPay"`
	ServiceIncentiveLeave decimal.Decimal `json:"serviceIncentiveLeave"`
}

// Total sums every earnings field.
func (e EarningsBreakdown) Total() decimal.Decimal {
	return e.RegularPay.
		Add(e.OvertimePay).
		Add(e.HolidayPay).
		Add(e.Allowances).
		Add(e.Bonuses).
		Add(e.ThirteenthMonthPay).
		Add(e.ServiceIncentiveLeave)
}

// DeductionBreakdown - every deduction line for one employee and period
type DeductionBreakdown struct {
	WithholdingTax         decimal.Decimal `json:"withholdingTax"`
	GSISContribution       decimal.Decimal `json:"gsisContribution"`
	PhilHealthContribution decimal.Decimal `json:"philHealthContribution"`
	PagIBIGContribution    decimal.Decimal `json:"pagibigContribution"`
	LateDeductions         decimal.Decimal `json:"lateDeductions"`
	LoanDeductions         decimal.Decimal `json:"loanDeductions"`
	OtherDeductions        decimal.Decimal `json:"otherDeductions"`
	CitySavingsLoan        decimal.Decimal `json:"citySavingsLoan"`
	SSSContribution        decimal.Decimal `json:"sssContribution"`
}

// Total sums every deduction field.
func (d DeductionBreakdown) Total() decimal.Decimal {
	return d.WithholdingTax.
		Add(d.GSISContribution).
		Add(d.PhilHealthContribution).
		Add(d.PagIBIGContribution).
		Add(d.LateDeductions).
		Add(d.LoanDeductions).
		Add(d.OtherDeductions).
		Add(d.CitySavingsLoan).
		Add(d.SSSContribution)
}

// AttendanceData - the attendance figures a ledger line was computed from
type AttendanceData struct {
	DaysPresent    int             `json:"daysPresent"`
	HoursWorked    decimal.Decimal `json:"hoursWorked"`
	LateHours      decimal.Decimal `json:"lateHours"`
	UndertimeHours decimal.Decimal `json:"undertimeHours"`
}

// PayrollData - one employee's computed result for one pay period. It is
// ephemeral: it only persists serialized inside a saved ledger blob.
//
// Invariants every generated, printed, or round-tripped record holds:
//
//	TotalEarnings  == Earnings.Total()
//	TotalDeductions == Deductions.Total()
//	NetPay         == GrossPay - TotalDeductions
type PayrollData struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"` // "Last, First"
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Department   string `json:"department,omitempty"`
	Position     string `json:"position,omitempty"`
	Status       string `json:"status,omitempty"`

	Earnings   EarningsBreakdown  `json:"earningsBreakdown"`
	Deductions DeductionBreakdown `json:"deductionBreakdown"`
	Attendance AttendanceData     `json:"attendanceData"`

	TotalEarnings   decimal.Decimal `json:"totalEarnings"`
	GrossPay        decimal.Decimal `json:"grossPay"`
	TotalDeductions decimal.Decimal `json:"totalDeductions"`
	NetPay          decimal.Decimal `json:"netPay"`
}
