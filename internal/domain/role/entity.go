package role

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRole - a named bundle of per-rule eligibility flags plus an
// optional base salary, attached to zero or more employees.
type PayrollRole struct {
	ID          string
	Name        string
	Description *string
	BaseSalary  *decimal.Decimal
	IsActive    bool

	OvertimeEligible          bool
	NightDifferentialEligible bool
	HolidayPayEligible        bool
	GSISEligible              bool
	PhilHealthEligible        bool
	PagIBIGEligible           bool
	WithholdingTaxEligible    bool
	ThirteenthMonthEligible   bool
	LeaveEligible             bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserPayrollRole - assignment of a role to an employee
type UserPayrollRole struct {
	ID        string
	UserID    string
	RoleID    string
	CreatedAt time.Time
}
