package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee - the payroll-relevant view of a user record
type Employee struct {
	ID           string
	EmployeeCode string
	FirstName    string
	LastName     string
	Department   string
	Position     string
	Status       string // employment status, e.g. "regular", "casual", "job_order"
	BaseSalary   *decimal.Decimal
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns "Last, First" as rendered on ledgers.
func (e Employee) FullName() string {
	return e.LastName + ", " + e.FirstName
}

// HolidayWork - hours worked on one holiday date within the period
type HolidayWork struct {
	Date  time.Time
	Hours decimal.Decimal
}

// AttendanceSummary - aggregate attendance for one employee over a pay
// period. Holiday hours are tracked apart from regular hours so holiday pay
// never double-counts regular pay.
type AttendanceSummary struct {
	EmployeeID     string
	DaysPresent    int
	HoursWorked    decimal.Decimal
	OvertimeHours  decimal.Decimal
	LateHours      decimal.Decimal
	UndertimeHours decimal.Decimal
	HolidayWork    []HolidayWork
}
