package payroll

import "errors"

var (
	ErrNoAttendance      = errors.New("no attendance records found for the requested period")
	ErrNoEmployees       = errors.New("no active employees matched the request")
	ErrMissingBaseSalary = errors.New("employee has no base salary configured")
	ErrInvalidPeriod     = errors.New("invalid pay period")
)
