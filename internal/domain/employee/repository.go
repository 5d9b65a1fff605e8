package employee

import (
	"context"
	"time"
)

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	ListActive(ctx context.Context) ([]Employee, error)
	ListActiveByStatus(ctx context.Context, status string) ([]Employee, error)

	// GetAttendanceSummaries aggregates attendance rows for the period.
	// Employees with no attendance in the period are absent from the result.
	GetAttendanceSummaries(ctx context.Context, from, to time.Time, employeeIDs []string) ([]AttendanceSummary, error)
}
