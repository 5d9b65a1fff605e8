package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/employee"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
)

const employeeColumns = `id, employee_code, first_name, last_name,
	COALESCE(department, ''), COALESCE(position, ''), COALESCE(employment_status, ''),
	base_salary, is_active, created_at, updated_at`

type EmployeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &EmployeeRepositoryImpl{db: db}
}

func (r *EmployeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("get employee: %w", err)
	}
	return emp, nil
}

func (r *EmployeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = TRUE
		ORDER BY last_name, first_name`
	return r.queryEmployees(ctx, query)
}

func (r *EmployeeRepositoryImpl) ListActiveByStatus(ctx context.Context, status string) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE is_active = TRUE AND employment_status = $1
		ORDER BY last_name, first_name`
	return r.queryEmployees(ctx, query, status)
}

// GetAttendanceSummaries aggregates the period's attendance per employee.
// Holiday hours come back as separate per-date rows so holiday pay can be
// computed without double-counting regular hours.
func (r *EmployeeRepositoryImpl) GetAttendanceSummaries(ctx context.Context, from, to time.Time, employeeIDs []string) ([]employee.AttendanceSummary, error) {
	aggregate := `
		SELECT employee_id,
		       COUNT(*) FILTER (WHERE hours_worked > 0),
		       COALESCE(SUM(hours_worked), 0),
		       COALESCE(SUM(overtime_hours), 0),
		       COALESCE(SUM(late_hours), 0),
		       COALESCE(SUM(undertime_hours), 0)
		FROM attendance_records
		WHERE employee_id = ANY($1) AND date >= $2 AND date <= $3
		GROUP BY employee_id
		ORDER BY employee_id`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, aggregate, employeeIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("aggregate attendance: %w", err)
	}
	defer rows.Close()

	var summaries []employee.AttendanceSummary
	index := make(map[string]int)
	for rows.Next() {
		var s employee.AttendanceSummary
		if err := rows.Scan(&s.EmployeeID, &s.DaysPresent, &s.HoursWorked,
			&s.OvertimeHours, &s.LateHours, &s.UndertimeHours); err != nil {
			return nil, fmt.Errorf("scan attendance summary: %w", err)
		}
		index[s.EmployeeID] = len(summaries)
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if len(summaries) == 0 {
		return nil, nil
	}

	holidayHours := `
		SELECT a.employee_id, a.date, a.hours_worked
		FROM attendance_records a
		JOIN holidays h
		  ON (h.is_recurring
		      AND EXTRACT(MONTH FROM h.date) = EXTRACT(MONTH FROM a.date)
		      AND EXTRACT(DAY FROM h.date) = EXTRACT(DAY FROM a.date))
		  OR (NOT h.is_recurring AND h.date = a.date)
		WHERE a.employee_id = ANY($1) AND a.date >= $2 AND a.date <= $3 AND a.hours_worked > 0
		ORDER BY a.employee_id, a.date`

	hRows, err := q.Query(ctx, holidayHours, employeeIDs, from, to)
	if err != nil {
		return nil, fmt.Errorf("load holiday attendance: %w", err)
	}
	defer hRows.Close()

	for hRows.Next() {
		var employeeID string
		var hw employee.HolidayWork
		if err := hRows.Scan(&employeeID, &hw.Date, &hw.Hours); err != nil {
			return nil, fmt.Errorf("scan holiday attendance: %w", err)
		}
		if i, ok := index[employeeID]; ok {
			summaries[i].HolidayWork = append(summaries[i].HolidayWork, hw)
		}
	}
	return summaries, hRows.Err()
}

func (r *EmployeeRepositoryImpl) queryEmployees(ctx context.Context, query string, args ...interface{}) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, emp)
	}
	return out, rows.Err()
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(&e.ID, &e.EmployeeCode, &e.FirstName, &e.LastName,
		&e.Department, &e.Position, &e.Status, &e.BaseSalary, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt)
	return e, err
}
