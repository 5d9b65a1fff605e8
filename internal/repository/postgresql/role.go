package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
)

const roleColumns = `id, name, description, base_salary, is_active,
	overtime_eligible, night_differential_eligible, holiday_pay_eligible,
	gsis_eligible, philhealth_eligible, pagibig_eligible,
	withholding_tax_eligible, thirteenth_month_eligible, leave_eligible,
	created_at, updated_at`

type RoleRepositoryImpl struct {
	db *database.DB
}

func NewRoleRepository(db *database.DB) role.RoleRepository {
	return &RoleRepositoryImpl{db: db}
}

func (r *RoleRepositoryImpl) Create(ctx context.Context, pr role.PayrollRole) (role.PayrollRole, error) {
	query := `
		INSERT INTO payroll_roles (` + roleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		RETURNING ` + roleColumns

	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx, query,
		uuid.New().String(), pr.Name, pr.Description, pr.BaseSalary, pr.IsActive,
		pr.OvertimeEligible, pr.NightDifferentialEligible, pr.HolidayPayEligible,
		pr.GSISEligible, pr.PhilHealthEligible, pr.PagIBIGEligible,
		pr.WithholdingTaxEligible, pr.ThirteenthMonthEligible, pr.LeaveEligible)

	created, err := scanRole(row)
	if err != nil {
		if isUniqueViolation(err) {
			return role.PayrollRole{}, role.ErrRoleNameExists
		}
		return role.PayrollRole{}, fmt.Errorf("create payroll role: %w", err)
	}
	return created, nil
}

func (r *RoleRepositoryImpl) GetByID(ctx context.Context, id string) (role.PayrollRole, error) {
	query := `SELECT ` + roleColumns + ` FROM payroll_roles WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	pr, err := scanRole(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return role.PayrollRole{}, role.ErrRoleNotFound
	}
	if err != nil {
		return role.PayrollRole{}, fmt.Errorf("get payroll role: %w", err)
	}
	return pr, nil
}

func (r *RoleRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]role.PayrollRole, error) {
	query := `SELECT ` + roleColumns + ` FROM payroll_roles`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payroll roles: %w", err)
	}
	defer rows.Close()

	var out []role.PayrollRole
	for rows.Next() {
		pr, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

func (r *RoleRepositoryImpl) Update(ctx context.Context, req role.UpdateRoleRequest) error {
	sets := make([]string, 0, 14)
	args := make([]interface{}, 0, 15)

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Description != nil {
		add("description", *req.Description)
	}
	if req.BaseSalary != nil {
		add("base_salary", *req.BaseSalary)
	}
	if req.IsActive != nil {
		add("is_active", *req.IsActive)
	}
	if req.OvertimeEligible != nil {
		add("overtime_eligible", *req.OvertimeEligible)
	}
	if req.NightDifferentialEligible != nil {
		add("night_differential_eligible", *req.NightDifferentialEligible)
	}
	if req.HolidayPayEligible != nil {
		add("holiday_pay_eligible", *req.HolidayPayEligible)
	}
	if req.GSISEligible != nil {
		add("gsis_eligible", *req.GSISEligible)
	}
	if req.PhilHealthEligible != nil {
		add("philhealth_eligible", *req.PhilHealthEligible)
	}
	if req.PagIBIGEligible != nil {
		add("pagibig_eligible", *req.PagIBIGEligible)
	}
	if req.WithholdingTaxEligible != nil {
		add("withholding_tax_eligible", *req.WithholdingTaxEligible)
	}
	if req.ThirteenthMonthEligible != nil {
		add("thirteenth_month_eligible", *req.ThirteenthMonthEligible)
	}
	if req.LeaveEligible != nil {
		add("leave_eligible", *req.LeaveEligible)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE payroll_roles SET %s, updated_at = NOW() WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return role.ErrRoleNameExists
		}
		return fmt.Errorf("update payroll role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	var assigned int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM user_payroll_roles WHERE role_id = $1`, id).Scan(&assigned); err != nil {
		return fmt.Errorf("count role assignments: %w", err)
	}
	if assigned > 0 {
		return role.ErrRoleAssigned
	}

	tag, err := q.Exec(ctx, `DELETE FROM payroll_roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payroll role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepositoryImpl) AssignToUser(ctx context.Context, userID, roleID string) (role.UserPayrollRole, error) {
	query := `
		INSERT INTO user_payroll_roles (id, user_id, role_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, role_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, role_id, created_at`

	q := GetQuerier(ctx, r.db)
	var upr role.UserPayrollRole
	err := q.QueryRow(ctx, query, uuid.New().String(), userID, roleID).
		Scan(&upr.ID, &upr.UserID, &upr.RoleID, &upr.CreatedAt)
	if err != nil {
		return role.UserPayrollRole{}, fmt.Errorf("assign payroll role: %w", err)
	}
	return upr, nil
}

func (r *RoleRepositoryImpl) UnassignFromUser(ctx context.Context, userID, roleID string) error {
	query := `DELETE FROM user_payroll_roles WHERE user_id = $1 AND role_id = $2`

	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, query, userID, roleID)
	if err != nil {
		return fmt.Errorf("unassign payroll role: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return role.ErrRoleNotFound
	}
	return nil
}

func (r *RoleRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]role.PayrollRole, error) {
	byUser, err := r.ListByUsers(ctx, []string{userID})
	if err != nil {
		return nil, err
	}
	return byUser[userID], nil
}

// ListByUsers loads every role assignment for the given users in one query,
// keyed by user. Users with no roles are absent from the map.
func (r *RoleRepositoryImpl) ListByUsers(ctx context.Context, userIDs []string) (map[string][]role.PayrollRole, error) {
	if len(userIDs) == 0 {
		return map[string][]role.PayrollRole{}, nil
	}

	query := `
		SELECT upr.user_id, ` + prefixColumns("pr", roleColumns) + `
		FROM user_payroll_roles upr
		JOIN payroll_roles pr ON pr.id = upr.role_id
		WHERE upr.user_id = ANY($1)
		ORDER BY upr.user_id, pr.name`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, userIDs)
	if err != nil {
		return nil, fmt.Errorf("list payroll roles by users: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]role.PayrollRole)
	for rows.Next() {
		var userID string
		var pr role.PayrollRole
		if err := rows.Scan(&userID,
			&pr.ID, &pr.Name, &pr.Description, &pr.BaseSalary, &pr.IsActive,
			&pr.OvertimeEligible, &pr.NightDifferentialEligible, &pr.HolidayPayEligible,
			&pr.GSISEligible, &pr.PhilHealthEligible, &pr.PagIBIGEligible,
			&pr.WithholdingTaxEligible, &pr.ThirteenthMonthEligible, &pr.LeaveEligible,
			&pr.CreatedAt, &pr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payroll role: %w", err)
		}
		out[userID] = append(out[userID], pr)
	}
	return out, rows.Err()
}

func scanRole(row pgx.Row) (role.PayrollRole, error) {
	var pr role.PayrollRole
	err := row.Scan(
		&pr.ID, &pr.Name, &pr.Description, &pr.BaseSalary, &pr.IsActive,
		&pr.OvertimeEligible, &pr.NightDifferentialEligible, &pr.HolidayPayEligible,
		&pr.GSISEligible, &pr.PhilHealthEligible, &pr.PagIBIGEligible,
		&pr.WithholdingTaxEligible, &pr.ThirteenthMonthEligible, &pr.LeaveEligible,
		&pr.CreatedAt, &pr.UpdatedAt)
	return pr, err
}

// prefixColumns qualifies a comma-separated column list with a table alias.
func prefixColumns(alias, columns string) string {
	parts := strings.Split(columns, ",")
	for i, p := range parts {
		parts[i] = alias + "." + strings.TrimSpace(p)
	}
	return strings.Join(parts, ", ")
}
