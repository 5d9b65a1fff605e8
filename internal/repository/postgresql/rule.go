package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
)

const ruleColumns = `id, name, description, type, category, amount, is_percentage,
	apply_to_all, is_active, assigned_user_ids, created_at, updated_at`

type RuleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) rule.RuleRepository {
	return &RuleRepositoryImpl{db: db}
}

func (r *RuleRepositoryImpl) Create(ctx context.Context, pr rule.PayrollRule) (rule.PayrollRule, error) {
	query := `
		INSERT INTO payroll_rules (` + ruleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + ruleColumns

	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx, query,
		uuid.New().String(), pr.Name, pr.Description, pr.Type, pr.Category,
		pr.Amount, pr.IsPercentage, pr.ApplyToAll, pr.IsActive, pr.AssignedUserIDs)

	created, err := scanRule(row)
	if err != nil {
		if isUniqueViolation(err) {
			return rule.PayrollRule{}, rule.ErrRuleNameExists
		}
		return rule.PayrollRule{}, fmt.Errorf("create payroll rule: %w", err)
	}
	return created, nil
}

func (r *RuleRepositoryImpl) GetByID(ctx context.Context, id string) (rule.PayrollRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM payroll_rules WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	pr, err := scanRule(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return rule.PayrollRule{}, rule.ErrRuleNotFound
	}
	if err != nil {
		return rule.PayrollRule{}, fmt.Errorf("get payroll rule: %w", err)
	}
	return pr, nil
}

func (r *RuleRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]rule.PayrollRule, error) {
	query := `SELECT ` + ruleColumns + ` FROM payroll_rules`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY type, category, name`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payroll rules: %w", err)
	}
	defer rows.Close()

	var out []rule.PayrollRule
	for rows.Next() {
		pr, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

func (r *RuleRepositoryImpl) Update(ctx context.Context, req rule.UpdateRuleRequest) error {
	sets := make([]string, 0, 8)
	args := make([]interface{}, 0, 9)

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
	if req.Category != nil {
		add("category", *req.Category)
	}
	if req.Amount != nil {
		add("amount", *req.Amount)
	}
	if req.IsPercentage != nil {
		add("is_percentage", *req.IsPercentage)
	}
	if req.ApplyToAll != nil {
		add("apply_to_all", *req.ApplyToAll)
	}
	if req.IsActive != nil {
		add("is_active", *req.IsActive)
	}
	if req.AssignedUserIDs != nil {
		add("assigned_user_ids", req.AssignedUserIDs)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE payroll_rules SET %s, updated_at = NOW() WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return rule.ErrRuleNameExists
		}
		return fmt.Errorf("update payroll rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rule.ErrRuleNotFound
	}
	return nil
}

func (r *RuleRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM payroll_rules WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete payroll rule: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return rule.ErrRuleNotFound
	}
	return nil
}

func scanRule(row pgx.Row) (rule.PayrollRule, error) {
	var pr rule.PayrollRule
	err := row.Scan(
		&pr.ID, &pr.Name, &pr.Description, &pr.Type, &pr.Category, &pr.Amount,
		&pr.IsPercentage, &pr.ApplyToAll, &pr.IsActive, &pr.AssignedUserIDs,
		&pr.CreatedAt, &pr.UpdatedAt)
	return pr, err
}
