package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
)

type BracketRepositoryImpl struct {
	db *database.DB
}

func NewBracketRepository(db *database.DB) bracket.BracketRepository {
	return &BracketRepositoryImpl{db: db}
}

func (r *BracketRepositoryImpl) ListContribution(ctx context.Context, t bracket.ContributionType) ([]bracket.ContributionBracketRecord, error) {
	query := `
		SELECT id, type, salary_min, salary_max, employee_rate, employer_rate,
		       min_contribution, max_contribution, is_active, priority, created_at, updated_at
		FROM contribution_brackets
		WHERE type = $1
		ORDER BY priority, salary_min`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, t)
	if err != nil {
		return nil, fmt.Errorf("list %s brackets: %w", t, err)
	}
	defer rows.Close()

	var out []bracket.ContributionBracketRecord
	for rows.Next() {
		var b bracket.ContributionBracketRecord
		if err := rows.Scan(&b.ID, &b.Type, &b.SalaryMin, &b.SalaryMax, &b.EmployeeRate, &b.EmployerRate,
			&b.MinContribution, &b.MaxContribution, &b.IsActive, &b.Priority, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan contribution bracket: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ReplaceContribution swaps the whole bracket set for one agency inside a
// single transaction. A failed insert rolls the delete back, so there is
// never a window with no brackets.
func (r *BracketRepositoryImpl) ReplaceContribution(ctx context.Context, t bracket.ContributionType, records []bracket.ContributionBracketRecord) ([]bracket.ContributionBracketRecord, error) {
	insert := `
		INSERT INTO contribution_brackets
			(id, type, salary_min, salary_max, employee_rate, employer_rate,
			 min_contribution, max_contribution, is_active, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())`

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM contribution_brackets WHERE type = $1`, t); err != nil {
			return fmt.Errorf("clear %s brackets: %w", t, err)
		}

		for _, b := range records {
			if _, err := q.Exec(txCtx, insert,
				uuid.New().String(), t, b.SalaryMin, b.SalaryMax, b.EmployeeRate, b.EmployerRate,
				b.MinContribution, b.MaxContribution, b.IsActive, b.Priority); err != nil {
				return fmt.Errorf("insert %s bracket: %w", t, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.ListContribution(ctx, t)
}

func (r *BracketRepositoryImpl) ListTax(ctx context.Context) ([]bracket.TaxBracketRecord, error) {
	query := `
		SELECT id, salary_min, salary_max, rate, fixed_amount, description, created_at, updated_at
		FROM tax_brackets
		ORDER BY salary_min`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list tax brackets: %w", err)
	}
	defer rows.Close()

	var out []bracket.TaxBracketRecord
	for rows.Next() {
		var b bracket.TaxBracketRecord
		if err := rows.Scan(&b.ID, &b.SalaryMin, &b.SalaryMax, &b.Rate, &b.FixedAmount,
			&b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan tax bracket: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ReplaceTax swaps the whole tax table inside a single transaction.
func (r *BracketRepositoryImpl) ReplaceTax(ctx context.Context, records []bracket.TaxBracketRecord) ([]bracket.TaxBracketRecord, error) {
	insert := `
		INSERT INTO tax_brackets (id, salary_min, salary_max, rate, fixed_amount, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`

	err := WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)

		if _, err := q.Exec(txCtx, `DELETE FROM tax_brackets`); err != nil {
			return fmt.Errorf("clear tax brackets: %w", err)
		}

		for _, b := range records {
			if _, err := q.Exec(txCtx, insert,
				uuid.New().String(), b.SalaryMin, b.SalaryMax, b.Rate, b.FixedAmount, b.Description); err != nil {
				return fmt.Errorf("insert tax bracket: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.ListTax(ctx)
}
