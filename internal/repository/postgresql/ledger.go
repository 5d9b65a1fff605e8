package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/ledger"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
)

type LedgerRepositoryImpl struct {
	db *database.DB
}

func NewLedgerRepository(db *database.DB) ledger.LedgerRepository {
	return &LedgerRepositoryImpl{db: db}
}

// Save persists the ledger with its payroll lines as one JSON document, so
// a saved ledger reprints identically even after rules or brackets change.
func (r *LedgerRepositoryImpl) Save(ctx context.Context, l ledger.SavedLedger) (ledger.SavedLedger, error) {
	blob, err := json.Marshal(l.Employees)
	if err != nil {
		return ledger.SavedLedger{}, fmt.Errorf("encode ledger lines: %w", err)
	}

	query := `
		INSERT INTO saved_ledgers (id, title, template_type, period_start, period_end, employees, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at`

	q := GetQuerier(ctx, r.db)
	saved := l
	err = q.QueryRow(ctx, query,
		uuid.New().String(), l.Title, l.TemplateType, l.PeriodStart, l.PeriodEnd, blob).
		Scan(&saved.ID, &saved.CreatedAt)
	if err != nil {
		return ledger.SavedLedger{}, fmt.Errorf("save ledger: %w", err)
	}
	return saved, nil
}

func (r *LedgerRepositoryImpl) GetByID(ctx context.Context, id string) (ledger.SavedLedger, error) {
	query := `
		SELECT id, title, template_type, period_start, period_end, employees, created_at
		FROM saved_ledgers
		WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	l, err := scanLedger(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.SavedLedger{}, ledger.ErrLedgerNotFound
	}
	if err != nil {
		return ledger.SavedLedger{}, fmt.Errorf("get ledger: %w", err)
	}
	return l, nil
}

// List returns ledger metadata with the line counts, newest first. The full
// line sets stay in the database until a single ledger is loaded.
func (r *LedgerRepositoryImpl) List(ctx context.Context) ([]ledger.SavedLedger, error) {
	query := `
		SELECT id, title, template_type, period_start, period_end, employees, created_at
		FROM saved_ledgers
		ORDER BY created_at DESC`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}
	defer rows.Close()

	var out []ledger.SavedLedger
	for rows.Next() {
		l, err := scanLedger(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *LedgerRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM saved_ledgers WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete ledger: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ledger.ErrLedgerNotFound
	}
	return nil
}

func scanLedger(row pgx.Row) (ledger.SavedLedger, error) {
	var l ledger.SavedLedger
	var blob []byte
	err := row.Scan(&l.ID, &l.Title, &l.TemplateType, &l.PeriodStart, &l.PeriodEnd, &blob, &l.CreatedAt)
	if err != nil {
		return ledger.SavedLedger{}, err
	}

	if len(blob) > 0 {
		var lines []payroll.PayrollData
		if err := json.Unmarshal(blob, &lines); err != nil {
			return ledger.SavedLedger{}, fmt.Errorf("decode ledger lines: %w", err)
		}
		l.Employees = lines
	}
	return l, nil
}
