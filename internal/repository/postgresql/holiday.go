package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/holiday"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
)

const holidayColumns = `id, name, date, type, is_recurring, created_at, updated_at`

type HolidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &HolidayRepositoryImpl{db: db}
}

func (r *HolidayRepositoryImpl) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	query := `
		INSERT INTO holidays (` + holidayColumns + `)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING ` + holidayColumns

	q := GetQuerier(ctx, r.db)
	created, err := scanHoliday(q.QueryRow(ctx, query,
		uuid.New().String(), h.Name, h.Date, h.Type, h.IsRecurring))
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrDuplicateDate
		}
		return holiday.Holiday{}, fmt.Errorf("create holiday: %w", err)
	}
	return created, nil
}

func (r *HolidayRepositoryImpl) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	h, err := scanHoliday(q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return holiday.Holiday{}, holiday.ErrHolidayNotFound
	}
	if err != nil {
		return holiday.Holiday{}, fmt.Errorf("get holiday: %w", err)
	}
	return h, nil
}

func (r *HolidayRepositoryImpl) List(ctx context.Context) ([]holiday.Holiday, error) {
	query := `SELECT ` + holidayColumns + ` FROM holidays ORDER BY date`
	return r.queryHolidays(ctx, query)
}

// ListForRange returns holidays that could fall within the period, either
// by exact date or, for recurring holidays, by month and day in any year.
func (r *HolidayRepositoryImpl) ListForRange(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	query := `
		SELECT ` + holidayColumns + `
		FROM holidays
		WHERE is_recurring = TRUE OR (date >= $1 AND date <= $2)
		ORDER BY date`
	return r.queryHolidays(ctx, query, from, to)
}

func (r *HolidayRepositoryImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) error {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 5)

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Name != nil {
		add("name", *req.Name)
	}
	if req.Date != nil {
		add("date", *req.Date)
	}
	if req.Type != nil {
		add("type", *req.Type)
	}
	if req.IsRecurring != nil {
		add("is_recurring", *req.IsRecurring)
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, req.ID)
	query := fmt.Sprintf(`UPDATE holidays SET %s, updated_at = NOW() WHERE id = $%d`,
		strings.Join(sets, ", "), len(args))

	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.ErrDuplicateDate
		}
		return fmt.Errorf("update holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func (r *HolidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM holidays WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete holiday: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}

func (r *HolidayRepositoryImpl) queryHolidays(ctx context.Context, query string, args ...interface{}) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()

	var out []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanHoliday(row pgx.Row) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(&h.ID, &h.Name, &h.Date, &h.Type, &h.IsRecurring, &h.CreatedAt, &h.UpdatedAt)
	return h, err
}
