package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
)

type SettingRepositoryImpl struct {
	db *database.DB
}

func NewSettingRepository(db *database.DB) setting.SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

func (r *SettingRepositoryImpl) ListByCategory(ctx context.Context, category string) ([]setting.RawSetting, error) {
	query := `
		SELECT id, key, value, data_type, category, created_at, updated_at
		FROM settings
		WHERE category = $1
		ORDER BY key`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var out []setting.RawSetting
	for rows.Next() {
		var s setting.RawSetting
		if err := rows.Scan(&s.ID, &s.Key, &s.Value, &s.DataType, &s.Category, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// UpsertMany writes a whole section in one transaction so a failed save
// never leaves a partially updated section behind.
func (r *SettingRepositoryImpl) UpsertMany(ctx context.Context, settings []setting.RawSetting) error {
	query := `
		INSERT INTO settings (id, key, value, data_type, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, data_type = EXCLUDED.data_type, updated_at = NOW()`

	return WithTransaction(ctx, r.db, func(txCtx context.Context) error {
		q := GetQuerier(txCtx, r.db)
		for _, s := range settings {
			if _, err := q.Exec(txCtx, query, uuid.New().String(), s.Key, s.Value, s.DataType, s.Category); err != nil {
				return fmt.Errorf("upsert setting %s: %w", s.Key, err)
			}
		}
		return nil
	})
}

const scopeColumns = `id, setting_key, application_type, target_id, target_name, priority, is_active, created_at, updated_at`

func (r *SettingRepositoryImpl) ListScopes(ctx context.Context, settingKey string) ([]setting.ConfigurationScope, error) {
	query := `
		SELECT ` + scopeColumns + `
		FROM configuration_scopes
		WHERE setting_key = $1
		ORDER BY priority DESC, created_at DESC`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query, settingKey)
	if err != nil {
		return nil, fmt.Errorf("list configuration scopes: %w", err)
	}
	defer rows.Close()

	return scanScopes(rows)
}

func (r *SettingRepositoryImpl) ListActiveScopes(ctx context.Context) ([]setting.ConfigurationScope, error) {
	query := `
		SELECT ` + scopeColumns + `
		FROM configuration_scopes
		WHERE is_active = TRUE
		ORDER BY setting_key, priority DESC`

	q := GetQuerier(ctx, r.db)
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list active configuration scopes: %w", err)
	}
	defer rows.Close()

	return scanScopes(rows)
}

func (r *SettingRepositoryImpl) CreateScope(ctx context.Context, scope setting.ConfigurationScope) (setting.ConfigurationScope, error) {
	query := `
		INSERT INTO configuration_scopes (id, setting_key, application_type, target_id, target_name, priority, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + scopeColumns

	q := GetQuerier(ctx, r.db)
	row := q.QueryRow(ctx, query,
		uuid.New().String(), scope.SettingKey, scope.ApplicationType,
		scope.TargetID, scope.TargetName, scope.Priority, scope.IsActive)

	created, err := scanScope(row)
	if err != nil {
		return setting.ConfigurationScope{}, fmt.Errorf("create configuration scope: %w", err)
	}
	return created, nil
}

func (r *SettingRepositoryImpl) DeactivateScopes(ctx context.Context, settingKey string) error {
	query := `
		UPDATE configuration_scopes
		SET is_active = FALSE, updated_at = NOW()
		WHERE setting_key = $1 AND is_active = TRUE`

	q := GetQuerier(ctx, r.db)
	if _, err := q.Exec(ctx, query, settingKey); err != nil {
		return fmt.Errorf("deactivate configuration scopes: %w", err)
	}
	return nil
}

func (r *SettingRepositoryImpl) DeleteScope(ctx context.Context, id string) error {
	query := `DELETE FROM configuration_scopes WHERE id = $1`

	q := GetQuerier(ctx, r.db)
	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete configuration scope: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return setting.ErrScopeNotFound
	}
	return nil
}

func scanScopes(rows pgx.Rows) ([]setting.ConfigurationScope, error) {
	var out []setting.ConfigurationScope
	for rows.Next() {
		sc, err := scanScope(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}

func scanScope(row pgx.Row) (setting.ConfigurationScope, error) {
	var sc setting.ConfigurationScope
	err := row.Scan(&sc.ID, &sc.SettingKey, &sc.ApplicationType, &sc.TargetID, &sc.TargetName,
		&sc.Priority, &sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return setting.ConfigurationScope{}, setting.ErrScopeNotFound
	}
	if err != nil {
		return setting.ConfigurationScope{}, fmt.Errorf("scan configuration scope: %w", err)
	}
	return sc, nil
}
