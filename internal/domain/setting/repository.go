package setting

import "context"

// SettingRepository defines data access for settings and their scopes.
type SettingRepository interface {
	ListByCategory(ctx context.Context, category string) ([]RawSetting, error)
	UpsertMany(ctx context.Context, rows []RawSetting) error

	ListScopes(ctx context.Context, settingKey string) ([]ConfigurationScope, error)
	ListActiveScopes(ctx context.Context) ([]ConfigurationScope, error)
	CreateScope(ctx context.Context, scope ConfigurationScope) (ConfigurationScope, error)
	DeactivateScopes(ctx context.Context, settingKey string) error
	DeleteScope(ctx context.Context, id string) error
}

// SettingService is the admin-facing configuration surface.
type SettingService interface {
	GetConfiguration(ctx context.Context) (ConfigurationResponse, error)
	SaveSection(ctx context.Context, req SaveSectionRequest) SaveConfigResponse
	QueueSection(ctx context.Context, req SaveSectionRequest) error
	ListScopes(ctx context.Context, settingKey string) ([]ScopeResponse, error)
	SaveScope(ctx context.Context, req SaveScopeRequest) (ScopeResponse, error)
	DeleteScope(ctx context.Context, id string) error
}
