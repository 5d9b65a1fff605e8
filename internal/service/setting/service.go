package setting

import (
	"context"
	"log/slog"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/fixtures"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/database"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/repository/postgresql"
)

type SettingServiceImpl struct {
	db          *database.DB
	settingRepo setting.SettingRepository
	defaults    fixtures.Provider
	queue       *SaveQueue
	logger      *slog.Logger
}

func NewSettingService(
	db *database.DB,
	settingRepo setting.SettingRepository,
	defaults fixtures.Provider,
	queue *SaveQueue,
	logger *slog.Logger,
) setting.SettingService {
	return &SettingServiceImpl{
		db:          db,
		settingRepo: settingRepo,
		defaults:    defaults,
		queue:       queue,
		logger:      logger,
	}
}

// GetConfiguration decodes every persisted payroll setting into a complete
// bundle, falling back to the statutory defaults for anything missing.
func (s *SettingServiceImpl) GetConfiguration(ctx context.Context) (setting.ConfigurationResponse, error) {
	rows, err := s.settingRepo.ListByCategory(ctx, setting.CategoryPayroll)
	if err != nil {
		return setting.ConfigurationResponse{}, err
	}

	bundle := DecodeBundle(rows, s.defaults.Bundle())
	return setting.ConfigurationResponse{
		WorkingHours:  bundle.WorkingHours,
		Rates:         bundle.Rates,
		Contributions: bundle.Contributions,
		Tax:           bundle.Tax,
		Leave:         bundle.Leave,
	}, nil
}

// SaveSection encodes and upserts one section immediately. Failures surface
// in the response envelope; the upsert is atomic so no partial section
// remains.
func (s *SettingServiceImpl) SaveSection(ctx context.Context, req setting.SaveSectionRequest) setting.SaveConfigResponse {
	if err := req.Validate(); err != nil {
		return setting.SaveConfigResponse{Success: false, Message: "Validation failed", Errors: []string{err.Error()}}
	}

	rows, err := EncodeSection(req)
	if err != nil {
		return setting.SaveConfigResponse{Success: false, Message: "Unknown section", Errors: []string{err.Error()}}
	}

	if err := s.settingRepo.UpsertMany(ctx, rows); err != nil {
		s.logger.Error("settings save failed", "section", req.Section, "error", err)
		return setting.SaveConfigResponse{Success: false, Message: "Failed to save settings", Errors: []string{err.Error()}}
	}

	return setting.SaveConfigResponse{Success: true, Message: "Settings saved"}
}

// QueueSection validates an edit and hands it to the debounced save queue so
// rapid edits to one section coalesce into a single save.
func (s *SettingServiceImpl) QueueSection(ctx context.Context, req setting.SaveSectionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	s.queue.Enqueue(req)
	return nil
}

// ========== SCOPES ==========

func (s *SettingServiceImpl) ListScopes(ctx context.Context, settingKey string) ([]setting.ScopeResponse, error) {
	scopes, err := s.settingRepo.ListScopes(ctx, settingKey)
	if err != nil {
		return nil, err
	}

	result := make([]setting.ScopeResponse, 0, len(scopes))
	for _, sc := range scopes {
		result = append(result, mapScopeResponse(sc))
	}
	return result, nil
}

// SaveScope deactivates every previously active scope for the setting key
// and activates the new one inside a single transaction. Scopes are a
// last-write-wins set keyed by setting, not an append-only log.
func (s *SettingServiceImpl) SaveScope(ctx context.Context, req setting.SaveScopeRequest) (setting.ScopeResponse, error) {
	if err := req.Validate(); err != nil {
		return setting.ScopeResponse{}, err
	}

	var created setting.ConfigurationScope
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.settingRepo.DeactivateScopes(txCtx, req.SettingKey); err != nil {
			return err
		}

		var err error
		created, err = s.settingRepo.CreateScope(txCtx, setting.ConfigurationScope{
			SettingKey:      req.SettingKey,
			ApplicationType: setting.ApplicationType(req.ApplicationType),
			TargetID:        req.TargetID,
			TargetName:      req.TargetName,
			Priority:        req.Priority,
			IsActive:        true,
		})
		return err
	})
	if err != nil {
		return setting.ScopeResponse{}, err
	}

	return mapScopeResponse(created), nil
}

func (s *SettingServiceImpl) DeleteScope(ctx context.Context, id string) error {
	return s.settingRepo.DeleteScope(ctx, id)
}

func mapScopeResponse(sc setting.ConfigurationScope) setting.ScopeResponse {
	return setting.ScopeResponse{
		ID:              sc.ID,
		SettingKey:      sc.SettingKey,
		ApplicationType: string(sc.ApplicationType),
		TargetID:        sc.TargetID,
		TargetName:      sc.TargetName,
		Priority:        sc.Priority,
		IsActive:        sc.IsActive,
	}
}
