package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/handler/http/response"
)

type SettingHandler interface {
	GetConfiguration(w http.ResponseWriter, r *http.Request)
	SaveSection(w http.ResponseWriter, r *http.Request)
	QueueSection(w http.ResponseWriter, r *http.Request)

	ListScopes(w http.ResponseWriter, r *http.Request)
	SaveScope(w http.ResponseWriter, r *http.Request)
	DeleteScope(w http.ResponseWriter, r *http.Request)
}

type SettingHandlerImpl struct {
	settingService setting.SettingService
}

func NewSettingHandler(settingService setting.SettingService) SettingHandler {
	return &SettingHandlerImpl{settingService: settingService}
}

// GetConfiguration implements SettingHandler.
func (h *SettingHandlerImpl) GetConfiguration(w http.ResponseWriter, r *http.Request) {
	config, err := h.settingService.GetConfiguration(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, config)
}

// SaveSection implements SettingHandler. The save runs immediately; the
// outcome envelope always comes back with HTTP 200 so the admin UI can show
// per-section failures inline.
func (h *SettingHandlerImpl) SaveSection(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSectionRequest(w, r)
	if !ok {
		return
	}

	result := h.settingService.SaveSection(r.Context(), req)
	response.Success(w, result)
}

// QueueSection implements SettingHandler. The edit is validated now and
// persisted after the debounce window.
func (h *SettingHandlerImpl) QueueSection(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSectionRequest(w, r)
	if !ok {
		return
	}

	if err := h.settingService.QueueSection(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings change queued", nil)
}

func decodeSectionRequest(w http.ResponseWriter, r *http.Request) (setting.SaveSectionRequest, bool) {
	var req setting.SaveSectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveSection decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return setting.SaveSectionRequest{}, false
	}

	if section := chi.URLParam(r, "section"); section != "" {
		req.Section = setting.Section(section)
	}
	return req, true
}

// ListScopes implements SettingHandler.
func (h *SettingHandlerImpl) ListScopes(w http.ResponseWriter, r *http.Request) {
	settingKey := r.URL.Query().Get("setting_key")
	if settingKey == "" {
		response.BadRequest(w, "setting_key query parameter is required", nil)
		return
	}

	scopes, err := h.settingService.ListScopes(r.Context(), settingKey)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, scopes)
}

// SaveScope implements SettingHandler.
func (h *SettingHandlerImpl) SaveScope(w http.ResponseWriter, r *http.Request) {
	var req setting.SaveScopeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveScope decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	scope, err := h.settingService.SaveScope(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Configuration scope saved", scope)
}

// DeleteScope implements SettingHandler.
func (h *SettingHandlerImpl) DeleteScope(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Scope ID is required", nil)
		return
	}

	if err := h.settingService.DeleteScope(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Configuration scope deleted", nil)
}
