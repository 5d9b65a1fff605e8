package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/handler/http/response"
)

type RuleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Toggle(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type RuleHandlerImpl struct {
	ruleService rule.RuleService
}

func NewRuleHandler(ruleService rule.RuleService) RuleHandler {
	return &RuleHandlerImpl{ruleService: ruleService}
}

// Create implements RuleHandler.
func (h *RuleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req rule.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ruleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll rule created", created)
}

// Get implements RuleHandler.
func (h *RuleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rule ID is required", nil)
		return
	}

	pr, err := h.ruleService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pr)
}

// List implements RuleHandler.
func (h *RuleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	rules, err := h.ruleService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rules)
}

// Update implements RuleHandler.
func (h *RuleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req rule.UpdateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.ruleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll rule updated", updated)
}

// Toggle implements RuleHandler. The body carries only the desired state.
func (h *RuleHandlerImpl) Toggle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rule ID is required", nil)
		return
	}

	var req struct {
		IsActive bool `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ToggleRule decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.ruleService.Toggle(r.Context(), id, req.IsActive); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll rule toggled", nil)
}

// Delete implements RuleHandler.
func (h *RuleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Rule ID is required", nil)
		return
	}

	if err := h.ruleService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll rule deleted", nil)
}
