package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/handler/http/response"
)

type RoleHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)

	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
	ListForUser(w http.ResponseWriter, r *http.Request)
}

type RoleHandlerImpl struct {
	roleService role.RoleService
}

func NewRoleHandler(roleService role.RoleService) RoleHandler {
	return &RoleHandlerImpl{roleService: roleService}
}

// Create implements RoleHandler.
func (h *RoleHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req role.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.roleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll role created", created)
}

// Get implements RoleHandler.
func (h *RoleHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	pr, err := h.roleService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, pr)
}

// List implements RoleHandler.
func (h *RoleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	roles, err := h.roleService.List(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roles)
}

// Update implements RoleHandler.
func (h *RoleHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req role.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.roleService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll role updated", updated)
}

// Delete implements RoleHandler.
func (h *RoleHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Role ID is required", nil)
		return
	}

	if err := h.roleService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll role deleted", nil)
}

// Assign implements RoleHandler.
func (h *RoleHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	var req role.AssignRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AssignRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RoleID = chi.URLParam(r, "id")

	if err := h.roleService.Assign(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll role assigned", nil)
}

// Unassign implements RoleHandler.
func (h *RoleHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	roleID := chi.URLParam(r, "id")
	userID := chi.URLParam(r, "userId")
	if roleID == "" || userID == "" {
		response.BadRequest(w, "Role ID and user ID are required", nil)
		return
	}

	if err := h.roleService.Unassign(r.Context(), userID, roleID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll role unassigned", nil)
}

// ListForUser implements RoleHandler.
func (h *RoleHandlerImpl) ListForUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		response.BadRequest(w, "User ID is required", nil)
		return
	}

	roles, err := h.roleService.ListForUser(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, roles)
}
