package role

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
)

type RoleServiceImpl struct {
	roleRepo role.RoleRepository
	logger   *slog.Logger
}

func NewRoleService(roleRepo role.RoleRepository, logger *slog.Logger) role.RoleService {
	return &RoleServiceImpl{
		roleRepo: roleRepo,
		logger:   logger,
	}
}

func (s *RoleServiceImpl) Create(ctx context.Context, req role.CreateRoleRequest) (role.RoleResponse, error) {
	if err := req.Validate(); err != nil {
		return role.RoleResponse{}, err
	}

	created, err := s.roleRepo.Create(ctx, role.PayrollRole{
		Name:        req.Name,
		Description: req.Description,
		BaseSalary:  req.BaseSalary,
		IsActive:    true,

		OvertimeEligible:          req.OvertimeEligible,
		NightDifferentialEligible: req.NightDifferentialEligible,
		HolidayPayEligible:        req.HolidayPayEligible,
		GSISEligible:              req.GSISEligible,
		PhilHealthEligible:        req.PhilHealthEligible,
		PagIBIGEligible:           req.PagIBIGEligible,
		WithholdingTaxEligible:    req.WithholdingTaxEligible,
		ThirteenthMonthEligible:   req.ThirteenthMonthEligible,
		LeaveEligible:             req.LeaveEligible,
	})
	if err != nil {
		return role.RoleResponse{}, fmt.Errorf("create payroll role: %w", err)
	}

	s.logger.Info("payroll role created",
		slog.String("role_id", created.ID),
		slog.String("name", created.Name))

	return mapRoleResponse(created), nil
}

func (s *RoleServiceImpl) Get(ctx context.Context, id string) (role.RoleResponse, error) {
	r, err := s.roleRepo.GetByID(ctx, id)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return mapRoleResponse(r), nil
}

func (s *RoleServiceImpl) List(ctx context.Context, activeOnly bool) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list payroll roles: %w", err)
	}

	out := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, mapRoleResponse(r))
	}
	return out, nil
}

func (s *RoleServiceImpl) Update(ctx context.Context, req role.UpdateRoleRequest) (role.RoleResponse, error) {
	if err := s.roleRepo.Update(ctx, req); err != nil {
		return role.RoleResponse{}, err
	}

	updated, err := s.roleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return role.RoleResponse{}, err
	}
	return mapRoleResponse(updated), nil
}

func (s *RoleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.roleRepo.Delete(ctx, id)
}

func (s *RoleServiceImpl) Assign(ctx context.Context, req role.AssignRoleRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.roleRepo.AssignToUser(ctx, req.UserID, req.RoleID); err != nil {
		return fmt.Errorf("assign payroll role: %w", err)
	}

	s.logger.Info("payroll role assigned",
		slog.String("role_id", req.RoleID),
		slog.String("user_id", req.UserID))
	return nil
}

func (s *RoleServiceImpl) Unassign(ctx context.Context, userID, roleID string) error {
	return s.roleRepo.UnassignFromUser(ctx, userID, roleID)
}

func (s *RoleServiceImpl) ListForUser(ctx context.Context, userID string) ([]role.RoleResponse, error) {
	roles, err := s.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list roles for user: %w", err)
	}

	out := make([]role.RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, mapRoleResponse(r))
	}
	return out, nil
}

func mapRoleResponse(r role.PayrollRole) role.RoleResponse {
	return role.RoleResponse{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		BaseSalary:  r.BaseSalary,
		IsActive:    r.IsActive,

		OvertimeEligible:          r.OvertimeEligible,
		NightDifferentialEligible: r.NightDifferentialEligible,
		HolidayPayEligible:        r.HolidayPayEligible,
		GSISEligible:              r.GSISEligible,
		PhilHealthEligible:        r.PhilHealthEligible,
		PagIBIGEligible:           r.PagIBIGEligible,
		WithholdingTaxEligible:    r.WithholdingTaxEligible,
		ThirteenthMonthEligible:   r.ThirteenthMonthEligible,
		LeaveEligible:             r.LeaveEligible,
	}
}
