package role

import "context"

type RoleRepository interface {
	Create(ctx context.Context, r PayrollRole) (PayrollRole, error)
	GetByID(ctx context.Context, id string) (PayrollRole, error)
	List(ctx context.Context, activeOnly bool) ([]PayrollRole, error)
	Update(ctx context.Context, req UpdateRoleRequest) error
	Delete(ctx context.Context, id string) error

	AssignToUser(ctx context.Context, userID, roleID string) (UserPayrollRole, error)
	UnassignFromUser(ctx context.Context, userID, roleID string) error
	ListByUser(ctx context.Context, userID string) ([]PayrollRole, error)
	ListByUsers(ctx context.Context, userIDs []string) (map[string][]PayrollRole, error)
}

type RoleService interface {
	Create(ctx context.Context, req CreateRoleRequest) (RoleResponse, error)
	Get(ctx context.Context, id string) (RoleResponse, error)
	List(ctx context.Context, activeOnly bool) ([]RoleResponse, error)
	Update(ctx context.Context, req UpdateRoleRequest) (RoleResponse, error)
	Delete(ctx context.Context, id string) error
	Assign(ctx context.Context, req AssignRoleRequest) error
	Unassign(ctx context.Context, userID, roleID string) error
	ListForUser(ctx context.Context, userID string) ([]RoleResponse, error)
}
