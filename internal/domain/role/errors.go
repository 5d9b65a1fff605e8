package role

import "errors"

var (
	ErrRoleNotFound   = errors.New("payroll role not found")
	ErrRoleNameExists = errors.New("payroll role name already exists")
	ErrRoleAssigned   = errors.New("payroll role still assigned to employees")
)
