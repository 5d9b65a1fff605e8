package response

import (
	"errors"
	"net/http"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/employee"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/holiday"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/ledger"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Setting domain errors
	case errors.Is(err, setting.ErrScopeNotFound):
		NotFound(w, "Configuration scope not found")
	case errors.Is(err, setting.ErrUnknownSection):
		BadRequest(w, "Unknown settings section", nil)
	case errors.Is(err, setting.ErrScopeTargetRequired):
		BadRequest(w, "Scope target is required for this application type", nil)

	// Bracket domain errors
	case errors.Is(err, bracket.ErrEmptyBracketSet):
		BadRequest(w, "At least one bracket is required", nil)
	case errors.Is(err, bracket.ErrUnknownContributionType):
		BadRequest(w, "Unknown contribution type", nil)

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Payroll role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Payroll role name already exists")
	case errors.Is(err, role.ErrRoleAssigned):
		Conflict(w, "Payroll role is still assigned to employees")

	// Rule domain errors
	case errors.Is(err, rule.ErrRuleNotFound):
		NotFound(w, "Payroll rule not found")
	case errors.Is(err, rule.ErrRuleNameExists):
		Conflict(w, "Payroll rule name already exists")
	case errors.Is(err, rule.ErrInvalidType):
		BadRequest(w, "Invalid payroll rule type", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrDuplicateDate):
		Conflict(w, "Holiday already exists on this date")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrNoAttendance):
		BadRequest(w, "No attendance records found for the requested period", nil)
	case errors.Is(err, payroll.ErrNoEmployees):
		BadRequest(w, "No active employees matched the request", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid pay period", nil)

	// Ledger domain errors
	case errors.Is(err, ledger.ErrLedgerNotFound):
		NotFound(w, "Saved ledger not found")
	case errors.Is(err, ledger.ErrMissingPeriod):
		BadRequest(w, "Saved ledger is missing pay period dates", nil)
	case errors.Is(err, ledger.ErrInvalidPeriod):
		BadRequest(w, "Saved ledger pay period dates are invalid", nil)
	case errors.Is(err, ledger.ErrUnknownTemplate):
		BadRequest(w, "Unknown report template", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
