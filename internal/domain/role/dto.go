package role

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRoleRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`

	OvertimeEligible          bool `json:"overtime_eligible"`
	NightDifferentialEligible bool `json:"night_differential_eligible"`
	HolidayPayEligible        bool `json:"holiday_pay_eligible"`
	GSISEligible              bool `json:"gsis_eligible"`
	PhilHealthEligible        bool `json:"philhealth_eligible"`
	PagIBIGEligible           bool `json:"pagibig_eligible"`
	WithholdingTaxEligible    bool `json:"withholding_tax_eligible"`
	ThirteenthMonthEligible   bool `json:"thirteenth_month_eligible"`
	LeaveEligible             bool `json:"leave_eligible"`
}

func (r *CreateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	ID          string
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`

	OvertimeEligible          *bool `json:"overtime_eligible,omitempty"`
	NightDifferentialEligible *bool `json:"night_differential_eligible,omitempty"`
	HolidayPayEligible        *bool `json:"holiday_pay_eligible,omitempty"`
	GSISEligible              *bool `json:"gsis_eligible,omitempty"`
	PhilHealthEligible        *bool `json:"philhealth_eligible,omitempty"`
	PagIBIGEligible           *bool `json:"pagibig_eligible,omitempty"`
	WithholdingTaxEligible    *bool `json:"withholding_tax_eligible,omitempty"`
	ThirteenthMonthEligible   *bool `json:"thirteenth_month_eligible,omitempty"`
	LeaveEligible             *bool `json:"leave_eligible,omitempty"`
}

type AssignRoleRequest struct {
	UserID string `json:"user_id"`
	RoleID string `json:"-"`
}

func (r *AssignRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{Field: "user_id", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RoleResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description,omitempty"`
	BaseSalary  *decimal.Decimal `json:"base_salary,omitempty"`
	IsActive    bool             `json:"is_active"`

	OvertimeEligible          bool `json:"overtime_eligible"`
	NightDifferentialEligible bool `json:"night_differential_eligible"`
	HolidayPayEligible        bool `json:"holiday_pay_eligible"`
	GSISEligible              bool `json:"gsis_eligible"`
	PhilHealthEligible        bool `json:"philhealth_eligible"`
	PagIBIGEligible           bool `json:"pagibig_eligible"`
	WithholdingTaxEligible    bool `json:"withholding_tax_eligible"`
	ThirteenthMonthEligible   bool `json:"thirteenth_month_eligible"`
	LeaveEligible             bool `json:"leave_eligible"`
}
