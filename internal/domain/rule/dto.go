package rule

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateRuleRequest struct {
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	IsPercentage    bool            `json:"is_percentage"`
	ApplyToAll      bool            `json:"apply_to_all"`
	AssignedUserIDs []string        `json:"assigned_user_ids,omitempty"`
}

func (r *CreateRuleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	switch RuleType(r.Type) {
	case RuleTypeBase, RuleTypeAdditional, RuleTypeDeduction, RuleTypeTax:
	default:
		return ErrInvalidType
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{Field: "category", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}
	if !r.ApplyToAll && len(r.AssignedUserIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "assigned_user_ids", Message: "required when apply_to_all is false"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRuleRequest struct {
	ID              string
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Category        *string          `json:"category,omitempty"`
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	IsPercentage    *bool            `json:"is_percentage,omitempty"`
	ApplyToAll      *bool            `json:"apply_to_all,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
	AssignedUserIDs []string         `json:"assigned_user_ids,omitempty"`
}

type RuleResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     *string         `json:"description,omitempty"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	IsPercentage    bool            `json:"is_percentage"`
	ApplyToAll      bool            `json:"apply_to_all"`
	IsActive        bool            `json:"is_active"`
	AssignedUserIDs []string        `json:"assigned_user_ids,omitempty"`
}
