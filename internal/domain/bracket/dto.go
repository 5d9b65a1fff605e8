package bracket

import (
	"strconv"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ContributionBracketInput - one UI bracket row (rates as percentages).
type ContributionBracketInput struct {
	SalaryMin       decimal.Decimal  `json:"salary_min"`
	SalaryMax       decimal.Decimal  `json:"salary_max"`
	EmployeeRate    decimal.Decimal  `json:"employee_rate"`
	EmployerRate    decimal.Decimal  `json:"employer_rate"`
	MinContribution decimal.Decimal  `json:"min_contribution"`
	MaxContribution *decimal.Decimal `json:"max_contribution,omitempty"`
	IsActive        bool             `json:"is_active"`
	Priority        int              `json:"priority"`
}

// ReplaceContributionRequest replaces the whole bracket set for one agency.
type ReplaceContributionRequest struct {
	Type     ContributionType           `json:"type"`
	Brackets []ContributionBracketInput `json:"brackets"`
}

func (r *ReplaceContributionRequest) Validate() error {
	if len(r.Brackets) == 0 {
		return ErrEmptyBracketSet
	}

	var errs validator.ValidationErrors

	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be gsis, philhealth, or pagibig"})
	}
	for i, b := range r.Brackets {
		if b.SalaryMin.GreaterThan(b.SalaryMax) {
			errs = append(errs, validator.ValidationError{Field: "brackets", Message: "salary_min must not exceed salary_max at index " + itoa(i)})
		}
		if b.EmployeeRate.IsNegative() || b.EmployerRate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "brackets", Message: "rates must be non-negative at index " + itoa(i)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// TaxBracketInput - one UI tax bracket row (rate as a percentage).
type TaxBracketInput struct {
	SalaryMin   decimal.Decimal `json:"salary_min"`
	SalaryMax   decimal.Decimal `json:"salary_max"`
	Rate        decimal.Decimal `json:"rate"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
	Description string          `json:"description"`
}

// ReplaceTaxRequest replaces the whole withholding schedule.
type ReplaceTaxRequest struct {
	Brackets []TaxBracketInput `json:"brackets"`
}

func (r *ReplaceTaxRequest) Validate() error {
	if len(r.Brackets) == 0 {
		return ErrEmptyBracketSet
	}

	var errs validator.ValidationErrors

	for i, b := range r.Brackets {
		if b.SalaryMin.GreaterThan(b.SalaryMax) {
			errs = append(errs, validator.ValidationError{Field: "brackets", Message: "salary_min must not exceed salary_max at index " + itoa(i)})
		}
		if b.Rate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "brackets", Message: "rate must be non-negative at index " + itoa(i)})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ContributionBracketResponse struct {
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	SalaryMin       decimal.Decimal  `json:"salary_min"`
	SalaryMax       decimal.Decimal  `json:"salary_max"`
	EmployeeRate    decimal.Decimal  `json:"employee_rate"`
	EmployerRate    decimal.Decimal  `json:"employer_rate"`
	MinContribution decimal.Decimal  `json:"min_contribution"`
	MaxContribution *decimal.Decimal `json:"max_contribution,omitempty"`
	IsActive        bool             `json:"is_active"`
	Priority        int              `json:"priority"`
}

type TaxBracketResponse struct {
	ID          string          `json:"id"`
	SalaryMin   decimal.Decimal `json:"salary_min"`
	SalaryMax   decimal.Decimal `json:"salary_max"`
	Rate        decimal.Decimal `json:"rate"`
	FixedAmount decimal.Decimal `json:"fixed_amount"`
	Description string          `json:"description"`
}

func itoa(i int) string { return strconv.Itoa(i) }
