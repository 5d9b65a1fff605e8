package ledger

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
)

type RenderRequest struct {
	PeriodStart      string  `json:"period_start"`
	PeriodEnd        string  `json:"period_end"`
	Template         string  `json:"template"`
	EmploymentStatus *string `json:"employment_status,omitempty"`
}

func (r *RenderRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if !TemplateType(r.Template).Valid() {
		errs = append(errs, validator.ValidationError{Field: "template", Message: "must be standard, department, tax, or custom"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SaveLedgerRequest struct {
	Title       string                `json:"title"`
	Template    string                `json:"template"`
	PeriodStart string                `json:"period_start"`
	PeriodEnd   string                `json:"period_end"`
	Employees   []payroll.PayrollData `json:"employees"`
}

func (r *SaveLedgerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Title == "" {
		errs = append(errs, validator.ValidationError{Field: "title", Message: "is required"})
	}
	if !TemplateType(r.Template).Valid() {
		errs = append(errs, validator.ValidationError{Field: "template", Message: "must be standard, department, tax, or custom"})
	}
	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(r.Employees) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employees", Message: "must carry at least one payroll line"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SavedLedgerResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	TemplateType string `json:"template_type"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`
	Employees    int    `json:"employee_count"`
	CreatedAt    string `json:"created_at"`
}
