package payroll

import (
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
)

// ReportType - how the pay period was selected
type ReportType string

const (
	ReportMonthly     ReportType = "monthly"
	ReportSemiMonthly ReportType = "semi_monthly"
	ReportCustom      ReportType = "custom"
)

// Period - the date range a payroll computation covers
type Period struct {
	Start time.Time `json:"payPeriodStart"`
	End   time.Time `json:"payPeriodEnd"`
}

type GeneratePayrollRequest struct {
	PeriodStart      string   `json:"period_start"` // YYYY-MM-DD
	PeriodEnd        string   `json:"period_end"`   // YYYY-MM-DD
	ReportType       string   `json:"report_type"`
	EmploymentStatus *string  `json:"employment_status,omitempty"`
	EmployeeIDs      []string `json:"employee_ids,omitempty"` // empty = all active employees
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}

	switch ReportType(r.ReportType) {
	case ReportMonthly, ReportSemiMonthly, ReportCustom:
	default:
		errs = append(errs, validator.ValidationError{Field: "report_type", Message: "must be monthly, semi_monthly, or custom"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MustPeriod converts the validated request dates. Call only after Validate.
func (r *GeneratePayrollRequest) MustPeriod() Period {
	start, _ := validator.IsValidDate(r.PeriodStart)
	end, _ := validator.IsValidDate(r.PeriodEnd)
	return Period{Start: start, End: end}
}

type GeneratePayrollResponse struct {
	Period Period        `json:"period"`
	Lines  []PayrollData `json:"lines"`
}
