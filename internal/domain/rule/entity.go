package rule

import (
	"time"

	"github.com/shopspring/decimal"
)

// RuleType enum
type RuleType string

const (
	RuleTypeBase       RuleType = "base"
	RuleTypeAdditional RuleType = "additional"
	RuleTypeDeduction  RuleType = "deduction"
	RuleTypeTax        RuleType = "tax"
)

// Well-known rule categories. Category stays free-form in storage; these
// constants are the values the eligibility gate and calculator recognize.
const (
	CategoryOvertime              = "overtime"
	CategoryDifferential          = "differential"
	CategoryHolidayPay            = "holiday_pay"
	CategoryMandatoryContribution = "mandatory_contribution"
	CategoryGSIS                  = "gsis"
	CategoryPhilHealth            = "philhealth"
	CategoryPagIBIG               = "pagibig"
	CategoryTax                   = "tax"
	CategoryMandatoryBenefit      = "mandatory_benefit"
	CategoryThirteenthMonth       = "thirteenth_month"
	CategoryLeaveBenefit          = "leave_benefit"
	CategoryLeave                 = "leave"
	CategoryAttendance            = "attendance"
	CategoryAllowance             = "allowance"
	CategoryBonus                 = "bonus"
	CategoryLoan                  = "loan"
	CategoryCitySavings           = "city_savings"
	CategorySSS                   = "sss"
)

// PayrollRule - a named calculation item. Edits mutate in place; rules are
// never versioned.
type PayrollRule struct {
	ID           string
	Name         string
	Description  *string
	Type         RuleType
	Category     string
	Amount       decimal.Decimal
	IsPercentage bool
	ApplyToAll   bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Explicit allow-list, meaningful only when ApplyToAll is false.
	AssignedUserIDs []string
}
