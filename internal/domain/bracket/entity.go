package bracket

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContributionType enum - the three mandatory agencies.
type ContributionType string

const (
	ContributionGSIS       ContributionType = "gsis"
	ContributionPhilHealth ContributionType = "philhealth"
	ContributionPagIBIG    ContributionType = "pagibig"
)

// ContributionTypes lists every known agency in display order.
func ContributionTypes() []ContributionType {
	return []ContributionType{ContributionGSIS, ContributionPhilHealth, ContributionPagIBIG}
}

func (t ContributionType) Valid() bool {
	switch t {
	case ContributionGSIS, ContributionPhilHealth, ContributionPagIBIG:
		return true
	}
	return false
}

// SalaryMaxSentinel marks the open-ended top band ("and above").
const SalaryMaxSentinel = 999999999

// ContributionBracketRecord - persisted form. Rates are fractions in [0, 1].
type ContributionBracketRecord struct {
	ID              string
	Type            ContributionType
	SalaryMin       decimal.Decimal
	SalaryMax       decimal.Decimal
	EmployeeRate    decimal.Decimal
	EmployerRate    decimal.Decimal
	MinContribution decimal.Decimal
	MaxContribution *decimal.Decimal
	IsActive        bool
	Priority        int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ContributionBracket - UI-facing form. Rates are percentages in [0, 100].
type ContributionBracket struct {
	ID              string
	Type            ContributionType
	SalaryMin       decimal.Decimal
	SalaryMax       decimal.Decimal
	EmployeeRate    decimal.Decimal
	EmployerRate    decimal.Decimal
	MinContribution decimal.Decimal
	MaxContribution *decimal.Decimal
	IsActive        bool
	Priority        int
}

// TaxBracketRecord - persisted form. Rate is a fraction in [0, 1].
type TaxBracketRecord struct {
	ID          string
	SalaryMin   decimal.Decimal
	SalaryMax   decimal.Decimal
	Rate        decimal.Decimal
	FixedAmount decimal.Decimal
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaxBracket - UI-facing form. Rate is a percentage in [0, 100].
type TaxBracket struct {
	ID          string
	SalaryMin   decimal.Decimal
	SalaryMax   decimal.Decimal
	Rate        decimal.Decimal
	FixedAmount decimal.Decimal
	Description string
}
