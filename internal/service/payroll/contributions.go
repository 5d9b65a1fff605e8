package payroll

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/shopspring/decimal"
)

// LookupContribution finds the first active bracket whose salary band
// contains the given salary (brackets must already be in lookup order) and
// returns the employee-share contribution: employee rate times salary,
// clamped to the bracket's minimum and maximum contribution. No matching
// bracket means no contribution.
func LookupContribution(salary decimal.Decimal, brackets []bracket.ContributionBracketRecord) decimal.Decimal {
	for _, b := range brackets {
		if !b.IsActive {
			continue
		}
		if salary.LessThan(b.SalaryMin) || salary.GreaterThan(b.SalaryMax) {
			continue
		}

		amount := salary.Mul(b.EmployeeRate)
		if amount.LessThan(b.MinContribution) {
			amount = b.MinContribution
		}
		if b.MaxContribution != nil && amount.GreaterThan(*b.MaxContribution) {
			amount = *b.MaxContribution
		}
		return amount
	}
	return decimal.Zero
}
