package bracket

import (
	"sort"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/shopspring/decimal"
)

// The fraction/percentage conversion crosses the persistence/UI line in one
// place, here. Persisted rates are fractions in [0, 1]; everything the admin
// UI sees is a percentage in [0, 100]. decimal arithmetic keeps the
// round-trip exact.

var oneHundred = decimal.NewFromInt(100)

func fractionToPercent(fraction decimal.Decimal) decimal.Decimal {
	return fraction.Mul(oneHundred)
}

func percentToFraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(oneHundred)
}

// FromContributionRecord converts a persisted bracket row into its UI form.
func FromContributionRecord(r bracket.ContributionBracketRecord) bracket.ContributionBracket {
	return bracket.ContributionBracket{
		ID:              r.ID,
		Type:            r.Type,
		SalaryMin:       r.SalaryMin,
		SalaryMax:       r.SalaryMax,
		EmployeeRate:    fractionToPercent(r.EmployeeRate),
		EmployerRate:    fractionToPercent(r.EmployerRate),
		MinContribution: r.MinContribution,
		MaxContribution: r.MaxContribution,
		IsActive:        r.IsActive,
		Priority:        r.Priority,
	}
}

// ToContributionRecord converts a UI bracket back into its persisted form.
func ToContributionRecord(b bracket.ContributionBracket) bracket.ContributionBracketRecord {
	return bracket.ContributionBracketRecord{
		ID:              b.ID,
		Type:            b.Type,
		SalaryMin:       b.SalaryMin,
		SalaryMax:       b.SalaryMax,
		EmployeeRate:    percentToFraction(b.EmployeeRate),
		EmployerRate:    percentToFraction(b.EmployerRate),
		MinContribution: b.MinContribution,
		MaxContribution: b.MaxContribution,
		IsActive:        b.IsActive,
		Priority:        b.Priority,
	}
}

// FromTaxRecord converts a persisted tax bracket row into its UI form.
func FromTaxRecord(r bracket.TaxBracketRecord) bracket.TaxBracket {
	return bracket.TaxBracket{
		ID:          r.ID,
		SalaryMin:   r.SalaryMin,
		SalaryMax:   r.SalaryMax,
		Rate:        fractionToPercent(r.Rate),
		FixedAmount: r.FixedAmount,
		Description: r.Description,
	}
}

// ToTaxRecord converts a UI tax bracket back into its persisted form.
func ToTaxRecord(b bracket.TaxBracket) bracket.TaxBracketRecord {
	return bracket.TaxBracketRecord{
		ID:          b.ID,
		SalaryMin:   b.SalaryMin,
		SalaryMax:   b.SalaryMax,
		Rate:        percentToFraction(b.Rate),
		FixedAmount: b.FixedAmount,
		Description: b.Description,
	}
}

// SortContributionRecords orders brackets for display and lookup: priority
// ascending, then salary minimum ascending. Lookup takes the first match in
// this order, which makes tie resolution deterministic.
func SortContributionRecords(rows []bracket.ContributionBracketRecord) {
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].Priority != rows[j].Priority {
			return rows[i].Priority < rows[j].Priority
		}
		return rows[i].SalaryMin.LessThan(rows[j].SalaryMin)
	})
}

// SortTaxRecords orders tax brackets ascending by salary minimum.
func SortTaxRecords(rows []bracket.TaxBracketRecord) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].SalaryMin.LessThan(rows[j].SalaryMin)
	})
}
