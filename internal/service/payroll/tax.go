package payroll

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/shopspring/decimal"
)

// ComputeWithholdingTax applies the progressive schedule to a taxable
// amount: find the band the amount falls in, take the band's rate on the
// excess over the band's lower bound, and add the band's fixed amount. The
// lower bound is the previous band's salary maximum (zero for the first
// band), which keeps the marginal computation correct whether the table
// stores bands as 0-20833/20834-33333 or 0-20832/20833-33332.
//
// Brackets must already be sorted ascending by salary minimum. A negative
// or zero taxable amount, or an empty schedule, withholds nothing.
func ComputeWithholdingTax(taxable decimal.Decimal, brackets []bracket.TaxBracketRecord) decimal.Decimal {
	if taxable.LessThanOrEqual(decimal.Zero) || len(brackets) == 0 {
		return decimal.Zero
	}

	lower := decimal.Zero
	for _, b := range brackets {
		if taxable.LessThanOrEqual(b.SalaryMax) {
			excess := taxable.Sub(lower)
			if excess.IsNegative() {
				excess = decimal.Zero
			}
			return excess.Mul(b.Rate).Add(b.FixedAmount)
		}
		lower = b.SalaryMax
	}

	// Above every band: tax at the top band.
	top := brackets[len(brackets)-1]
	lower = decimal.Zero
	if len(brackets) > 1 {
		lower = brackets[len(brackets)-2].SalaryMax
	}
	return taxable.Sub(lower).Mul(top.Rate).Add(top.FixedAmount)
}
