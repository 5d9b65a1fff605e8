package payroll

import (
	"testing"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLookupContribution_RateTimesSalary(t *testing.T) {
	t.Parallel()

	gsis := fixtures.NewProvider().ContributionBrackets(bracket.ContributionGSIS)

	got := LookupContribution(decimal.NewFromInt(30000), gsis)
	want := decimal.NewFromInt(2700) // 30000 * 0.09
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestLookupContribution_MinimumClampApplies(t *testing.T) {
	t.Parallel()

	philhealth := fixtures.NewProvider().ContributionBrackets(bracket.ContributionPhilHealth)

	// 5000 * 0.025 = 125, below the first band's 250 floor.
	got := LookupContribution(decimal.NewFromInt(5000), philhealth)
	want := decimal.NewFromInt(250)
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestLookupContribution_MaximumClampApplies(t *testing.T) {
	t.Parallel()

	pagibig := fixtures.NewProvider().ContributionBrackets(bracket.ContributionPagIBIG)

	// 50000 * 0.02 = 1000, capped at the band's 200 ceiling.
	got := LookupContribution(decimal.NewFromInt(50000), pagibig)
	want := decimal.NewFromInt(200)
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestLookupContribution_SkipsInactiveBrackets(t *testing.T) {
	t.Parallel()

	brackets := []bracket.ContributionBracketRecord{
		{SalaryMin: decimal.Zero, SalaryMax: decimal.NewFromInt(100000), EmployeeRate: decimal.RequireFromString("0.5"), IsActive: false},
		{SalaryMin: decimal.Zero, SalaryMax: decimal.NewFromInt(100000), EmployeeRate: decimal.RequireFromString("0.02"), IsActive: true},
	}

	got := LookupContribution(decimal.NewFromInt(10000), brackets)
	want := decimal.NewFromInt(200)
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestLookupContribution_NoMatchingBandContributesNothing(t *testing.T) {
	t.Parallel()

	brackets := []bracket.ContributionBracketRecord{
		{SalaryMin: decimal.NewFromInt(10000), SalaryMax: decimal.NewFromInt(20000), EmployeeRate: decimal.RequireFromString("0.05"), IsActive: true},
	}

	assert.True(t, LookupContribution(decimal.NewFromInt(5000), brackets).IsZero())
	assert.True(t, LookupContribution(decimal.NewFromInt(25000), brackets).IsZero())
	assert.True(t, LookupContribution(decimal.NewFromInt(5000), nil).IsZero())
}

func TestLookupContribution_FirstMatchingBandWins(t *testing.T) {
	t.Parallel()

	brackets := []bracket.ContributionBracketRecord{
		{SalaryMin: decimal.Zero, SalaryMax: decimal.NewFromInt(50000), EmployeeRate: decimal.RequireFromString("0.01"), IsActive: true},
		{SalaryMin: decimal.Zero, SalaryMax: decimal.NewFromInt(50000), EmployeeRate: decimal.RequireFromString("0.09"), IsActive: true},
	}

	got := LookupContribution(decimal.NewFromInt(10000), brackets)
	want := decimal.NewFromInt(100)
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}
