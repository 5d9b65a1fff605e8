package bracket

import (
	"testing"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContributionRecord_RoundTripKeepsRatesExact(t *testing.T) {
	t.Parallel()

	maxContribution := decimal.RequireFromString("5000")
	record := bracket.ContributionBracketRecord{
		ID:              "b-1",
		Type:            bracket.ContributionGSIS,
		SalaryMin:       decimal.Zero,
		SalaryMax:       decimal.NewFromInt(bracket.SalaryMaxSentinel),
		EmployeeRate:    decimal.RequireFromString("0.09"),
		EmployerRate:    decimal.RequireFromString("0.12"),
		MinContribution: decimal.NewFromInt(100),
		MaxContribution: &maxContribution,
		IsActive:        true,
		Priority:        1,
	}

	ui := FromContributionRecord(record)
	assert.True(t, ui.EmployeeRate.Equal(decimal.NewFromInt(9)), "0.09 fraction shows as 9 percent")
	assert.True(t, ui.EmployerRate.Equal(decimal.NewFromInt(12)))

	back := ToContributionRecord(ui)
	assert.True(t, back.EmployeeRate.Equal(record.EmployeeRate))
	assert.True(t, back.EmployerRate.Equal(record.EmployerRate))
	require.NotNil(t, back.MaxContribution)
	assert.True(t, back.MaxContribution.Equal(maxContribution))
}

func TestContributionRecord_RepeatingFractionSurvivesRoundTrip(t *testing.T) {
	t.Parallel()

	// 1/3 of a percent exercises the division; decimal keeps enough digits
	// that converting back lands within a nano of the original.
	record := bracket.ContributionBracketRecord{
		Type:         bracket.ContributionPagIBIG,
		EmployeeRate: decimal.RequireFromString("0.0033333333"),
		SalaryMax:    decimal.NewFromInt(5000),
	}

	back := ToContributionRecord(FromContributionRecord(record))
	diff := back.EmployeeRate.Sub(record.EmployeeRate).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.New(1, -9)),
		"round-trip drift %s exceeds 1e-9", diff)
}

func TestTaxRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	record := bracket.TaxBracketRecord{
		ID:          "t-2",
		SalaryMin:   decimal.RequireFromString("20834"),
		SalaryMax:   decimal.RequireFromString("33333"),
		Rate:        decimal.RequireFromString("0.20"),
		FixedAmount: decimal.Zero,
		Description: "20% of excess over 20,833",
	}

	ui := FromTaxRecord(record)
	assert.True(t, ui.Rate.Equal(decimal.NewFromInt(20)))

	back := ToTaxRecord(ui)
	assert.True(t, back.Rate.Equal(record.Rate))
	assert.True(t, back.SalaryMin.Equal(record.SalaryMin))
	assert.True(t, back.SalaryMax.Equal(record.SalaryMax))
}

func TestSortContributionRecords_PriorityThenSalaryMin(t *testing.T) {
	t.Parallel()

	rows := []bracket.ContributionBracketRecord{
		{ID: "c", Priority: 2, SalaryMin: decimal.NewFromInt(0)},
		{ID: "b", Priority: 1, SalaryMin: decimal.NewFromInt(5000)},
		{ID: "a", Priority: 1, SalaryMin: decimal.NewFromInt(0)},
	}

	SortContributionRecords(rows)

	assert.Equal(t, "a", rows[0].ID)
	assert.Equal(t, "b", rows[1].ID)
	assert.Equal(t, "c", rows[2].ID)
}

func TestSortTaxRecords_BySalaryMin(t *testing.T) {
	t.Parallel()

	rows := []bracket.TaxBracketRecord{
		{ID: "high", SalaryMin: decimal.NewFromInt(66667)},
		{ID: "zero", SalaryMin: decimal.Zero},
		{ID: "mid", SalaryMin: decimal.NewFromInt(20834)},
	}

	SortTaxRecords(rows)

	assert.Equal(t, "zero", rows[0].ID)
	assert.Equal(t, "mid", rows[1].ID)
	assert.Equal(t, "high", rows[2].ID)
}
