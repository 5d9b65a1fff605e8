package payroll

import (
	"testing"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestComputeWithholdingTax_DefaultSchedule(t *testing.T) {
	t.Parallel()

	brackets := fixtures.NewProvider().TaxBrackets()

	// Marginal computation per band: rate on the excess over the previous
	// band's ceiling, plus the band's fixed amount. 25000 taxes as
	// (25000-20833)*0.20, 40000 as 2500+(40000-33333)*0.25, 100000 as
	// 10833.33+(100000-66666)*0.30.
	tests := []struct {
		name    string
		taxable string
		want    string
	}{
		{"below exemption threshold", "15000", "0"},
		{"at first band ceiling", "20833", "0"},
		{"second band marginal", "25000", "833.4"},
		{"third band with fixed amount", "40000", "4166.75"},
		{"fourth band", "100000", "20833.53"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ComputeWithholdingTax(decimal.RequireFromString(tt.taxable), brackets)
			want := decimal.RequireFromString(tt.want)
			assert.True(t, want.Equal(got), "want %s, got %s", want, got)
		})
	}
}

func TestComputeWithholdingTax_ZeroOrNegativeTaxableWithholdsNothing(t *testing.T) {
	t.Parallel()

	brackets := fixtures.NewProvider().TaxBrackets()

	assert.True(t, ComputeWithholdingTax(decimal.Zero, brackets).IsZero())
	assert.True(t, ComputeWithholdingTax(decimal.NewFromInt(-500), brackets).IsZero())
}

func TestComputeWithholdingTax_EmptyScheduleWithholdsNothing(t *testing.T) {
	t.Parallel()

	got := ComputeWithholdingTax(decimal.NewFromInt(50000), nil)
	assert.True(t, got.IsZero())
}

func TestComputeWithholdingTax_AboveEveryBandUsesTopRate(t *testing.T) {
	t.Parallel()

	// A closed-top schedule: amounts past the last ceiling still tax at the
	// top band's rate over the previous ceiling.
	brackets := []bracket.TaxBracketRecord{
		{SalaryMin: decimal.Zero, SalaryMax: decimal.NewFromInt(20000), Rate: decimal.Zero, FixedAmount: decimal.Zero},
		{SalaryMin: decimal.NewFromInt(20001), SalaryMax: decimal.NewFromInt(40000), Rate: decimal.RequireFromString("0.2"), FixedAmount: decimal.Zero},
	}

	got := ComputeWithholdingTax(decimal.NewFromInt(50000), brackets)
	want := decimal.NewFromInt(6000) // (50000 - 20000) * 0.20
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}

func TestComputeWithholdingTax_SingleBandScheduleStartsAtZero(t *testing.T) {
	t.Parallel()

	brackets := []bracket.TaxBracketRecord{
		{SalaryMin: decimal.Zero, SalaryMax: decimal.NewFromInt(10000), Rate: decimal.RequireFromString("0.1"), FixedAmount: decimal.Zero},
	}

	got := ComputeWithholdingTax(decimal.NewFromInt(30000), brackets)
	want := decimal.NewFromInt(3000)
	assert.True(t, want.Equal(got), "want %s, got %s", want, got)
}
