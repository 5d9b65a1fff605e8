package setting

import (
	"testing"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/fixtures"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBundle_EmptyRowsFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	defaults := fixtures.NewProvider().Bundle()

	bundle := DecodeBundle(nil, defaults)

	assert.True(t, bundle.WorkingHours.DailyHours.Equal(defaults.WorkingHours.DailyHours))
	assert.True(t, bundle.Rates.OvertimeRate1.Equal(defaults.Rates.OvertimeRate1))
	assert.Equal(t, defaults.Contributions.GSIS.Enabled, bundle.Contributions.GSIS.Enabled)
	assert.Equal(t, defaults.Tax.WithholdingEnabled, bundle.Tax.WithholdingEnabled)
}

func TestDecodeBundle_RowsOverrideDefaults(t *testing.T) {
	t.Parallel()
	defaults := fixtures.NewProvider().Bundle()

	rows := []setting.RawSetting{
		{Key: "working_hours_dailyHours", Value: "7.5", DataType: setting.DataTypeDecimal, Category: setting.CategoryPayroll},
		{Key: "rates_overtimeRate1", Value: "1.3", DataType: setting.DataTypeDecimal, Category: setting.CategoryPayroll},
		{Key: "tax_brackets_withholdingEnabled", Value: "false", DataType: setting.DataTypeBoolean, Category: setting.CategoryPayroll},
	}

	bundle := DecodeBundle(rows, defaults)

	assert.True(t, bundle.WorkingHours.DailyHours.Equal(decimal.RequireFromString("7.5")))
	assert.True(t, bundle.Rates.OvertimeRate1.Equal(decimal.RequireFromString("1.3")))
	assert.False(t, bundle.Tax.WithholdingEnabled)
	// Untouched keys keep their defaults.
	assert.True(t, bundle.WorkingHours.WorkingDaysPerMonth.Equal(defaults.WorkingHours.WorkingDaysPerMonth))
}

func TestDecodeBundle_UnparsableValueFallsBackPerKey(t *testing.T) {
	t.Parallel()
	defaults := fixtures.NewProvider().Bundle()

	rows := []setting.RawSetting{
		{Key: "working_hours_dailyHours", Value: "not-a-number", DataType: setting.DataTypeDecimal, Category: setting.CategoryPayroll},
		{Key: "working_hours_workingDaysPerMonth", Value: "20", DataType: setting.DataTypeNumber, Category: setting.CategoryPayroll},
	}

	bundle := DecodeBundle(rows, defaults)

	assert.True(t, bundle.WorkingHours.DailyHours.Equal(defaults.WorkingHours.DailyHours),
		"garbage value should not poison the bundle")
	assert.True(t, bundle.WorkingHours.WorkingDaysPerMonth.Equal(decimal.NewFromInt(20)))
}

func TestEncodeBundle_RoundTripsThroughDecode(t *testing.T) {
	t.Parallel()
	defaults := fixtures.NewProvider().Bundle()

	original := defaults
	original.WorkingHours.DailyHours = decimal.RequireFromString("7.5")
	original.Rates.LateDeductionBasis = setting.BasisPerHour
	original.Rates.LateDeductionAmount = decimal.RequireFromString("62.5")
	original.Contributions.PagIBIG.Enabled = false
	original.Leave.VacationDays = decimal.NewFromInt(12)

	rows := EncodeBundle(original)
	decoded := DecodeBundle(rows, defaults)

	assert.True(t, decoded.WorkingHours.DailyHours.Equal(original.WorkingHours.DailyHours))
	assert.Equal(t, setting.BasisPerHour, decoded.Rates.LateDeductionBasis)
	assert.True(t, decoded.Rates.LateDeductionAmount.Equal(original.Rates.LateDeductionAmount))
	assert.False(t, decoded.Contributions.PagIBIG.Enabled)
	assert.True(t, decoded.Leave.VacationDays.Equal(original.Leave.VacationDays))
}

func TestEncodeBundle_DataTypesMatchValues(t *testing.T) {
	t.Parallel()
	bundle := fixtures.NewProvider().Bundle()

	rows := EncodeBundle(bundle)
	byKey := make(map[string]setting.RawSetting, len(rows))
	for _, row := range rows {
		byKey[row.Key] = row
	}

	daily, ok := byKey["working_hours_dailyHours"]
	require.True(t, ok)
	assert.Equal(t, setting.DataTypeNumber, daily.DataType, "whole numbers persist as NUMBER")

	ot, ok := byKey["rates_overtimeRate1"]
	require.True(t, ok)
	assert.Equal(t, setting.DataTypeDecimal, ot.DataType)

	enabled, ok := byKey["tax_brackets_withholdingEnabled"]
	require.True(t, ok)
	assert.Equal(t, setting.DataTypeBoolean, enabled.DataType)

	basis, ok := byKey["rates_lateDeductionBasis"]
	require.True(t, ok)
	assert.Equal(t, setting.DataTypeString, basis.DataType)
}

func TestEncodeSection_UnknownSectionErrors(t *testing.T) {
	t.Parallel()

	_, err := EncodeSection(setting.SaveSectionRequest{Section: "bogus"})
	assert.ErrorIs(t, err, setting.ErrUnknownSection)
}
