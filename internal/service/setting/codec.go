package setting

import (
	"strconv"
	"strings"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/shopspring/decimal"
)

// Setting keys. The flat namespace is shared with previously stored data and
// must not change.
const (
	keyDailyHours          = "working_hours_dailyHours"
	keyWorkingDaysPerMonth = "working_hours_workingDaysPerMonth"
	keyWorkingDaysPerWeek  = "working_hours_workingDaysPerWeek"

	keyOvertimeRate1            = "rates_overtimeRate1"
	keyOvertimeRate2            = "rates_overtimeRate2"
	keyRegularHolidayRate       = "rates_regularHolidayRate"
	keySpecialHolidayRate       = "rates_specialHolidayRate"
	keyLateDeductionBasis       = "rates_lateDeductionBasis"
	keyLateDeductionAmount      = "rates_lateDeductionAmount"
	keyUndertimeDeductionBasis  = "rates_undertimeDeductionBasis"
	keyUndertimeDeductionAmount = "rates_undertimeDeductionAmount"

	keyWithholdingEnabled = "tax_brackets_withholdingEnabled"

	keyVacationDays         = "leave_vacationDays"
	keySickDays             = "leave_sickDays"
	keyServiceIncentiveDays = "leave_serviceIncentiveDays"
	keyMaternityDays        = "leave_maternityDays"
	keyPaternityDays        = "leave_paternityDays"
)

func contributionKey(agency, field string) string {
	return "contributions_" + agency + "_" + field
}

// DecodeBundle converts persisted rows into a fully-populated ConfigBundle.
// Absent, empty, or unparsable values decode to the provided defaults; this
// never fails.
func DecodeBundle(rows []setting.RawSetting, defaults setting.ConfigBundle) setting.ConfigBundle {
	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Key] = row.Value
	}

	out := defaults

	out.WorkingHours.DailyHours = parseDecimal(values[keyDailyHours], defaults.WorkingHours.DailyHours)
	out.WorkingHours.WorkingDaysPerMonth = parseDecimal(values[keyWorkingDaysPerMonth], defaults.WorkingHours.WorkingDaysPerMonth)
	out.WorkingHours.WorkingDaysPerWeek = parseDecimal(values[keyWorkingDaysPerWeek], defaults.WorkingHours.WorkingDaysPerWeek)

	out.Rates.OvertimeRate1 = parseDecimal(values[keyOvertimeRate1], defaults.Rates.OvertimeRate1)
	out.Rates.OvertimeRate2 = parseDecimal(values[keyOvertimeRate2], defaults.Rates.OvertimeRate2)
	out.Rates.RegularHolidayRate = parseDecimal(values[keyRegularHolidayRate], defaults.Rates.RegularHolidayRate)
	out.Rates.SpecialHolidayRate = parseDecimal(values[keySpecialHolidayRate], defaults.Rates.SpecialHolidayRate)
	out.Rates.LateDeductionBasis = parseBasis(values[keyLateDeductionBasis], defaults.Rates.LateDeductionBasis)
	out.Rates.LateDeductionAmount = parseDecimal(values[keyLateDeductionAmount], defaults.Rates.LateDeductionAmount)
	out.Rates.UndertimeDeductionBasis = parseBasis(values[keyUndertimeDeductionBasis], defaults.Rates.UndertimeDeductionBasis)
	out.Rates.UndertimeDeductionAmount = parseDecimal(values[keyUndertimeDeductionAmount], defaults.Rates.UndertimeDeductionAmount)

	out.Contributions.GSIS = decodeContribution(values, "gsis", defaults.Contributions.GSIS)
	out.Contributions.PhilHealth = decodeContribution(values, "philhealth", defaults.Contributions.PhilHealth)
	out.Contributions.PagIBIG = decodeContribution(values, "pagibig", defaults.Contributions.PagIBIG)

	out.Tax.WithholdingEnabled = parseBool(values[keyWithholdingEnabled], defaults.Tax.WithholdingEnabled)

	out.Leave.VacationDays = parseDecimal(values[keyVacationDays], defaults.Leave.VacationDays)
	out.Leave.SickDays = parseDecimal(values[keySickDays], defaults.Leave.SickDays)
	out.Leave.ServiceIncentiveDays = parseDecimal(values[keyServiceIncentiveDays], defaults.Leave.ServiceIncentiveDays)
	out.Leave.MaternityDays = parseDecimal(values[keyMaternityDays], defaults.Leave.MaternityDays)
	out.Leave.PaternityDays = parseDecimal(values[keyPaternityDays], defaults.Leave.PaternityDays)

	return out
}

func decodeContribution(values map[string]string, agency string, fallback setting.ContributionConfig) setting.ContributionConfig {
	return setting.ContributionConfig{
		Enabled:      parseBool(values[contributionKey(agency, "enabled")], fallback.Enabled),
		EmployeeRate: parseDecimal(values[contributionKey(agency, "employeeRate")], fallback.EmployeeRate),
		EmployerRate: parseDecimal(values[contributionKey(agency, "employerRate")], fallback.EmployerRate),
	}
}

// EncodeBundle converts a decoded bundle back into persistable rows.
func EncodeBundle(b setting.ConfigBundle) []setting.RawSetting {
	var rows []setting.RawSetting
	rows = append(rows, EncodeWorkingHours(b.WorkingHours)...)
	rows = append(rows, EncodeRates(b.Rates)...)
	rows = append(rows, EncodeContributions(b.Contributions)...)
	rows = append(rows, EncodeTax(b.Tax)...)
	rows = append(rows, EncodeLeave(b.Leave)...)
	return rows
}

func EncodeWorkingHours(c setting.WorkingHoursConfig) []setting.RawSetting {
	return []setting.RawSetting{
		numberRow(keyDailyHours, c.DailyHours),
		numberRow(keyWorkingDaysPerMonth, c.WorkingDaysPerMonth),
		numberRow(keyWorkingDaysPerWeek, c.WorkingDaysPerWeek),
	}
}

func EncodeRates(c setting.RateConfig) []setting.RawSetting {
	return []setting.RawSetting{
		numberRow(keyOvertimeRate1, c.OvertimeRate1),
		numberRow(keyOvertimeRate2, c.OvertimeRate2),
		numberRow(keyRegularHolidayRate, c.RegularHolidayRate),
		numberRow(keySpecialHolidayRate, c.SpecialHolidayRate),
		stringRow(keyLateDeductionBasis, string(c.LateDeductionBasis)),
		numberRow(keyLateDeductionAmount, c.LateDeductionAmount),
		stringRow(keyUndertimeDeductionBasis, string(c.UndertimeDeductionBasis)),
		numberRow(keyUndertimeDeductionAmount, c.UndertimeDeductionAmount),
	}
}

func EncodeContributions(c setting.ContributionSettings) []setting.RawSetting {
	var rows []setting.RawSetting
	for _, agency := range []struct {
		name string
		cfg  setting.ContributionConfig
	}{
		{"gsis", c.GSIS},
		{"philhealth", c.PhilHealth},
		{"pagibig", c.PagIBIG},
	} {
		rows = append(rows,
			boolRow(contributionKey(agency.name, "enabled"), agency.cfg.Enabled),
			numberRow(contributionKey(agency.name, "employeeRate"), agency.cfg.EmployeeRate),
			numberRow(contributionKey(agency.name, "employerRate"), agency.cfg.EmployerRate),
		)
	}
	return rows
}

func EncodeTax(c setting.TaxConfig) []setting.RawSetting {
	return []setting.RawSetting{
		boolRow(keyWithholdingEnabled, c.WithholdingEnabled),
	}
}

func EncodeLeave(c setting.LeaveConfig) []setting.RawSetting {
	return []setting.RawSetting{
		numberRow(keyVacationDays, c.VacationDays),
		numberRow(keySickDays, c.SickDays),
		numberRow(keyServiceIncentiveDays, c.ServiceIncentiveDays),
		numberRow(keyMaternityDays, c.MaternityDays),
		numberRow(keyPaternityDays, c.PaternityDays),
	}
}

// EncodeSection encodes the section carried by a validated save request.
func EncodeSection(req setting.SaveSectionRequest) ([]setting.RawSetting, error) {
	switch req.Section {
	case setting.SectionWorkingHours:
		return EncodeWorkingHours(*req.WorkingHours), nil
	case setting.SectionRates:
		return EncodeRates(*req.Rates), nil
	case setting.SectionContributions:
		return EncodeContributions(*req.Contributions), nil
	case setting.SectionTax:
		return EncodeTax(*req.Tax), nil
	case setting.SectionLeave:
		return EncodeLeave(*req.Leave), nil
	}
	return nil, setting.ErrUnknownSection
}

// ========== ROW BUILDERS ==========

// numberRow encodes integers as NUMBER and everything else as DECIMAL.
func numberRow(key string, value decimal.Decimal) setting.RawSetting {
	dataType := setting.DataTypeDecimal
	if value.IsInteger() {
		dataType = setting.DataTypeNumber
	}
	return setting.RawSetting{
		Key:      key,
		Value:    value.String(),
		DataType: dataType,
		Category: setting.CategoryPayroll,
	}
}

func boolRow(key string, value bool) setting.RawSetting {
	return setting.RawSetting{
		Key:      key,
		Value:    strconv.FormatBool(value),
		DataType: setting.DataTypeBoolean,
		Category: setting.CategoryPayroll,
	}
}

func stringRow(key, value string) setting.RawSetting {
	return setting.RawSetting{
		Key:      key,
		Value:    value,
		DataType: setting.DataTypeString,
		Category: setting.CategoryPayroll,
	}
}

// ========== PARSERS ==========

func parseDecimal(raw string, fallback decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fallback
	}
	return d
}

func parseBool(raw string, fallback bool) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1":
		return true
	case "false", "0":
		return false
	}
	return fallback
}

func parseBasis(raw string, fallback setting.DeductionBasis) setting.DeductionBasis {
	switch setting.DeductionBasis(strings.TrimSpace(raw)) {
	case setting.BasisPerMinute:
		return setting.BasisPerMinute
	case setting.BasisPerHour:
		return setting.BasisPerHour
	case setting.BasisFixed:
		return setting.BasisFixed
	}
	return fallback
}
