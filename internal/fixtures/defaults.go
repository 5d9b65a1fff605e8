package fixtures

import (
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/holiday"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("fixtures: bad decimal literal " + s)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// ==========================================
// DEFAULT PROVIDER
// ==========================================

// Provider supplies the statutory default tables used whenever no persisted
// configuration exists. It is constructed once at startup and injected into
// the services that need fallbacks; it is read-only and never mutated.
type Provider struct{}

func NewProvider() Provider { return Provider{} }

// Bundle returns the fully-populated default configuration.
func (Provider) Bundle() setting.ConfigBundle {
	return setting.ConfigBundle{
		WorkingHours: setting.WorkingHoursConfig{
			DailyHours:          dec("8"),
			WorkingDaysPerMonth: dec("22"),
			WorkingDaysPerWeek:  dec("5"),
		},
		Rates: setting.RateConfig{
			OvertimeRate1:            dec("1.25"),
			OvertimeRate2:            dec("1.5"),
			RegularHolidayRate:       dec("200"),
			SpecialHolidayRate:       dec("130"),
			LateDeductionBasis:       setting.BasisPerMinute,
			LateDeductionAmount:      dec("0"),
			UndertimeDeductionBasis:  setting.BasisPerHour,
			UndertimeDeductionAmount: dec("0"),
		},
		Contributions: setting.ContributionSettings{
			GSIS:       setting.ContributionConfig{Enabled: true, EmployeeRate: dec("9"), EmployerRate: dec("12")},
			PhilHealth: setting.ContributionConfig{Enabled: true, EmployeeRate: dec("2.5"), EmployerRate: dec("2.5")},
			PagIBIG:    setting.ContributionConfig{Enabled: true, EmployeeRate: dec("2"), EmployerRate: dec("2")},
		},
		Tax: setting.TaxConfig{WithholdingEnabled: true},
		Leave: setting.LeaveConfig{
			VacationDays:         dec("15"),
			SickDays:             dec("15"),
			ServiceIncentiveDays: dec("5"),
			MaternityDays:        dec("0"),
			PaternityDays:        dec("0"),
		},
	}
}

// TaxBrackets returns the TRAIN-law monthly withholding schedule as
// persisted-form records (rates as fractions). The top band uses the
// open-ended salary sentinel.
func (Provider) TaxBrackets() []bracket.TaxBracketRecord {
	return []bracket.TaxBracketRecord{
		{SalaryMin: dec("0"), SalaryMax: dec("20833"), Rate: dec("0"), FixedAmount: dec("0"), Description: "0%"},
		{SalaryMin: dec("20834"), SalaryMax: dec("33333"), Rate: dec("0.2"), FixedAmount: dec("0"), Description: "20% of excess over 20,833"},
		{SalaryMin: dec("33334"), SalaryMax: dec("66666"), Rate: dec("0.25"), FixedAmount: dec("2500"), Description: "2,500 + 25% of excess over 33,333"},
		{SalaryMin: dec("66667"), SalaryMax: dec("166666"), Rate: dec("0.3"), FixedAmount: dec("10833.33"), Description: "10,833.33 + 30% of excess over 66,667"},
		{SalaryMin: dec("166667"), SalaryMax: dec("666666"), Rate: dec("0.32"), FixedAmount: dec("40833.33"), Description: "40,833.33 + 32% of excess over 166,667"},
		{SalaryMin: dec("666667"), SalaryMax: decimal.NewFromInt(bracket.SalaryMaxSentinel), Rate: dec("0.35"), FixedAmount: dec("200833.33"), Description: "200,833.33 + 35% of excess over 666,667"},
	}
}

// ContributionBrackets returns the default bracket table for one agency as
// persisted-form records (rates as fractions).
func (Provider) ContributionBrackets(t bracket.ContributionType) []bracket.ContributionBracketRecord {
	sentinel := decimal.NewFromInt(bracket.SalaryMaxSentinel)
	switch t {
	case bracket.ContributionGSIS:
		return []bracket.ContributionBracketRecord{
			{Type: t, SalaryMin: dec("0"), SalaryMax: sentinel, EmployeeRate: dec("0.09"), EmployerRate: dec("0.12"), MinContribution: dec("0"), IsActive: true, Priority: 1},
		}
	case bracket.ContributionPhilHealth:
		return []bracket.ContributionBracketRecord{
			{Type: t, SalaryMin: dec("0"), SalaryMax: dec("10000"), EmployeeRate: dec("0.025"), EmployerRate: dec("0.025"), MinContribution: dec("250"), IsActive: true, Priority: 1},
			{Type: t, SalaryMin: dec("10000.01"), SalaryMax: dec("99999.99"), EmployeeRate: dec("0.025"), EmployerRate: dec("0.025"), MinContribution: dec("0"), IsActive: true, Priority: 2},
			{Type: t, SalaryMin: dec("100000"), SalaryMax: sentinel, EmployeeRate: dec("0"), EmployerRate: dec("0"), MinContribution: dec("2500"), MaxContribution: decPtr("2500"), IsActive: true, Priority: 3},
		}
	case bracket.ContributionPagIBIG:
		return []bracket.ContributionBracketRecord{
			{Type: t, SalaryMin: dec("0"), SalaryMax: dec("1500"), EmployeeRate: dec("0.01"), EmployerRate: dec("0.02"), MinContribution: dec("0"), IsActive: true, Priority: 1},
			{Type: t, SalaryMin: dec("1500.01"), SalaryMax: sentinel, EmployeeRate: dec("0.02"), EmployerRate: dec("0.02"), MinContribution: dec("0"), MaxContribution: decPtr("200"), IsActive: true, Priority: 2},
		}
	}
	return nil
}

// Holidays returns the recurring Philippine national holiday table.
func (Provider) Holidays() []holiday.Holiday {
	d := func(month time.Month, day int) time.Time {
		return time.Date(2024, month, day, 0, 0, 0, 0, time.UTC)
	}
	return []holiday.Holiday{
		{Name: "New Year's Day", Date: d(time.January, 1), Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "Araw ng Kagitingan", Date: d(time.April, 9), Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "Labor Day", Date: d(time.May, 1), Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "Independence Day", Date: d(time.June, 12), Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "National Heroes Day", Date: d(time.August, 26), Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "Bonifacio Day", Date: d(time.November, 30), Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "Christmas Day", Date: d(time.December, 25), Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "Rizal Day", Date: d(time.December, 30), Type: holiday.HolidayRegular, IsRecurring: true},
		{Name: "Ninoy Aquino Day", Date: d(time.August, 21), Type: holiday.HolidaySpecial, IsRecurring: true},
		{Name: "All Saints' Day", Date: d(time.November, 1), Type: holiday.HolidaySpecial, IsRecurring: true},
		{Name: "Feast of the Immaculate Conception", Date: d(time.December, 8), Type: holiday.HolidaySpecial, IsRecurring: true},
		{Name: "Last Day of the Year", Date: d(time.December, 31), Type: holiday.HolidaySpecial, IsRecurring: true},
	}
}

// Rules returns the seed calculation rule set a new installation starts
// with. Admins toggle and edit these in place.
func (Provider) Rules() []rule.PayrollRule {
	return []rule.PayrollRule{
		{Name: "Overtime Pay", Type: rule.RuleTypeAdditional, Category: rule.CategoryOvertime, Amount: dec("0"), ApplyToAll: true, IsActive: true},
		{Name: "Holiday Pay", Type: rule.RuleTypeAdditional, Category: rule.CategoryHolidayPay, Amount: dec("0"), ApplyToAll: true, IsActive: true},
		{Name: "13th Month Pay", Type: rule.RuleTypeAdditional, Category: rule.CategoryThirteenthMonth, Amount: dec("0"), ApplyToAll: true, IsActive: true},
		{Name: "GSIS Contribution", Type: rule.RuleTypeDeduction, Category: rule.CategoryMandatoryContribution, Amount: dec("0"), ApplyToAll: true, IsActive: true},
		{Name: "PhilHealth Contribution", Type: rule.RuleTypeDeduction, Category: rule.CategoryMandatoryContribution, Amount: dec("0"), ApplyToAll: true, IsActive: true},
		{Name: "Pag-IBIG Contribution", Type: rule.RuleTypeDeduction, Category: rule.CategoryMandatoryContribution, Amount: dec("0"), ApplyToAll: true, IsActive: true},
		{Name: "Withholding Tax", Type: rule.RuleTypeTax, Category: rule.CategoryTax, Amount: dec("0"), ApplyToAll: true, IsActive: true},
		{Name: "Service Incentive Leave", Type: rule.RuleTypeAdditional, Category: rule.CategoryLeaveBenefit, Amount: dec("0"), ApplyToAll: true, IsActive: false},
	}
}
