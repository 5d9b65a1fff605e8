package payroll

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/employee"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/holiday"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/shopspring/decimal"
)

var (
	two        = decimal.NewFromInt(2)
	twelve     = decimal.NewFromInt(12)
	sixty      = decimal.NewFromInt(60)
	oneHundred = decimal.NewFromInt(100)
)

// Calculator reduces attendance, configuration, rules, and bracket tables
// into one employee's pay figures. It is pure: every input is passed in,
// nothing is loaded, and the same inputs always produce the same output.
type Calculator struct {
	Bundle       setting.ConfigBundle
	TaxBrackets  []bracket.TaxBracketRecord                                   // sorted ascending by salary min
	Contribution map[bracket.ContributionType][]bracket.ContributionBracketRecord // sorted for lookup
	Holidays     []holiday.Holiday
	Rules        []rule.PayrollRule
}

// Compute produces the PayrollData for one employee over one period.
// Every currency amount is rounded to the cent; a missing source value
// contributes zero, never a hole in the totals.
func (c *Calculator) Compute(emp employee.Employee, roles []role.PayrollRole, att employee.AttendanceSummary) (payroll.PayrollData, error) {
	baseSalary, ok := c.resolveBaseSalary(emp, roles)
	if !ok {
		return payroll.PayrollData{}, payroll.ErrMissingBaseSalary
	}

	dailyRate, hourlyRate := c.rates(baseSalary)

	var earnings payroll.EarningsBreakdown
	var deductions payroll.DeductionBreakdown

	earnings.RegularPay = dailyRate.Mul(decimal.NewFromInt(int64(att.DaysPresent))).Round(2)

	if c.componentAllowed(rule.CategoryOvertime, emp.ID, roles, func(r role.PayrollRole) bool { return r.OvertimeEligible }) {
		earnings.OvertimePay = c.overtimePay(att.OvertimeHours, hourlyRate)
	}

	if c.componentAllowed(rule.CategoryHolidayPay, emp.ID, roles, func(r role.PayrollRole) bool { return r.HolidayPayEligible }) {
		earnings.HolidayPay = c.holidayPay(att.HolidayWork, hourlyRate)
	}

	c.applyEarningRules(&earnings, baseSalary, roles, emp.ID)

	// Attendance deductions apply to everyone with attendance shortfalls.
	deductions.LateDeductions = c.attendanceDeduction(att.LateHours, c.Bundle.Rates.LateDeductionBasis, c.Bundle.Rates.LateDeductionAmount, hourlyRate).
		Add(c.attendanceDeduction(att.UndertimeHours, c.Bundle.Rates.UndertimeDeductionBasis, c.Bundle.Rates.UndertimeDeductionAmount, hourlyRate)).
		Round(2)

	if c.Bundle.Contributions.GSIS.Enabled &&
		c.componentAllowed(rule.CategoryMandatoryContribution, emp.ID, roles, func(r role.PayrollRole) bool { return r.GSISEligible }) {
		deductions.GSISContribution = LookupContribution(baseSalary, c.Contribution[bracket.ContributionGSIS]).Round(2)
	}
	if c.Bundle.Contributions.PhilHealth.Enabled &&
		c.componentAllowed(rule.CategoryMandatoryContribution, emp.ID, roles, func(r role.PayrollRole) bool { return r.PhilHealthEligible }) {
		deductions.PhilHealthContribution = LookupContribution(baseSalary, c.Contribution[bracket.ContributionPhilHealth]).Round(2)
	}
	if c.Bundle.Contributions.PagIBIG.Enabled &&
		c.componentAllowed(rule.CategoryMandatoryContribution, emp.ID, roles, func(r role.PayrollRole) bool { return r.PagIBIGEligible }) {
		deductions.PagIBIGContribution = LookupContribution(baseSalary, c.Contribution[bracket.ContributionPagIBIG]).Round(2)
	}

	c.applyDeductionRules(&deductions, baseSalary, roles, emp.ID)

	totalEarnings := earnings.Total()

	if c.Bundle.Tax.WithholdingEnabled &&
		c.componentAllowed(rule.CategoryTax, emp.ID, roles, func(r role.PayrollRole) bool { return r.WithholdingTaxEligible }) {
		// Taxable income is earnings net of the mandatory contributions.
		taxable := totalEarnings.
			Sub(deductions.GSISContribution).
			Sub(deductions.PhilHealthContribution).
			Sub(deductions.PagIBIGContribution)
		deductions.WithholdingTax = ComputeWithholdingTax(taxable, c.TaxBrackets).Round(2)
	}

	grossPay := totalEarnings
	totalDeductions := deductions.Total()

	return payroll.PayrollData{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName(),
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Department:   emp.Department,
		Position:     emp.Position,
		Status:       emp.Status,
		Earnings:     earnings,
		Deductions:   deductions,
		Attendance: payroll.AttendanceData{
			DaysPresent:    att.DaysPresent,
			HoursWorked:    att.HoursWorked,
			LateHours:      att.LateHours,
			UndertimeHours: att.UndertimeHours,
		},
		TotalEarnings:   totalEarnings,
		GrossPay:        grossPay,
		TotalDeductions: totalDeductions,
		NetPay:          grossPay.Sub(totalDeductions),
	}, nil
}

// resolveBaseSalary prefers the employee's own salary, then the highest
// base salary among active roles.
func (c *Calculator) resolveBaseSalary(emp employee.Employee, roles []role.PayrollRole) (decimal.Decimal, bool) {
	if emp.BaseSalary != nil && !emp.BaseSalary.IsZero() {
		return *emp.BaseSalary, true
	}

	best := decimal.Zero
	found := false
	for _, pr := range roles {
		if !pr.IsActive || pr.BaseSalary == nil {
			continue
		}
		if !found || pr.BaseSalary.GreaterThan(best) {
			best = *pr.BaseSalary
			found = true
		}
	}
	return best, found
}

// rates derives the daily and hourly rates from the working-hours policy,
// guarding against zero divisors with the statutory 22-day/8-hour fallback.
func (c *Calculator) rates(baseSalary decimal.Decimal) (daily, hourly decimal.Decimal) {
	days := c.Bundle.WorkingHours.WorkingDaysPerMonth
	if days.LessThanOrEqual(decimal.Zero) {
		days = decimal.NewFromInt(22)
	}
	hours := c.Bundle.WorkingHours.DailyHours
	if hours.LessThanOrEqual(decimal.Zero) {
		hours = decimal.NewFromInt(8)
	}

	daily = baseSalary.Div(days)
	hourly = daily.Div(hours)
	return daily, hourly
}

// overtimePay splits overtime into the first-two-hours band and the beyond
// band, each at its own multiplier.
func (c *Calculator) overtimePay(otHours, hourlyRate decimal.Decimal) decimal.Decimal {
	if otHours.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	firstBand := otHours
	if firstBand.GreaterThan(two) {
		firstBand = two
	}
	beyond := otHours.Sub(firstBand)

	pay := firstBand.Mul(hourlyRate).Mul(c.Bundle.Rates.OvertimeRate1)
	pay = pay.Add(beyond.Mul(hourlyRate).Mul(c.Bundle.Rates.OvertimeRate2))
	return pay.Round(2)
}

// holidayPay pays each holiday date worked at the holiday-type percentage.
// Hours on a date that matches no holiday earn nothing here; they were
// never part of regular hours either, so nothing is double-counted.
func (c *Calculator) holidayPay(work []employee.HolidayWork, hourlyRate decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, hw := range work {
		if hw.Hours.LessThanOrEqual(decimal.Zero) {
			continue
		}
		for _, h := range c.Holidays {
			if !h.OccursOn(hw.Date) {
				continue
			}
			rate := c.Bundle.Rates.RegularHolidayRate
			if h.Type == holiday.HolidaySpecial {
				rate = c.Bundle.Rates.SpecialHolidayRate
			}
			total = total.Add(hw.Hours.Mul(hourlyRate).Mul(rate.Div(oneHundred)))
			break
		}
	}
	return total.Round(2)
}

// attendanceDeduction converts a shortfall in hours into currency using the
// configured basis.
func (c *Calculator) attendanceDeduction(hours decimal.Decimal, basis setting.DeductionBasis, amount, hourlyRate decimal.Decimal) decimal.Decimal {
	if hours.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	switch basis {
	case setting.BasisPerMinute:
		return hours.Mul(sixty).Mul(amount)
	case setting.BasisPerHour:
		if amount.IsZero() {
			// Unconfigured per-hour deduction falls back to losing the
			// hourly rate itself.
			return hours.Mul(hourlyRate)
		}
		return hours.Mul(amount)
	case setting.BasisFixed:
		return amount
	}
	return decimal.Zero
}

// applyEarningRules folds the active additional-type rules into the
// earnings breakdown. Percentage rules apply against base salary.
func (c *Calculator) applyEarningRules(earnings *payroll.EarningsBreakdown, baseSalary decimal.Decimal, roles []role.PayrollRole, employeeID string) {
	for _, r := range c.Rules {
		if !r.IsActive || r.Type != rule.RuleTypeAdditional {
			continue
		}
		if !IsRuleApplicable(r, roles, employeeID).Applicable {
			continue
		}

		amount := c.ruleAmount(r, baseSalary)
		switch r.Category {
		case rule.CategoryAllowance:
			earnings.Allowances = earnings.Allowances.Add(amount)
		case rule.CategoryBonus:
			earnings.Bonuses = earnings.Bonuses.Add(amount)
		case rule.CategoryThirteenthMonth, rule.CategoryMandatoryBenefit:
			if amount.IsZero() {
				// Statutory accrual: one twelfth of base salary.
				amount = baseSalary.Div(twelve).Round(2)
			}
			earnings.ThirteenthMonthPay = earnings.ThirteenthMonthPay.Add(amount)
		case rule.CategoryLeaveBenefit, rule.CategoryLeave:
			earnings.ServiceIncentiveLeave = earnings.ServiceIncentiveLeave.Add(amount)
		case rule.CategoryOvertime, rule.CategoryHolidayPay, rule.CategoryDifferential:
			// Computed from attendance, not from the rule amount.
		default:
			earnings.Allowances = earnings.Allowances.Add(amount)
		}
	}
}

// applyDeductionRules folds the active deduction-type rules into the
// deduction breakdown.
func (c *Calculator) applyDeductionRules(deductions *payroll.DeductionBreakdown, baseSalary decimal.Decimal, roles []role.PayrollRole, employeeID string) {
	for _, r := range c.Rules {
		if !r.IsActive || r.Type != rule.RuleTypeDeduction {
			continue
		}
		if !IsRuleApplicable(r, roles, employeeID).Applicable {
			continue
		}

		amount := c.ruleAmount(r, baseSalary)
		switch r.Category {
		case rule.CategoryLoan:
			deductions.LoanDeductions = deductions.LoanDeductions.Add(amount)
		case rule.CategoryCitySavings:
			deductions.CitySavingsLoan = deductions.CitySavingsLoan.Add(amount)
		case rule.CategorySSS:
			deductions.SSSContribution = deductions.SSSContribution.Add(amount)
		case rule.CategoryMandatoryContribution:
			// Computed from the bracket tables, not from the rule amount.
		default:
			deductions.OtherDeductions = deductions.OtherDeductions.Add(amount)
		}
	}
}

func (c *Calculator) ruleAmount(r rule.PayrollRule, baseSalary decimal.Decimal) decimal.Decimal {
	if r.IsPercentage {
		return baseSalary.Mul(r.Amount).Div(oneHundred).Round(2)
	}
	return r.Amount.Round(2)
}

// componentAllowed gates one computed component. When the rule set carries
// a rule for the category its toggle and assignment decide whether the
// category runs at all; the component's own role flag still gates the line,
// so a shared category (mandatory_contribution covers three agencies) never
// admits an agency the roles do not grant.
func (c *Calculator) componentAllowed(category, employeeID string, roles []role.PayrollRole, flag func(role.PayrollRole) bool) bool {
	seen := false
	granted := false
	for _, r := range c.Rules {
		if r.Category != category {
			continue
		}
		seen = true
		if r.IsActive && IsRuleApplicable(r, roles, employeeID).Applicable {
			granted = true
			break
		}
	}
	if seen && !granted {
		return false
	}
	return anyRoleFlag(roles, flag)
}
