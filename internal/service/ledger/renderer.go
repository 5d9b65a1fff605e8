package ledger

import (
	"sort"
	"strconv"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/ledger"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Render lays one set of payroll lines out as a print-ready report. Rows
// are always collate-sorted by last name then first name, so the same
// lines render in the same order no matter where they came from.
func Render(lines []payroll.PayrollData, period payroll.Period, template ledger.TemplateType, statusFilter *string) (ledger.TabularReport, error) {
	if !template.Valid() {
		return ledger.TabularReport{}, ledger.ErrUnknownTemplate
	}

	filtered := make([]payroll.PayrollData, 0, len(lines))
	for _, line := range lines {
		if statusFilter != nil && *statusFilter != "" && line.Status != *statusFilter {
			continue
		}
		filtered = append(filtered, line)
	}
	sortLines(filtered)

	report := ledger.TabularReport{
		Title:       reportTitle(template),
		PeriodStart: period.Start,
		PeriodEnd:   period.End,
		Template:    template,
	}

	switch template {
	case ledger.TemplateTax:
		report.Tables = []ledger.ReportTable{taxTable(filtered)}
	case ledger.TemplateDepartment:
		report.Tables = []ledger.ReportTable{departmentTable(filtered)}
	default:
		report.Tables = []ledger.ReportTable{
			compensationTable(filtered),
			deductionTable(filtered),
		}
	}

	html, err := renderHTML(report)
	if err != nil {
		return ledger.TabularReport{}, err
	}
	report.HTML = html

	return report, nil
}

// sortLines orders by last name then first name using English collation,
// so "dela Cruz" and "Dela Cruz" sort together.
func sortLines(lines []payroll.PayrollData) {
	c := collate.New(language.English, collate.IgnoreCase)
	sort.SliceStable(lines, func(i, j int) bool {
		if cmp := c.CompareString(lines[i].LastName, lines[j].LastName); cmp != 0 {
			return cmp < 0
		}
		return c.CompareString(lines[i].FirstName, lines[j].FirstName) < 0
	})
}

func reportTitle(template ledger.TemplateType) string {
	switch template {
	case ledger.TemplateTax:
		return "Withholding Tax Summary"
	case ledger.TemplateDepartment:
		return "Department Payroll Summary"
	}
	return "Payroll Ledger"
}

func compensationTable(lines []payroll.PayrollData) ledger.ReportTable {
	t := ledger.ReportTable{
		Caption: "Compensation",
		Columns: []string{
			"No.", "Employee", "Position",
			"Regular Pay", "Overtime Pay", "Holiday Pay",
			"Allowances", "Bonuses", "13th Month Pay", "Leave Benefits",
			"Gross Pay",
		},
	}
	for i, line := range lines {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			line.EmployeeName,
			line.Position,
			FormatAmount(line.Earnings.RegularPay),
			FormatAmount(line.Earnings.OvertimePay),
			FormatAmount(line.Earnings.HolidayPay),
			FormatAmount(line.Earnings.Allowances),
			FormatAmount(line.Earnings.Bonuses),
			FormatAmount(line.Earnings.ThirteenthMonthPay),
			FormatAmount(line.Earnings.ServiceIncentiveLeave),
			FormatAmount(line.GrossPay),
		})
	}
	return t
}

func deductionTable(lines []payroll.PayrollData) ledger.ReportTable {
	t := ledger.ReportTable{
		Caption: "Deductions",
		Columns: []string{
			"No.", "Employee",
			"Withholding Tax", "GSIS", "PhilHealth", "Pag-IBIG",
			"Late/Undertime", "Loans", "City Savings", "SSS", "Other",
			"Total Deductions", "Net Pay",
		},
	}
	for i, line := range lines {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			line.EmployeeName,
			FormatAmount(line.Deductions.WithholdingTax),
			FormatAmount(line.Deductions.GSISContribution),
			FormatAmount(line.Deductions.PhilHealthContribution),
			FormatAmount(line.Deductions.PagIBIGContribution),
			FormatAmount(line.Deductions.LateDeductions),
			FormatAmount(line.Deductions.LoanDeductions),
			FormatAmount(line.Deductions.CitySavingsLoan),
			FormatAmount(line.Deductions.SSSContribution),
			FormatAmount(line.Deductions.OtherDeductions),
			FormatAmount(line.TotalDeductions),
			FormatAmount(line.NetPay),
		})
	}
	return t
}

func taxTable(lines []payroll.PayrollData) ledger.ReportTable {
	t := ledger.ReportTable{
		Caption: "Withholding Tax",
		Columns: []string{
			"No.", "Employee", "Position", "Gross Pay",
			"GSIS", "PhilHealth", "Pag-IBIG",
			"Withholding Tax", "Net Pay",
		},
	}
	for i, line := range lines {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			line.EmployeeName,
			line.Position,
			FormatAmount(line.GrossPay),
			FormatAmount(line.Deductions.GSISContribution),
			FormatAmount(line.Deductions.PhilHealthContribution),
			FormatAmount(line.Deductions.PagIBIGContribution),
			FormatAmount(line.Deductions.WithholdingTax),
			FormatAmount(line.NetPay),
		})
	}
	return t
}

func departmentTable(lines []payroll.PayrollData) ledger.ReportTable {
	t := ledger.ReportTable{
		Caption: "Per-Employee Summary",
		Columns: []string{
			"No.", "Employee", "Department", "Status",
			"Gross Pay", "Total Deductions", "Net Pay",
		},
	}
	for i, line := range lines {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(i + 1),
			line.EmployeeName,
			line.Department,
			line.Status,
			FormatAmount(line.GrossPay),
			FormatAmount(line.TotalDeductions),
			FormatAmount(line.NetPay),
		})
	}
	return t
}
