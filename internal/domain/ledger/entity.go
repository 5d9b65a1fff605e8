package ledger

import (
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
)

// TemplateType enum - the fixed report layouts
type TemplateType string

const (
	TemplateStandard   TemplateType = "standard"
	TemplateDepartment TemplateType = "department"
	TemplateTax        TemplateType = "tax"
	TemplateCustom     TemplateType = "custom" // renders the standard layout
)

func (t TemplateType) Valid() bool {
	switch t {
	case TemplateStandard, TemplateDepartment, TemplateTax, TemplateCustom:
		return true
	}
	return false
}

// TabularReport - a rendered, print-ready ledger. Tables carries one table
// for the tax and department templates and two (compensation, deductions)
// for the standard template, in matching row order.
type TabularReport struct {
	Title       string         `json:"title"`
	PeriodStart time.Time      `json:"period_start"`
	PeriodEnd   time.Time      `json:"period_end"`
	Template    TemplateType   `json:"template"`
	Tables      []ReportTable  `json:"tables"`
	HTML        string         `json:"html"`
}

// ReportTable - one fixed-column table within a report
type ReportTable struct {
	Caption string     `json:"caption"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// SavedLedger - a persisted ledger document; Employees round-trips through
// JSON back into []payroll.PayrollData.
type SavedLedger struct {
	ID           string
	Title        string
	TemplateType TemplateType
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Employees    []payroll.PayrollData
	CreatedAt    time.Time
}
