package setting

import (
	"time"

	"github.com/shopspring/decimal"
)

// DataType enum for persisted setting values
type DataType string

const (
	DataTypeString  DataType = "STRING"
	DataTypeNumber  DataType = "NUMBER"
	DataTypeDecimal DataType = "DECIMAL"
	DataTypeBoolean DataType = "BOOLEAN"
	DataTypeJSON    DataType = "JSON"
)

// CategoryPayroll is the category every payroll setting row is stored under.
const CategoryPayroll = "payroll"

// RawSetting - one persisted key/value configuration row
type RawSetting struct {
	ID        string
	Key       string
	Value     string
	DataType  DataType
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DeductionBasis enum for late/undertime deduction computation
type DeductionBasis string

const (
	BasisPerMinute DeductionBasis = "per_minute"
	BasisPerHour   DeductionBasis = "per_hour"
	BasisFixed     DeductionBasis = "fixed"
)

// WorkingHoursConfig - standard working time policy
type WorkingHoursConfig struct {
	DailyHours          decimal.Decimal
	WorkingDaysPerMonth decimal.Decimal
	WorkingDaysPerWeek  decimal.Decimal
}

// RateConfig - overtime/holiday multipliers and attendance deduction policy
type RateConfig struct {
	OvertimeRate1            decimal.Decimal // first two overtime hours
	OvertimeRate2            decimal.Decimal // beyond two hours
	RegularHolidayRate       decimal.Decimal // percentage, e.g. 200
	SpecialHolidayRate       decimal.Decimal // percentage, e.g. 130
	LateDeductionBasis       DeductionBasis
	LateDeductionAmount      decimal.Decimal
	UndertimeDeductionBasis  DeductionBasis
	UndertimeDeductionAmount decimal.Decimal
}

// ContributionConfig - per-agency contribution rates (percentages 0-100)
type ContributionConfig struct {
	Enabled      bool
	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal
}

// ContributionSettings groups the three mandatory agencies.
type ContributionSettings struct {
	GSIS       ContributionConfig
	PhilHealth ContributionConfig
	PagIBIG    ContributionConfig
}

// TaxConfig - withholding toggle
type TaxConfig struct {
	WithholdingEnabled bool
}

// LeaveConfig - annual leave credit entitlements in days
type LeaveConfig struct {
	VacationDays         decimal.Decimal
	SickDays             decimal.Decimal
	ServiceIncentiveDays decimal.Decimal
	MaternityDays        decimal.Decimal
	PaternityDays        decimal.Decimal
}

// ConfigBundle - the fully decoded payroll configuration. Decoding always
// yields a complete bundle; absent or unparsable rows fall back to defaults.
type ConfigBundle struct {
	WorkingHours  WorkingHoursConfig
	Rates         RateConfig
	Contributions ContributionSettings
	Tax           TaxConfig
	Leave         LeaveConfig
}

// ApplicationType enum for configuration scopes
type ApplicationType string

const (
	ApplyToAll        ApplicationType = "ALL"
	ApplyToDepartment ApplicationType = "DEPARTMENT"
	ApplyToIndividual ApplicationType = "INDIVIDUAL"
	ApplyToStatus     ApplicationType = "STATUS"
	ApplyToRole       ApplicationType = "ROLE"
	ApplyToPosition   ApplicationType = "POSITION"
)

// ConfigurationScope - an overlay declaration restricting a setting to a
// subset of employees. ALL is the universal fallback with implicit
// priority 0.
type ConfigurationScope struct {
	ID              string
	SettingKey      string
	ApplicationType ApplicationType
	TargetID        *string
	TargetName      *string
	Priority        int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
