package setting

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// Section identifies one group of settings saved together.
type Section string

const (
	SectionWorkingHours  Section = "working_hours"
	SectionRates         Section = "rates"
	SectionContributions Section = "contributions"
	SectionTax           Section = "tax_brackets"
	SectionLeave         Section = "leave"
)

// ConfigurationResponse - the decoded bundle returned to the admin UI
type ConfigurationResponse struct {
	WorkingHours  WorkingHoursConfig   `json:"working_hours"`
	Rates         RateConfig           `json:"rates"`
	Contributions ContributionSettings `json:"contributions"`
	Tax           TaxConfig            `json:"tax"`
	Leave         LeaveConfig          `json:"leave"`
}

// SaveSectionRequest - one section's decoded values to persist. Exactly one
// of the config fields must be set, matching Section.
type SaveSectionRequest struct {
	Section       Section               `json:"section"`
	WorkingHours  *WorkingHoursConfig   `json:"working_hours,omitempty"`
	Rates         *RateConfig           `json:"rates,omitempty"`
	Contributions *ContributionSettings `json:"contributions,omitempty"`
	Tax           *TaxConfig            `json:"tax,omitempty"`
	Leave         *LeaveConfig          `json:"leave,omitempty"`
}

func (r *SaveSectionRequest) Validate() error {
	var errs validator.ValidationErrors

	switch r.Section {
	case SectionWorkingHours:
		if r.WorkingHours == nil {
			errs = append(errs, validator.ValidationError{Field: "working_hours", Message: "is required"})
		} else if r.WorkingHours.DailyHours.LessThanOrEqual(decimal.Zero) {
			errs = append(errs, validator.ValidationError{Field: "working_hours.daily_hours", Message: "must be positive"})
		}
	case SectionRates:
		if r.Rates == nil {
			errs = append(errs, validator.ValidationError{Field: "rates", Message: "is required"})
		}
	case SectionContributions:
		if r.Contributions == nil {
			errs = append(errs, validator.ValidationError{Field: "contributions", Message: "is required"})
		}
	case SectionTax:
		if r.Tax == nil {
			errs = append(errs, validator.ValidationError{Field: "tax", Message: "is required"})
		}
	case SectionLeave:
		if r.Leave == nil {
			errs = append(errs, validator.ValidationError{Field: "leave", Message: "is required"})
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "section", Message: "is not a known section"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SaveConfigResponse - outcome of a configuration save
type SaveConfigResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// ========== SCOPE DTOs ==========

type SaveScopeRequest struct {
	SettingKey      string  `json:"setting_key"`
	ApplicationType string  `json:"application_type"`
	TargetID        *string `json:"target_id,omitempty"`
	TargetName      *string `json:"target_name,omitempty"`
	Priority        int     `json:"priority"`
}

func (r *SaveScopeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SettingKey) {
		errs = append(errs, validator.ValidationError{Field: "setting_key", Message: "is required"})
	}

	switch ApplicationType(r.ApplicationType) {
	case ApplyToAll:
		// No target needed.
	case ApplyToDepartment, ApplyToIndividual, ApplyToStatus, ApplyToRole, ApplyToPosition:
		if (r.TargetID == nil || validator.IsEmpty(*r.TargetID)) &&
			(r.TargetName == nil || validator.IsEmpty(*r.TargetName)) {
			return ErrScopeTargetRequired
		}
	default:
		errs = append(errs, validator.ValidationError{Field: "application_type", Message: "is not a known application type"})
	}

	if r.Priority < 0 {
		errs = append(errs, validator.ValidationError{Field: "priority", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScopeResponse struct {
	ID              string  `json:"id"`
	SettingKey      string  `json:"setting_key"`
	ApplicationType string  `json:"application_type"`
	TargetID        *string `json:"target_id,omitempty"`
	TargetName      *string `json:"target_name,omitempty"`
	Priority        int     `json:"priority"`
	IsActive        bool    `json:"is_active"`
}
