package payroll

import (
	"fmt"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
)

// RuleDecision explains whether and why a calculation rule applies to an
// employee. Restrictions lists every active role that denied the rule, even
// when another role granted it, so the decision stays auditable.
type RuleDecision struct {
	Applicable   bool     `json:"applicable"`
	Reason       string   `json:"reason"`
	Restrictions []string `json:"restrictions,omitempty"`
}

// IsRuleApplicable runs the eligibility decision table for one rule against
// an employee's assigned payroll roles. It never fails:
//
//  1. A rule with an explicit allow-list denies anyone not on it.
//  2. An employee with no roles at all gets the rule (permissive default,
//     intentional - see the reason string it emits).
//  3. An employee whose roles are all inactive gets nothing.
//  4. Otherwise eligibility is OR-combined across active roles: one grant
//     is enough.
//
// Unrecognized categories degrade to "is any role active."
func IsRuleApplicable(r rule.PayrollRule, roles []role.PayrollRole, employeeID string) RuleDecision {
	if !r.ApplyToAll {
		assigned := false
		for _, id := range r.AssignedUserIDs {
			if id == employeeID {
				assigned = true
				break
			}
		}
		if !assigned {
			return RuleDecision{
				Applicable: false,
				Reason:     fmt.Sprintf("rule %q is not assigned to this employee", r.Name),
			}
		}
	}

	if len(roles) == 0 {
		return RuleDecision{
			Applicable: true,
			Reason:     "no payroll roles assigned - default eligibility applies",
		}
	}

	var active []role.PayrollRole
	for _, pr := range roles {
		if pr.IsActive {
			active = append(active, pr)
		}
	}
	if len(active) == 0 {
		return RuleDecision{
			Applicable: false,
			Reason:     "all assigned payroll roles are inactive",
		}
	}

	granted := false
	var restrictions []string
	for _, pr := range active {
		if roleGrants(pr, r.Category) {
			granted = true
		} else {
			restrictions = append(restrictions, fmt.Sprintf("role %q does not allow %s", pr.Name, r.Category))
		}
	}

	if granted {
		return RuleDecision{
			Applicable:   true,
			Reason:       fmt.Sprintf("at least one active role allows %s", r.Category),
			Restrictions: restrictions,
		}
	}
	return RuleDecision{
		Applicable:   false,
		Reason:       fmt.Sprintf("no active role allows %s", r.Category),
		Restrictions: restrictions,
	}
}

// roleGrants maps a rule category onto the role's eligibility flags.
func roleGrants(pr role.PayrollRole, category string) bool {
	switch category {
	case rule.CategoryOvertime:
		return pr.OvertimeEligible
	case rule.CategoryDifferential:
		return pr.NightDifferentialEligible
	case rule.CategoryHolidayPay:
		return pr.HolidayPayEligible
	case rule.CategoryGSIS:
		return pr.GSISEligible
	case rule.CategoryPhilHealth:
		return pr.PhilHealthEligible
	case rule.CategoryPagIBIG:
		return pr.PagIBIGEligible
	case rule.CategoryMandatoryContribution:
		return pr.GSISEligible || pr.PhilHealthEligible || pr.PagIBIGEligible
	case rule.CategoryTax:
		return pr.WithholdingTaxEligible
	case rule.CategoryMandatoryBenefit, rule.CategoryThirteenthMonth:
		return pr.ThirteenthMonthEligible
	case rule.CategoryLeaveBenefit, rule.CategoryLeave:
		return pr.LeaveEligible
	default:
		// Includes "attendance" and any category added after this switch
		// was written: an active role is the only gate.
		return pr.IsActive
	}
}

// anyRoleFlag reports whether any role in the set is active and satisfies
// the flag accessor. Used by the calculator for per-component gating.
func anyRoleFlag(roles []role.PayrollRole, flag func(role.PayrollRole) bool) bool {
	if len(roles) == 0 {
		// Same permissive default as the rule gate.
		return true
	}
	for _, pr := range roles {
		if pr.IsActive && flag(pr) {
			return true
		}
	}
	return false
}
