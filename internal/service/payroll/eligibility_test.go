package payroll

import (
	"testing"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
	"github.com/stretchr/testify/assert"
)

func overtimeRule(applyToAll bool, assigned ...string) rule.PayrollRule {
	return rule.PayrollRule{
		Name:            "Overtime Premium",
		Category:        rule.CategoryOvertime,
		ApplyToAll:      applyToAll,
		AssignedUserIDs: assigned,
		IsActive:        true,
	}
}

func TestIsRuleApplicable_AllowListExcludesUnassignedEmployee(t *testing.T) {
	t.Parallel()

	r := overtimeRule(false, "emp-1", "emp-2")
	roles := []role.PayrollRole{{Name: "Faculty", IsActive: true, OvertimeEligible: true}}

	decision := IsRuleApplicable(r, roles, "emp-3")

	assert.False(t, decision.Applicable)
	assert.Contains(t, decision.Reason, "not assigned")
}

func TestIsRuleApplicable_AllowListAdmitsAssignedEmployee(t *testing.T) {
	t.Parallel()

	r := overtimeRule(false, "emp-1")
	roles := []role.PayrollRole{{Name: "Faculty", IsActive: true, OvertimeEligible: true}}

	decision := IsRuleApplicable(r, roles, "emp-1")

	assert.True(t, decision.Applicable)
}

func TestIsRuleApplicable_NoRolesDefaultsToEligible(t *testing.T) {
	t.Parallel()

	decision := IsRuleApplicable(overtimeRule(true), nil, "emp-1")

	assert.True(t, decision.Applicable)
	assert.Equal(t, "no payroll roles assigned - default eligibility applies", decision.Reason)
}

func TestIsRuleApplicable_AllRolesInactiveDenies(t *testing.T) {
	t.Parallel()

	roles := []role.PayrollRole{
		{Name: "Faculty", IsActive: false, OvertimeEligible: true},
		{Name: "Staff", IsActive: false, OvertimeEligible: true},
	}

	decision := IsRuleApplicable(overtimeRule(true), roles, "emp-1")

	assert.False(t, decision.Applicable)
	assert.Equal(t, "all assigned payroll roles are inactive", decision.Reason)
}

func TestIsRuleApplicable_OneGrantAcrossActiveRolesIsEnough(t *testing.T) {
	t.Parallel()

	roles := []role.PayrollRole{
		{Name: "Staff", IsActive: true, OvertimeEligible: false},
		{Name: "Faculty", IsActive: true, OvertimeEligible: true},
	}

	decision := IsRuleApplicable(overtimeRule(true), roles, "emp-1")

	assert.True(t, decision.Applicable)
	// The denying role still shows up as a restriction for the audit trail.
	assert.Len(t, decision.Restrictions, 1)
	assert.Contains(t, decision.Restrictions[0], "Staff")
}

func TestIsRuleApplicable_NoActiveRoleGrantsDenies(t *testing.T) {
	t.Parallel()

	roles := []role.PayrollRole{
		{Name: "Staff", IsActive: true, OvertimeEligible: false},
		{Name: "Inactive Faculty", IsActive: false, OvertimeEligible: true},
	}

	decision := IsRuleApplicable(overtimeRule(true), roles, "emp-1")

	assert.False(t, decision.Applicable)
	assert.Len(t, decision.Restrictions, 1)
}

func TestIsRuleApplicable_CategoryFlagMapping(t *testing.T) {
	t.Parallel()

	pr := role.PayrollRole{
		Name:                      "Mixed",
		IsActive:                  true,
		NightDifferentialEligible: true,
		HolidayPayEligible:        true,
		PhilHealthEligible:        true,
		WithholdingTaxEligible:    false,
		ThirteenthMonthEligible:   false,
		LeaveEligible:             true,
	}
	roles := []role.PayrollRole{pr}

	tests := []struct {
		category string
		want     bool
	}{
		{rule.CategoryDifferential, true},
		{rule.CategoryHolidayPay, true},
		{rule.CategoryGSIS, false},
		{rule.CategoryPhilHealth, true},
		{rule.CategoryPagIBIG, false},
		{rule.CategoryMandatoryContribution, true}, // any of the three
		{rule.CategoryTax, false},
		{rule.CategoryThirteenthMonth, false},
		{rule.CategoryMandatoryBenefit, false},
		{rule.CategoryLeave, true},
		{rule.CategoryLeaveBenefit, true},
		{rule.CategoryAttendance, true}, // active role is the only gate
		{"something_new", true},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			t.Parallel()

			r := rule.PayrollRule{Name: "r", Category: tt.category, ApplyToAll: true, IsActive: true}
			decision := IsRuleApplicable(r, roles, "emp-1")
			assert.Equal(t, tt.want, decision.Applicable)
		})
	}
}

func TestAnyRoleFlag_EmptyRolesIsPermissive(t *testing.T) {
	t.Parallel()

	assert.True(t, anyRoleFlag(nil, func(pr role.PayrollRole) bool { return pr.OvertimeEligible }))
}

func TestAnyRoleFlag_IgnoresInactiveRoles(t *testing.T) {
	t.Parallel()

	roles := []role.PayrollRole{
		{IsActive: false, OvertimeEligible: true},
		{IsActive: true, OvertimeEligible: false},
	}

	assert.False(t, anyRoleFlag(roles, func(pr role.PayrollRole) bool { return pr.OvertimeEligible }))

	roles[1].OvertimeEligible = true
	assert.True(t, anyRoleFlag(roles, func(pr role.PayrollRole) bool { return pr.OvertimeEligible }))
}
