package setting

import (
	"testing"
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/employee"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func testEmployee() employee.Employee {
	return employee.Employee{
		ID:         "emp-1",
		FirstName:  "Juan",
		LastName:   "Dela Cruz",
		Department: "Registrar",
		Position:   "Clerk",
		Status:     "regular",
	}
}

func TestScopeMatches_InactiveNeverMatches(t *testing.T) {
	t.Parallel()

	s := setting.ConfigurationScope{
		ApplicationType: setting.ApplyToAll,
		IsActive:        false,
	}
	assert.False(t, ScopeMatches(s, testEmployee(), nil))
}

func TestScopeMatches_ByAttribute(t *testing.T) {
	t.Parallel()
	emp := testEmployee()

	tests := []struct {
		name  string
		scope setting.ConfigurationScope
		roles []string
		want  bool
	}{
		{
			name:  "all matches everyone",
			scope: setting.ConfigurationScope{ApplicationType: setting.ApplyToAll, IsActive: true},
			want:  true,
		},
		{
			name:  "department by name",
			scope: setting.ConfigurationScope{ApplicationType: setting.ApplyToDepartment, TargetName: strPtr("Registrar"), IsActive: true},
			want:  true,
		},
		{
			name:  "department mismatch",
			scope: setting.ConfigurationScope{ApplicationType: setting.ApplyToDepartment, TargetName: strPtr("Accounting"), IsActive: true},
			want:  false,
		},
		{
			name:  "individual by id",
			scope: setting.ConfigurationScope{ApplicationType: setting.ApplyToIndividual, TargetID: strPtr("emp-1"), IsActive: true},
			want:  true,
		},
		{
			name:  "status",
			scope: setting.ConfigurationScope{ApplicationType: setting.ApplyToStatus, TargetName: strPtr("regular"), IsActive: true},
			want:  true,
		},
		{
			name:  "position",
			scope: setting.ConfigurationScope{ApplicationType: setting.ApplyToPosition, TargetName: strPtr("Clerk"), IsActive: true},
			want:  true,
		},
		{
			name:  "role hit",
			scope: setting.ConfigurationScope{ApplicationType: setting.ApplyToRole, TargetID: strPtr("role-7"), IsActive: true},
			roles: []string{"role-3", "role-7"},
			want:  true,
		},
		{
			name:  "role miss",
			scope: setting.ConfigurationScope{ApplicationType: setting.ApplyToRole, TargetID: strPtr("role-7"), IsActive: true},
			roles: []string{"role-3"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScopeMatches(tt.scope, emp, tt.roles))
		})
	}
}

func TestResolveScope_HighestPriorityWins(t *testing.T) {
	t.Parallel()
	emp := testEmployee()

	candidates := []setting.ConfigurationScope{
		{ID: "s-all", ApplicationType: setting.ApplyToAll, Priority: 0, IsActive: true},
		{ID: "s-dept", ApplicationType: setting.ApplyToDepartment, TargetName: strPtr("Registrar"), Priority: 5, IsActive: true},
		{ID: "s-ind", ApplicationType: setting.ApplyToIndividual, TargetID: strPtr("emp-1"), Priority: 10, IsActive: true},
	}

	resolved := ResolveScope(candidates, emp, nil)
	assert.Equal(t, "s-ind", resolved.ID)
}

func TestResolveScope_TieBreaksByMostRecentlyCreated(t *testing.T) {
	t.Parallel()
	emp := testEmployee()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	candidates := []setting.ConfigurationScope{
		{ID: "older", ApplicationType: setting.ApplyToDepartment, TargetName: strPtr("Registrar"), Priority: 5, IsActive: true, CreatedAt: base},
		{ID: "newer", ApplicationType: setting.ApplyToDepartment, TargetName: strPtr("Registrar"), Priority: 5, IsActive: true, CreatedAt: base.Add(time.Hour)},
	}

	resolved := ResolveScope(candidates, emp, nil)
	assert.Equal(t, "newer", resolved.ID)

	// The outcome must not depend on candidate order.
	candidates[0], candidates[1] = candidates[1], candidates[0]
	resolved = ResolveScope(candidates, emp, nil)
	assert.Equal(t, "newer", resolved.ID)
}

func TestResolveScope_EqualTimestampsFallBackToID(t *testing.T) {
	t.Parallel()
	emp := testEmployee()
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	candidates := []setting.ConfigurationScope{
		{ID: "aaa", ApplicationType: setting.ApplyToStatus, TargetName: strPtr("regular"), Priority: 3, IsActive: true, CreatedAt: created},
		{ID: "zzz", ApplicationType: setting.ApplyToStatus, TargetName: strPtr("regular"), Priority: 3, IsActive: true, CreatedAt: created},
	}

	resolved := ResolveScope(candidates, emp, nil)
	assert.Equal(t, "zzz", resolved.ID)
}

func TestResolveScope_AllIsImplicitPriorityZero(t *testing.T) {
	t.Parallel()
	emp := testEmployee()

	// A misconfigured ALL scope with a high stored priority must not beat a
	// specific match.
	candidates := []setting.ConfigurationScope{
		{ID: "s-all", ApplicationType: setting.ApplyToAll, Priority: 99, IsActive: true},
		{ID: "s-dept", ApplicationType: setting.ApplyToDepartment, TargetName: strPtr("Registrar"), Priority: 1, IsActive: true},
	}

	resolved := ResolveScope(candidates, emp, nil)
	assert.Equal(t, "s-dept", resolved.ID)
}

func TestResolveScope_NoMatchReturnsSynthesizedAll(t *testing.T) {
	t.Parallel()
	emp := testEmployee()

	candidates := []setting.ConfigurationScope{
		{ID: "s-other", ApplicationType: setting.ApplyToDepartment, TargetName: strPtr("Accounting"), Priority: 5, IsActive: true},
	}

	resolved := ResolveScope(candidates, emp, nil)
	assert.Empty(t, resolved.ID)
	assert.Equal(t, setting.ApplyToAll, resolved.ApplicationType)
}

func TestResolveScope_DoesNotMutateCandidates(t *testing.T) {
	t.Parallel()
	emp := testEmployee()

	candidates := []setting.ConfigurationScope{
		{ID: "s-all", ApplicationType: setting.ApplyToAll, Priority: 42, IsActive: true},
	}

	_ = ResolveScope(candidates, emp, nil)
	assert.Equal(t, 42, candidates[0].Priority)
}
