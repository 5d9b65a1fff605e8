package setting

import (
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/employee"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
)

// ScopeMatches reports whether an active scope's application type matches
// the given employee. ALL matches everyone. Non-ALL scopes match on either
// TargetID or TargetName, since the admin UI records whichever it has.
func ScopeMatches(s setting.ConfigurationScope, emp employee.Employee, roleIDs []string) bool {
	if !s.IsActive {
		return false
	}

	switch s.ApplicationType {
	case setting.ApplyToAll:
		return true
	case setting.ApplyToDepartment:
		return targetEquals(s, emp.Department)
	case setting.ApplyToIndividual:
		return targetEquals(s, emp.ID)
	case setting.ApplyToStatus:
		return targetEquals(s, emp.Status)
	case setting.ApplyToPosition:
		return targetEquals(s, emp.Position)
	case setting.ApplyToRole:
		for _, id := range roleIDs {
			if targetEquals(s, id) {
				return true
			}
		}
	}
	return false
}

func targetEquals(s setting.ConfigurationScope, value string) bool {
	if s.TargetID != nil && *s.TargetID == value {
		return true
	}
	if s.TargetName != nil && *s.TargetName == value {
		return true
	}
	return false
}

// ResolveScope selects the authoritative scope for an employee from the
// candidate set. The highest priority wins; ties between non-ALL scopes are
// broken by most-recently-created (CreatedAt, then ID, both descending) so
// resolution never depends on datastore return order. When nothing more
// specific matches, the ALL baseline (implicit priority 0) is returned; a
// zero-value ALL scope is synthesized if the candidates carry none.
func ResolveScope(candidates []setting.ConfigurationScope, emp employee.Employee, roleIDs []string) setting.ConfigurationScope {
	best := setting.ConfigurationScope{ApplicationType: setting.ApplyToAll}
	bestPriority := -1

	for _, c := range candidates {
		if !ScopeMatches(c, emp, roleIDs) {
			continue
		}
		effective := c.Priority
		if c.ApplicationType == setting.ApplyToAll {
			effective = 0
		}

		switch {
		case effective > bestPriority:
			best = c
			bestPriority = effective
		case effective == bestPriority && moreRecent(c, best):
			best = c
		}
	}

	return best
}

func moreRecent(a, b setting.ConfigurationScope) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}
