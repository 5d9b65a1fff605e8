package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/employee"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/holiday"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/role"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/setting"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/fixtures"
	bracketsvc "github.com/rottnpotato/BISUpayroll-sub000/internal/service/bracket"
	settingsvc "github.com/rottnpotato/BISUpayroll-sub000/internal/service/setting"
)

type PayrollServiceImpl struct {
	settingRepo  setting.SettingRepository
	bracketRepo  bracket.BracketRepository
	roleRepo     role.RoleRepository
	ruleRepo     rule.RuleRepository
	holidayRepo  holiday.HolidayRepository
	employeeRepo employee.EmployeeRepository
	defaults     fixtures.Provider
	logger       *slog.Logger
}

func NewPayrollService(
	settingRepo setting.SettingRepository,
	bracketRepo bracket.BracketRepository,
	roleRepo role.RoleRepository,
	ruleRepo rule.RuleRepository,
	holidayRepo holiday.HolidayRepository,
	employeeRepo employee.EmployeeRepository,
	defaults fixtures.Provider,
	logger *slog.Logger,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		settingRepo:  settingRepo,
		bracketRepo:  bracketRepo,
		roleRepo:     roleRepo,
		ruleRepo:     ruleRepo,
		holidayRepo:  holidayRepo,
		employeeRepo: employeeRepo,
		defaults:     defaults,
		logger:       logger,
	}
}

// GeneratePayroll computes one pay line per matched employee. Nothing is
// persisted; the caller decides whether to save the result as a ledger.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req *payroll.GeneratePayrollRequest) (*payroll.GeneratePayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	period := req.MustPeriod()

	employees, err := s.loadEmployees(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, payroll.ErrNoEmployees
	}

	ids := make([]string, 0, len(employees))
	for _, emp := range employees {
		ids = append(ids, emp.ID)
	}

	summaries, err := s.employeeRepo.GetAttendanceSummaries(ctx, period.Start, period.End, ids)
	if err != nil {
		return nil, fmt.Errorf("load attendance: %w", err)
	}
	if len(summaries) == 0 {
		return nil, payroll.ErrNoAttendance
	}
	attendance := make(map[string]employee.AttendanceSummary, len(summaries))
	for _, sum := range summaries {
		attendance[sum.EmployeeID] = sum
	}

	rolesByUser, err := s.roleRepo.ListByUsers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load payroll roles: %w", err)
	}

	rows, err := s.settingRepo.ListByCategory(ctx, setting.CategoryPayroll)
	if err != nil {
		return nil, fmt.Errorf("load payroll settings: %w", err)
	}
	scopes, err := s.settingRepo.ListActiveScopes(ctx)
	if err != nil {
		return nil, fmt.Errorf("load configuration scopes: %w", err)
	}
	scopesByKey := groupScopesByKey(scopes)

	taxBrackets, err := s.loadTaxBrackets(ctx)
	if err != nil {
		return nil, err
	}
	contribution, err := s.loadContributionBrackets(ctx)
	if err != nil {
		return nil, err
	}

	rules, err := s.ruleRepo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("load payroll rules: %w", err)
	}
	if len(rules) == 0 {
		rules = s.defaults.Rules()
	}

	holidays, err := s.holidayRepo.ListForRange(ctx, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("load holidays: %w", err)
	}
	if len(holidays) == 0 {
		holidays = s.defaults.Holidays()
	}

	lines := make([]payroll.PayrollData, 0, len(employees))
	for _, emp := range employees {
		att, ok := attendance[emp.ID]
		if !ok {
			// No attendance in the period means no line, not a zero line.
			continue
		}
		roles := rolesByUser[emp.ID]

		calc := Calculator{
			Bundle:       s.bundleFor(emp, roles, rows, scopesByKey),
			TaxBrackets:  taxBrackets,
			Contribution: contribution,
			Holidays:     holidays,
			Rules:        rules,
		}

		line, err := calc.Compute(emp, roles, att)
		if err != nil {
			if errors.Is(err, payroll.ErrMissingBaseSalary) {
				s.logger.Warn("skipping employee without base salary",
					slog.String("employee_id", emp.ID),
					slog.String("employee_code", emp.EmployeeCode))
				continue
			}
			return nil, fmt.Errorf("compute payroll for %s: %w", emp.ID, err)
		}
		lines = append(lines, line)
	}

	return &payroll.GeneratePayrollResponse{Period: period, Lines: lines}, nil
}

func (s *PayrollServiceImpl) loadEmployees(ctx context.Context, req *payroll.GeneratePayrollRequest) ([]employee.Employee, error) {
	if len(req.EmployeeIDs) > 0 {
		employees := make([]employee.Employee, 0, len(req.EmployeeIDs))
		for _, id := range req.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				return nil, fmt.Errorf("load employee %s: %w", id, err)
			}
			if emp.IsActive {
				employees = append(employees, emp)
			}
		}
		return employees, nil
	}

	if req.EmploymentStatus != nil && *req.EmploymentStatus != "" {
		employees, err := s.employeeRepo.ListActiveByStatus(ctx, *req.EmploymentStatus)
		if err != nil {
			return nil, fmt.Errorf("load employees by status: %w", err)
		}
		return employees, nil
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active employees: %w", err)
	}
	return employees, nil
}

func (s *PayrollServiceImpl) loadTaxBrackets(ctx context.Context) ([]bracket.TaxBracketRecord, error) {
	rows, err := s.bracketRepo.ListTax(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tax brackets: %w", err)
	}
	if len(rows) == 0 {
		rows = s.defaults.TaxBrackets()
	}
	bracketsvc.SortTaxRecords(rows)
	return rows, nil
}

func (s *PayrollServiceImpl) loadContributionBrackets(ctx context.Context) (map[bracket.ContributionType][]bracket.ContributionBracketRecord, error) {
	out := make(map[bracket.ContributionType][]bracket.ContributionBracketRecord, 3)
	for _, t := range bracket.ContributionTypes() {
		rows, err := s.bracketRepo.ListContribution(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("load %s brackets: %w", t, err)
		}
		if len(rows) == 0 {
			rows = s.defaults.ContributionBrackets(t)
		}
		bracketsvc.SortContributionRecords(rows)
		out[t] = rows
	}
	return out, nil
}

// bundleFor builds the effective configuration for one employee. A stored
// setting that carries scopes only applies when one of them resolves to the
// employee; otherwise that key falls back to its default, same as if it had
// never been saved.
func (s *PayrollServiceImpl) bundleFor(
	emp employee.Employee,
	roles []role.PayrollRole,
	rows []setting.RawSetting,
	scopesByKey map[string][]setting.ConfigurationScope,
) setting.ConfigBundle {
	if len(scopesByKey) == 0 {
		return settingsvc.DecodeBundle(rows, s.defaults.Bundle())
	}

	roleIDs := make([]string, 0, len(roles))
	for _, pr := range roles {
		roleIDs = append(roleIDs, pr.ID)
	}

	effective := make([]setting.RawSetting, 0, len(rows))
	for _, row := range rows {
		candidates, scoped := scopesByKey[row.Key]
		if scoped {
			resolved := settingsvc.ResolveScope(candidates, emp, roleIDs)
			if resolved.ID == "" {
				continue
			}
		}
		effective = append(effective, row)
	}
	return settingsvc.DecodeBundle(effective, s.defaults.Bundle())
}

func groupScopesByKey(scopes []setting.ConfigurationScope) map[string][]setting.ConfigurationScope {
	if len(scopes) == 0 {
		return nil
	}
	out := make(map[string][]setting.ConfigurationScope, len(scopes))
	for _, sc := range scopes {
		out[sc.SettingKey] = append(out[sc.SettingKey], sc)
	}
	return out
}
