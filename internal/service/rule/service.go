package rule

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/rule"
)

type RuleServiceImpl struct {
	ruleRepo rule.RuleRepository
	logger   *slog.Logger
}

func NewRuleService(ruleRepo rule.RuleRepository, logger *slog.Logger) rule.RuleService {
	return &RuleServiceImpl{
		ruleRepo: ruleRepo,
		logger:   logger,
	}
}

func (s *RuleServiceImpl) Create(ctx context.Context, req rule.CreateRuleRequest) (rule.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return rule.RuleResponse{}, err
	}

	created, err := s.ruleRepo.Create(ctx, rule.PayrollRule{
		Name:            req.Name,
		Description:     req.Description,
		Type:            rule.RuleType(req.Type),
		Category:        req.Category,
		Amount:          req.Amount,
		IsPercentage:    req.IsPercentage,
		ApplyToAll:      req.ApplyToAll,
		IsActive:        true,
		AssignedUserIDs: req.AssignedUserIDs,
	})
	if err != nil {
		return rule.RuleResponse{}, fmt.Errorf("create payroll rule: %w", err)
	}

	s.logger.Info("payroll rule created",
		slog.String("rule_id", created.ID),
		slog.String("name", created.Name),
		slog.String("category", created.Category))

	return mapRuleResponse(created), nil
}

func (s *RuleServiceImpl) Get(ctx context.Context, id string) (rule.RuleResponse, error) {
	r, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		return rule.RuleResponse{}, err
	}
	return mapRuleResponse(r), nil
}

func (s *RuleServiceImpl) List(ctx context.Context, activeOnly bool) ([]rule.RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list payroll rules: %w", err)
	}

	out := make([]rule.RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, mapRuleResponse(r))
	}
	return out, nil
}

func (s *RuleServiceImpl) Update(ctx context.Context, req rule.UpdateRuleRequest) (rule.RuleResponse, error) {
	if err := s.ruleRepo.Update(ctx, req); err != nil {
		return rule.RuleResponse{}, err
	}

	updated, err := s.ruleRepo.GetByID(ctx, req.ID)
	if err != nil {
		return rule.RuleResponse{}, err
	}
	return mapRuleResponse(updated), nil
}

// Toggle flips a rule on or off without touching anything else about it.
func (s *RuleServiceImpl) Toggle(ctx context.Context, id string, active bool) error {
	if err := s.ruleRepo.Update(ctx, rule.UpdateRuleRequest{ID: id, IsActive: &active}); err != nil {
		return err
	}

	s.logger.Info("payroll rule toggled",
		slog.String("rule_id", id),
		slog.Bool("active", active))
	return nil
}

func (s *RuleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ruleRepo.Delete(ctx, id)
}

func mapRuleResponse(r rule.PayrollRule) rule.RuleResponse {
	return rule.RuleResponse{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		Type:            string(r.Type),
		Category:        r.Category,
		Amount:          r.Amount,
		IsPercentage:    r.IsPercentage,
		ApplyToAll:      r.ApplyToAll,
		IsActive:        r.IsActive,
		AssignedUserIDs: r.AssignedUserIDs,
	}
}
