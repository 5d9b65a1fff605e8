package rule

import "context"

type RuleRepository interface {
	Create(ctx context.Context, r PayrollRule) (PayrollRule, error)
	GetByID(ctx context.Context, id string) (PayrollRule, error)
	List(ctx context.Context, activeOnly bool) ([]PayrollRule, error)
	Update(ctx context.Context, req UpdateRuleRequest) error
	Delete(ctx context.Context, id string) error
}

type RuleService interface {
	Create(ctx context.Context, req CreateRuleRequest) (RuleResponse, error)
	Get(ctx context.Context, id string) (RuleResponse, error)
	List(ctx context.Context, activeOnly bool) ([]RuleResponse, error)
	Update(ctx context.Context, req UpdateRuleRequest) (RuleResponse, error)
	Toggle(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}
