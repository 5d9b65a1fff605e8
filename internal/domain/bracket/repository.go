package bracket

import "context"

// BracketRepository defines data access for contribution and tax brackets.
// Replace methods are wholesale: the previous set is deleted and the new one
// inserted inside a single transaction, so a failed write never leaves a
// partial set.
type BracketRepository interface {
	ListContribution(ctx context.Context, t ContributionType) ([]ContributionBracketRecord, error)
	ReplaceContribution(ctx context.Context, t ContributionType, rows []ContributionBracketRecord) ([]ContributionBracketRecord, error)

	ListTax(ctx context.Context) ([]TaxBracketRecord, error)
	ReplaceTax(ctx context.Context, rows []TaxBracketRecord) ([]TaxBracketRecord, error)
}

// BracketService is the admin-facing bracket surface. Listing falls back to
// the statutory defaults when no rows are persisted.
type BracketService interface {
	ListContribution(ctx context.Context, t ContributionType) ([]ContributionBracketResponse, error)
	ReplaceContribution(ctx context.Context, req ReplaceContributionRequest) ([]ContributionBracketResponse, error)

	ListTax(ctx context.Context) ([]TaxBracketResponse, error)
	ReplaceTax(ctx context.Context, req ReplaceTaxRequest) ([]TaxBracketResponse, error)
}
