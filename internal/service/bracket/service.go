package bracket

import (
	"context"
	"log/slog"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/fixtures"
)

type BracketServiceImpl struct {
	bracketRepo bracket.BracketRepository
	defaults    fixtures.Provider
	logger      *slog.Logger
}

func NewBracketService(
	bracketRepo bracket.BracketRepository,
	defaults fixtures.Provider,
	logger *slog.Logger,
) bracket.BracketService {
	return &BracketServiceImpl{
		bracketRepo: bracketRepo,
		defaults:    defaults,
		logger:      logger,
	}
}

// ListContribution returns the agency's brackets in UI form, falling back
// to the statutory default table when none are persisted.
func (s *BracketServiceImpl) ListContribution(ctx context.Context, t bracket.ContributionType) ([]bracket.ContributionBracketResponse, error) {
	if !t.Valid() {
		return nil, bracket.ErrUnknownContributionType
	}

	rows, err := s.bracketRepo.ListContribution(ctx, t)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		rows = s.defaults.ContributionBrackets(t)
	}

	SortContributionRecords(rows)

	result := make([]bracket.ContributionBracketResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, mapContributionResponse(FromContributionRecord(r)))
	}
	return result, nil
}

// ReplaceContribution swaps the agency's whole bracket set. The repository
// deletes and recreates inside one transaction, so a failed write never
// leaves a partial set.
func (s *BracketServiceImpl) ReplaceContribution(ctx context.Context, req bracket.ReplaceContributionRequest) ([]bracket.ContributionBracketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records := make([]bracket.ContributionBracketRecord, 0, len(req.Brackets))
	for _, in := range req.Brackets {
		records = append(records, ToContributionRecord(bracket.ContributionBracket{
			Type:            req.Type,
			SalaryMin:       in.SalaryMin,
			SalaryMax:       in.SalaryMax,
			EmployeeRate:    in.EmployeeRate,
			EmployerRate:    in.EmployerRate,
			MinContribution: in.MinContribution,
			MaxContribution: in.MaxContribution,
			IsActive:        in.IsActive,
			Priority:        in.Priority,
		}))
	}

	saved, err := s.bracketRepo.ReplaceContribution(ctx, req.Type, records)
	if err != nil {
		s.logger.Error("contribution bracket replace failed", "type", req.Type, "error", err)
		return nil, err
	}

	SortContributionRecords(saved)

	result := make([]bracket.ContributionBracketResponse, 0, len(saved))
	for _, r := range saved {
		result = append(result, mapContributionResponse(FromContributionRecord(r)))
	}
	return result, nil
}

// ListTax returns the withholding schedule in UI form, falling back to the
// TRAIN-law defaults when none is persisted.
func (s *BracketServiceImpl) ListTax(ctx context.Context) ([]bracket.TaxBracketResponse, error) {
	rows, err := s.bracketRepo.ListTax(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		rows = s.defaults.TaxBrackets()
	}

	SortTaxRecords(rows)

	result := make([]bracket.TaxBracketResponse, 0, len(rows))
	for _, r := range rows {
		result = append(result, mapTaxResponse(FromTaxRecord(r)))
	}
	return result, nil
}

// ReplaceTax swaps the whole withholding schedule transactionally.
func (s *BracketServiceImpl) ReplaceTax(ctx context.Context, req bracket.ReplaceTaxRequest) ([]bracket.TaxBracketResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	records := make([]bracket.TaxBracketRecord, 0, len(req.Brackets))
	for _, in := range req.Brackets {
		records = append(records, ToTaxRecord(bracket.TaxBracket{
			SalaryMin:   in.SalaryMin,
			SalaryMax:   in.SalaryMax,
			Rate:        in.Rate,
			FixedAmount: in.FixedAmount,
			Description: in.Description,
		}))
	}

	saved, err := s.bracketRepo.ReplaceTax(ctx, records)
	if err != nil {
		s.logger.Error("tax bracket replace failed", "error", err)
		return nil, err
	}

	SortTaxRecords(saved)

	result := make([]bracket.TaxBracketResponse, 0, len(saved))
	for _, r := range saved {
		result = append(result, mapTaxResponse(FromTaxRecord(r)))
	}
	return result, nil
}

func mapContributionResponse(b bracket.ContributionBracket) bracket.ContributionBracketResponse {
	return bracket.ContributionBracketResponse{
		ID:              b.ID,
		Type:            string(b.Type),
		SalaryMin:       b.SalaryMin,
		SalaryMax:       b.SalaryMax,
		EmployeeRate:    b.EmployeeRate,
		EmployerRate:    b.EmployerRate,
		MinContribution: b.MinContribution,
		MaxContribution: b.MaxContribution,
		IsActive:        b.IsActive,
		Priority:        b.Priority,
	}
}

func mapTaxResponse(b bracket.TaxBracket) bracket.TaxBracketResponse {
	return bracket.TaxBracketResponse{
		ID:          b.ID,
		SalaryMin:   b.SalaryMin,
		SalaryMax:   b.SalaryMax,
		Rate:        b.Rate,
		FixedAmount: b.FixedAmount,
		Description: b.Description,
	}
}
