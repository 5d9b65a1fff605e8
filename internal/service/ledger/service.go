package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/ledger"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
)

type LedgerServiceImpl struct {
	ledgerRepo ledger.LedgerRepository
	payrollSvc payroll.PayrollService
	logger     *slog.Logger
}

func NewLedgerService(
	ledgerRepo ledger.LedgerRepository,
	payrollSvc payroll.PayrollService,
	logger *slog.Logger,
) ledger.LedgerService {
	return &LedgerServiceImpl{
		ledgerRepo: ledgerRepo,
		payrollSvc: payrollSvc,
		logger:     logger,
	}
}

// Render computes fresh payroll lines for the requested period and lays
// them out with the requested template.
func (s *LedgerServiceImpl) Render(ctx context.Context, req ledger.RenderRequest) (ledger.TabularReport, error) {
	if err := req.Validate(); err != nil {
		return ledger.TabularReport{}, err
	}

	generated, err := s.payrollSvc.GeneratePayroll(ctx, &payroll.GeneratePayrollRequest{
		PeriodStart:      req.PeriodStart,
		PeriodEnd:        req.PeriodEnd,
		ReportType:       string(payroll.ReportCustom),
		EmploymentStatus: req.EmploymentStatus,
	})
	if err != nil {
		return ledger.TabularReport{}, err
	}

	return Render(generated.Lines, generated.Period, ledger.TemplateType(req.Template), req.EmploymentStatus)
}

// RenderDocument re-renders a previously exported ledger document without
// touching the datastore, preserving every stored amount.
func (s *LedgerServiceImpl) RenderDocument(ctx context.Context, blob []byte, template ledger.TemplateType) (ledger.TabularReport, error) {
	lines, period, err := ParseSavedLedger(blob)
	if err != nil {
		return ledger.TabularReport{}, err
	}
	return Render(lines, period, template, nil)
}

func (s *LedgerServiceImpl) SaveLedger(ctx context.Context, req ledger.SaveLedgerRequest) (ledger.SavedLedgerResponse, error) {
	if err := req.Validate(); err != nil {
		return ledger.SavedLedgerResponse{}, err
	}

	start, _ := validator.IsValidDate(req.PeriodStart)
	end, _ := validator.IsValidDate(req.PeriodEnd)

	saved, err := s.ledgerRepo.Save(ctx, ledger.SavedLedger{
		Title:        req.Title,
		TemplateType: ledger.TemplateType(req.Template),
		PeriodStart:  start,
		PeriodEnd:    end,
		Employees:    req.Employees,
	})
	if err != nil {
		return ledger.SavedLedgerResponse{}, fmt.Errorf("save ledger: %w", err)
	}

	s.logger.Info("ledger saved",
		slog.String("ledger_id", saved.ID),
		slog.String("template", string(saved.TemplateType)),
		slog.Int("employees", len(saved.Employees)))

	return mapSavedResponse(saved), nil
}

func (s *LedgerServiceImpl) List(ctx context.Context) ([]ledger.SavedLedgerResponse, error) {
	ledgers, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ledgers: %w", err)
	}

	out := make([]ledger.SavedLedgerResponse, 0, len(ledgers))
	for _, l := range ledgers {
		out = append(out, mapSavedResponse(l))
	}
	return out, nil
}

// Rerender loads a saved ledger and renders it again with its own
// template. Row order and totals come out identical on every call.
func (s *LedgerServiceImpl) Rerender(ctx context.Context, id string) (ledger.TabularReport, error) {
	saved, err := s.ledgerRepo.GetByID(ctx, id)
	if err != nil {
		return ledger.TabularReport{}, err
	}
	if saved.PeriodStart.IsZero() || saved.PeriodEnd.IsZero() {
		return ledger.TabularReport{}, ledger.ErrMissingPeriod
	}

	period := payroll.Period{Start: saved.PeriodStart, End: saved.PeriodEnd}
	return Render(saved.Employees, period, saved.TemplateType, nil)
}

func (s *LedgerServiceImpl) Delete(ctx context.Context, id string) error {
	return s.ledgerRepo.Delete(ctx, id)
}

func mapSavedResponse(l ledger.SavedLedger) ledger.SavedLedgerResponse {
	return ledger.SavedLedgerResponse{
		ID:           l.ID,
		Title:        l.Title,
		TemplateType: string(l.TemplateType),
		PeriodStart:  l.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    l.PeriodEnd.Format("2006-01-02"),
		Employees:    len(l.Employees),
		CreatedAt:    l.CreatedAt.Format(time.RFC3339),
	}
}
