package ledger

import "context"

// LedgerRepository persists rendered ledgers as JSON documents.
type LedgerRepository interface {
	Save(ctx context.Context, l SavedLedger) (SavedLedger, error)
	GetByID(ctx context.Context, id string) (SavedLedger, error)
	List(ctx context.Context) ([]SavedLedger, error)
	Delete(ctx context.Context, id string) error
}

// LedgerService renders, saves, and re-renders payroll ledgers.
type LedgerService interface {
	Render(ctx context.Context, req RenderRequest) (TabularReport, error)
	RenderDocument(ctx context.Context, blob []byte, template TemplateType) (TabularReport, error)
	SaveLedger(ctx context.Context, req SaveLedgerRequest) (SavedLedgerResponse, error)
	List(ctx context.Context) ([]SavedLedgerResponse, error)
	Rerender(ctx context.Context, id string) (TabularReport, error)
	Delete(ctx context.Context, id string) error
}
