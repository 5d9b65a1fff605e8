package payroll

import "context"

// PayrollService computes pay lines for a period. Results are ephemeral;
// persistence only happens when a ledger is explicitly saved.
type PayrollService interface {
	GeneratePayroll(ctx context.Context, req *GeneratePayrollRequest) (*GeneratePayrollResponse, error)
}
