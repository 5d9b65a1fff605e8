package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/payroll"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/handler/http/response"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler. The computed lines are returned, not
// stored; saving happens through the ledger endpoints.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GeneratePayroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.GeneratePayroll(r.Context(), &req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
