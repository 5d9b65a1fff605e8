package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/ledger"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/handler/http/response"
)

type LedgerHandler interface {
	Render(w http.ResponseWriter, r *http.Request)
	Preview(w http.ResponseWriter, r *http.Request)
	Save(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Rerender(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type LedgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &LedgerHandlerImpl{ledgerService: ledgerService}
}

// Render implements LedgerHandler. It computes fresh payroll lines for the
// requested period and returns the laid-out report.
func (h *LedgerHandlerImpl) Render(w http.ResponseWriter, r *http.Request) {
	var req ledger.RenderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("RenderLedger decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	report, err := h.ledgerService.Render(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Preview implements LedgerHandler. The body is a previously exported
// ledger document; it re-renders without touching the datastore.
func (h *LedgerHandlerImpl) Preview(w http.ResponseWriter, r *http.Request) {
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		response.BadRequest(w, "Unable to read request body", nil)
		return
	}

	template := ledger.TemplateType(r.URL.Query().Get("template"))
	if template == "" {
		template = ledger.TemplateStandard
	}

	report, err := h.ledgerService.RenderDocument(r.Context(), blob, template)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Save implements LedgerHandler.
func (h *LedgerHandlerImpl) Save(w http.ResponseWriter, r *http.Request) {
	var req ledger.SaveLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SaveLedger decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.ledgerService.SaveLedger(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Ledger saved", saved)
}

// List implements LedgerHandler.
func (h *LedgerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	ledgers, err := h.ledgerService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, ledgers)
}

// Rerender implements LedgerHandler. A saved ledger reprints identically
// every time.
func (h *LedgerHandlerImpl) Rerender(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Ledger ID is required", nil)
		return
	}

	report, err := h.ledgerService.Rerender(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// Delete implements LedgerHandler.
func (h *LedgerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Ledger ID is required", nil)
		return
	}

	if err := h.ledgerService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Ledger deleted", nil)
}
