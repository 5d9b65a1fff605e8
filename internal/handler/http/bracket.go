package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/bracket"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/handler/http/response"
)

type BracketHandler interface {
	ListContribution(w http.ResponseWriter, r *http.Request)
	ReplaceContribution(w http.ResponseWriter, r *http.Request)
	ListTax(w http.ResponseWriter, r *http.Request)
	ReplaceTax(w http.ResponseWriter, r *http.Request)
}

type BracketHandlerImpl struct {
	bracketService bracket.BracketService
}

func NewBracketHandler(bracketService bracket.BracketService) BracketHandler {
	return &BracketHandlerImpl{bracketService: bracketService}
}

// ListContribution implements BracketHandler.
func (h *BracketHandlerImpl) ListContribution(w http.ResponseWriter, r *http.Request) {
	t := bracket.ContributionType(chi.URLParam(r, "type"))
	if !t.Valid() {
		response.HandleError(w, bracket.ErrUnknownContributionType)
		return
	}

	brackets, err := h.bracketService.ListContribution(r.Context(), t)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, brackets)
}

// ReplaceContribution implements BracketHandler.
func (h *BracketHandlerImpl) ReplaceContribution(w http.ResponseWriter, r *http.Request) {
	var req bracket.ReplaceContributionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReplaceContribution decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.Type = bracket.ContributionType(chi.URLParam(r, "type"))

	brackets, err := h.bracketService.ReplaceContribution(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Contribution brackets replaced", brackets)
}

// ListTax implements BracketHandler.
func (h *BracketHandlerImpl) ListTax(w http.ResponseWriter, r *http.Request) {
	brackets, err := h.bracketService.ListTax(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, brackets)
}

// ReplaceTax implements BracketHandler.
func (h *BracketHandlerImpl) ReplaceTax(w http.ResponseWriter, r *http.Request) {
	var req bracket.ReplaceTaxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ReplaceTax decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	brackets, err := h.bracketService.ReplaceTax(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Tax brackets replaced", brackets)
}
