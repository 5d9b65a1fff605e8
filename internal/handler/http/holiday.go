package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/holiday"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/handler/http/response"
)

type HolidayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type HolidayHandlerImpl struct {
	holidayService holiday.HolidayService
}

func NewHolidayHandler(holidayService holiday.HolidayService) HolidayHandler {
	return &HolidayHandlerImpl{holidayService: holidayService}
}

// Create implements HolidayHandler.
func (h *HolidayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.holidayService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", created)
}

// List implements HolidayHandler.
func (h *HolidayHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.holidayService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, holidays)
}

// Update implements HolidayHandler.
func (h *HolidayHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.holidayService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday updated", updated)
}

// Delete implements HolidayHandler.
func (h *HolidayHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Holiday ID is required", nil)
		return
	}

	if err := h.holidayService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}
