package holiday

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rottnpotato/BISUpayroll-sub000/internal/domain/holiday"
	"github.com/rottnpotato/BISUpayroll-sub000/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
	logger      *slog.Logger
}

func NewHolidayService(holidayRepo holiday.HolidayRepository, logger *slog.Logger) holiday.HolidayService {
	return &HolidayServiceImpl{
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Type:        holiday.HolidayType(req.Type),
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("create holiday: %w", err)
	}

	s.logger.Info("holiday created",
		slog.String("holiday_id", created.ID),
		slog.String("name", created.Name),
		slog.String("date", req.Date))

	return mapHolidayResponse(created), nil
}

func (s *HolidayServiceImpl) List(ctx context.Context) ([]holiday.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}

	out := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, mapHolidayResponse(h))
	}
	return out, nil
}

func (s *HolidayServiceImpl) Update(ctx context.Context, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if req.Date != nil {
		if _, ok := validator.IsValidDate(*req.Date); !ok {
			return holiday.HolidayResponse{}, validator.ValidationErrors{
				{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"},
			}
		}
	}

	if err := s.holidayRepo.Update(ctx, req); err != nil {
		return holiday.HolidayResponse{}, err
	}

	updated, err := s.holidayRepo.GetByID(ctx, req.ID)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return mapHolidayResponse(updated), nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}

func mapHolidayResponse(h holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		Type:        string(h.Type),
		IsRecurring: h.IsRecurring,
	}
}
