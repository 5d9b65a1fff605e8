package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	ListForRange(ctx context.Context, from, to time.Time) ([]Holiday, error)
	Update(ctx context.Context, req UpdateHolidayRequest) error
	Delete(ctx context.Context, id string) error
}

type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	List(ctx context.Context) ([]HolidayResponse, error)
	Update(ctx context.Context, req UpdateHolidayRequest) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
