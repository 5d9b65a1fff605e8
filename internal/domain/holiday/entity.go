package holiday

import "time"

// HolidayType enum
type HolidayType string

const (
	HolidayRegular HolidayType = "regular"
	HolidaySpecial HolidayType = "special"
)

// Holiday - one national or local holiday. Recurring holidays repeat their
// month/day every year at the query year.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Type        HolidayType
	IsRecurring bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OccursOn reports whether the holiday falls on the given date, normalizing
// recurring holidays to the query year.
func (h Holiday) OccursOn(date time.Time) bool {
	if h.IsRecurring {
		return h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
	}
	return h.Date.Year() == date.Year() && h.Date.Month() == date.Month() && h.Date.Day() == date.Day()
}
