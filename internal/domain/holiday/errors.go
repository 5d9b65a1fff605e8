package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrDuplicateDate   = errors.New("holiday already exists on this date")
)
