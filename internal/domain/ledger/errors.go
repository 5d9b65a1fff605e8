package ledger

import "errors"

var (
	ErrLedgerNotFound   = errors.New("saved ledger not found")
	ErrMissingPeriod    = errors.New("saved ledger is missing pay period dates")
	ErrInvalidPeriod    = errors.New("saved ledger pay period dates are invalid")
	ErrUnknownTemplate  = errors.New("unknown report template")
)
