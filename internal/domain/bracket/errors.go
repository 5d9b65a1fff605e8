package bracket

import "errors"

var (
	ErrUnknownContributionType = errors.New("unknown contribution type")
	ErrEmptyBracketSet         = errors.New("at least one bracket is required")
)
