package setting

import "errors"

var (
	ErrScopeNotFound       = errors.New("configuration scope not found")
	ErrUnknownSection      = errors.New("unknown configuration section")
	ErrScopeTargetRequired = errors.New("scope target is required for non-ALL application types")
)
