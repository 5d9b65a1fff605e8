package rule

import "errors"

var (
	ErrRuleNotFound   = errors.New("payroll rule not found")
	ErrRuleNameExists = errors.New("payroll rule name already exists")
	ErrInvalidType    = errors.New("invalid payroll rule type")
)
