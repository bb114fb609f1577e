package payroll

import "errors"

var (
	ErrInvalidPeriod = errors.New("Invalid payroll period")
)
