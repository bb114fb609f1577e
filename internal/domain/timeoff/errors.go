package timeoff

import "errors"

var (
	ErrTimeOffNotFound     = errors.New("Time-off request not found")
	ErrAlreadyProcessed    = errors.New("Time-off request already processed")
	ErrInsufficientBalance = errors.New("Insufficient vacation balance")
)
