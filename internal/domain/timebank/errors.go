package timebank

import "errors"

var (
	ErrInvalidPeriod  = errors.New("invalid period: end precedes start")
	ErrReasonRequired = errors.New("a reason is required for time bank adjustments")
)
