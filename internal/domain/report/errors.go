package report

import "errors"

var ErrInvalidPeriod = errors.New("invalid period: end precedes start")
