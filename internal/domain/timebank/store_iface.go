package timebank

import (
	"context"
	"time"
)

type StoreAPI interface {
	// SumRange totals manual entry minutes with date in [from, to], inclusive.
	SumRange(ctx context.Context, employeeID string, from, to time.Time) (int, error)
	// ListRange returns entries with date in [from, to], ordered by date.
	ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]Entry, error)
	// Append persists an entry atomically and returns it with its id set.
	Append(ctx context.Context, entry Entry) (Entry, error)
	// PunchTimes returns the employee's punch instants with at in [from, to).
	PunchTimes(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error)
}
