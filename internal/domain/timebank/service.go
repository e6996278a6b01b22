package timebank

import (
	"context"
	"strings"
	"time"

	"ponto/internal/platform/clock"
)

type Service struct {
	store StoreAPI
	clk   clock.Clock
}

func NewService(store StoreAPI, clk clock.Clock) *Service {
	return &Service{store: store, clk: clk}
}

// Balance returns the net minute balance over the inclusive civil-date range
// [start, end]: manual entries, plus worked minutes from punch pairing, minus
// the flat 8h-per-business-weekday target. It may be negative.
func (s *Service) Balance(ctx context.Context, employeeID string, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, ErrInvalidPeriod
	}

	loc := s.clk.Location()
	from := clock.StartOfDay(start, loc)
	to := clock.StartOfDay(end, loc)

	ledger, err := s.store.SumRange(ctx, employeeID, from, to)
	if err != nil {
		return 0, err
	}

	times, err := s.store.PunchTimes(ctx, employeeID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return 0, err
	}

	worked := pairedWorkedMinutes(times, loc)
	target := businessWeekdays(from, to, loc) * expectedMinutesPerWeekday

	return ledger + worked - target, nil
}

// AddAdjustment appends a signed manual entry dated on today's civil day.
func (s *Service) AddAdjustment(ctx context.Context, employeeID string, minutes int, reason string) (Entry, error) {
	if strings.TrimSpace(reason) == "" {
		return Entry{}, ErrReasonRequired
	}

	return s.store.Append(ctx, Entry{
		EmployeeID: employeeID,
		Date:       clock.StartOfDay(s.clk.Now(), s.clk.Location()),
		Minutes:    minutes,
		Reason:     reason,
		Source:     SourceManual,
	})
}

// Statement returns the employee's ledger entries in range, unmodified, for
// display.
func (s *Service) Statement(ctx context.Context, employeeID string, start, end time.Time) ([]Entry, error) {
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	loc := s.clk.Location()
	return s.store.ListRange(ctx, employeeID, clock.StartOfDay(start, loc), clock.StartOfDay(end, loc))
}
