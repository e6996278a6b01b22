package report

import (
	"context"
	"log"
	"time"

	"ponto/internal/platform/clock"
)

// StoreAPI is the report persistence contract.
type StoreAPI interface {
	Rows(ctx context.Context, from, to time.Time, employeeID string) ([]Row, error)
	Marks(ctx context.Context, from, to time.Time, employeeID string) ([]MirrorMark, error)
	EmployeeName(ctx context.Context, employeeID string) (string, error)
}

type Service struct {
	store StoreAPI
	rules Rules
}

func NewService(store StoreAPI, rules Rules) *Service {
	return &Service{store: store, rules: rules}
}

func (s *Service) Rules() Rules {
	return s.rules
}

// PeriodSummary computes the attendance summary for the civil-date range
// [start, end], optionally filtered to one employee.
func (s *Service) PeriodSummary(ctx context.Context, start, end time.Time, employeeID string) (Summary, error) {
	if end.Before(start) {
		return Summary{}, ErrInvalidPeriod
	}

	from := clock.StartOfDay(start, s.rules.Location)
	to := clock.StartOfDay(end, s.rules.Location).AddDate(0, 0, 1)

	rows, err := s.store.Rows(ctx, from, to, employeeID)
	if err != nil {
		return Summary{}, err
	}

	summary, err := Compute(s.rules, from, clock.StartOfDay(end, s.rules.Location), rows)
	if err != nil {
		return Summary{}, err
	}

	if employeeID != "" {
		summary.EmployeeID = employeeID
		name, err := s.store.EmployeeName(ctx, employeeID)
		if err != nil {
			// The summary is still usable without the header name.
			log.Printf("employee name lookup failed: employee=%s err=%v", employeeID, err)
		} else {
			summary.EmployeeName = name
		}
	}
	return summary, nil
}

// Mirror lists the raw punch marks per civil day over [start, end].
func (s *Service) Mirror(ctx context.Context, start, end time.Time, employeeID string) ([]MirrorDay, error) {
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	from := clock.StartOfDay(start, s.rules.Location)
	to := clock.StartOfDay(end, s.rules.Location).AddDate(0, 0, 1)

	marks, err := s.store.Marks(ctx, from, to, employeeID)
	if err != nil {
		return nil, err
	}

	days := []MirrorDay{}
	for _, mark := range marks {
		dayStart := clock.StartOfDay(mark.At, s.rules.Location)
		if len(days) == 0 || !days[len(days)-1].Day.Equal(dayStart) {
			days = append(days, MirrorDay{Day: dayStart})
		}
		days[len(days)-1].Marks = append(days[len(days)-1].Marks, mark)
	}
	return days, nil
}
