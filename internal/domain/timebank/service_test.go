package timebank

import (
	"context"
	"errors"
	"testing"
	"time"

	"ponto/internal/platform/clock"
)

type fakeStore struct {
	entries []Entry
	punches []time.Time
}

func (s *fakeStore) SumRange(_ context.Context, employeeID string, from, to time.Time) (int, error) {
	total := 0
	for _, e := range s.entries {
		if e.EmployeeID == employeeID && !e.Date.Before(from) && !e.Date.After(to) {
			total += e.Minutes
		}
	}
	return total, nil
}

func (s *fakeStore) ListRange(_ context.Context, employeeID string, from, to time.Time) ([]Entry, error) {
	var out []Entry
	for _, e := range s.entries {
		if e.EmployeeID == employeeID && !e.Date.Before(from) && !e.Date.After(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeStore) Append(_ context.Context, entry Entry) (Entry, error) {
	entry.ID = "tb1"
	entry.CreatedAt = entry.Date
	s.entries = append(s.entries, entry)
	return entry, nil
}

func (s *fakeStore) PunchTimes(_ context.Context, _ string, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, at := range s.punches {
		if !at.Before(from) && at.Before(to) {
			out = append(out, at)
		}
	}
	return out, nil
}

func TestAdjustmentReflectedInBalance(t *testing.T) {
	loc := saoPaulo(t)
	// A Saturday: the weekend range that follows has a zero weekday target.
	saturday := time.Date(2025, 6, 7, 10, 0, 0, 0, loc)
	store := &fakeStore{}
	svc := NewService(store, clock.Fixed{At: saturday})

	if _, err := svc.AddAdjustment(context.Background(), "e1", -120, "unpaid leave"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sunday := time.Date(2025, 6, 8, 0, 0, 0, 0, loc)
	balance, err := svc.Balance(context.Background(), "e1", saturday, sunday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if balance != -120 {
		t.Fatalf("expected balance -120, got %d", balance)
	}
}

func TestBalanceCombinesLedgerWorkAndTarget(t *testing.T) {
	loc := saoPaulo(t)
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
	store := &fakeStore{
		entries: []Entry{{EmployeeID: "e1", Date: monday, Minutes: 30, Reason: "correction", Source: SourceManual}},
		punches: []time.Time{
			monday.Add(8 * time.Hour),
			monday.Add(12 * time.Hour),
			monday.Add(13 * time.Hour),
			monday.Add(17 * time.Hour),
		},
	}
	svc := NewService(store, clock.Fixed{At: monday})

	balance, err := svc.Balance(context.Background(), "e1", monday, monday)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 30 ledger + 480 worked - 480 target.
	if balance != 30 {
		t.Fatalf("expected balance 30, got %d", balance)
	}
}

func TestBalanceRejectsInvertedRange(t *testing.T) {
	loc := saoPaulo(t)
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
	svc := NewService(&fakeStore{}, clock.Fixed{At: monday})

	if _, err := svc.Balance(context.Background(), "e1", monday, monday.AddDate(0, 0, -1)); !errors.Is(err, ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestAddAdjustmentRequiresReason(t *testing.T) {
	loc := saoPaulo(t)
	svc := NewService(&fakeStore{}, clock.Fixed{At: time.Date(2025, 6, 2, 10, 0, 0, 0, loc)})

	if _, err := svc.AddAdjustment(context.Background(), "e1", 60, "   "); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("expected ErrReasonRequired, got %v", err)
	}
}

func TestStatementReturnsEntriesInRange(t *testing.T) {
	loc := saoPaulo(t)
	monday := time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
	store := &fakeStore{entries: []Entry{
		{ID: "a", EmployeeID: "e1", Date: monday, Minutes: 60, Reason: "overtime payout", Source: SourceManual},
		{ID: "b", EmployeeID: "e1", Date: monday.AddDate(0, 0, 10), Minutes: -60, Reason: "later", Source: SourceManual},
	}}
	svc := NewService(store, clock.Fixed{At: monday})

	entries, err := svc.Statement(context.Background(), "e1", monday, monday.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != "a" {
		t.Fatalf("expected only the in-range entry, got %+v", entries)
	}
}
