package punch

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"ponto/internal/auth"
	"ponto/internal/domain/employee"
	"ponto/internal/platform/clock"
)

type Rules struct {
	// MinPreLunchMinutes is the minimum worked time before lunch-out is allowed.
	MinPreLunchMinutes int
	// MinLunchMinutes is the minimum lunch duration before lunch-in is allowed.
	MinLunchMinutes int
}

func DefaultRules() Rules {
	return Rules{MinPreLunchMinutes: 60, MinLunchMinutes: 60}
}

// Service decides whether a proposed punch is legal given the employee's
// history on the same civil day, then persists it.
type Service struct {
	employees Directory
	store     StoreAPI
	clk       clock.Clock
	rules     Rules
}

func NewService(employees Directory, store StoreAPI, clk clock.Clock, rules Rules) *Service {
	return &Service{employees: employees, store: store, clk: clk, rules: rules}
}

// Register validates and records a live punch, stamped with the business
// clock's current time. The terminal identifies the employee by name and
// proves it with a PIN checked against the stored hash; a bad name and a bad
// PIN are indistinguishable to the caller.
func (s *Service) Register(ctx context.Context, name, pin string, t Type, sourceIP string) (Result, error) {
	if !t.Valid() {
		return Result{}, ErrInvalidType
	}

	emp, err := s.employees.ByName(ctx, name)
	if errors.Is(err, employee.ErrNotFound) {
		return Result{}, ErrInvalidPIN
	}
	if err != nil {
		return Result{}, err
	}
	if auth.CheckPassword(emp.PINHash, pin) != nil {
		return Result{}, ErrInvalidPIN
	}
	if !emp.CanPunch() {
		return Result{}, ErrEmployeeInactive
	}

	now := s.clk.Now()
	if err := s.validateSequence(ctx, emp, t, now); err != nil {
		return Result{}, err
	}

	created, err := s.store.Append(ctx, Punch{
		EmployeeID: emp.ID,
		At:         now,
		Type:       t,
		Origin:     OriginTerminal,
		SourceIP:   sourceIP,
	})
	if err != nil {
		// The store's day-uniqueness index may reject a punch that raced past
		// the sequence check; report it like any other duplicate.
		if errors.Is(err, ErrConflict) {
			return Result{}, errDuplicatePunch(t)
		}
		return Result{}, err
	}

	return Result{ID: created.ID, EmployeeID: emp.ID, EmployeeName: emp.Name, Type: created.Type, At: created.At}, nil
}

// RegisterManual records an administrative punch at a caller-supplied instant.
// Sequence rules are skipped; a justification is required and exact duplicates
// are rejected.
func (s *Service) RegisterManual(ctx context.Context, employeeID string, t Type, at time.Time, justification string) (Result, error) {
	if !t.Valid() {
		return Result{}, ErrInvalidType
	}

	emp, err := s.employees.ByID(ctx, employeeID)
	if errors.Is(err, employee.ErrNotFound) {
		return Result{}, ErrEmployeeInactive
	}
	if err != nil {
		return Result{}, err
	}
	if !emp.CanPunch() {
		return Result{}, ErrEmployeeInactive
	}

	if strings.TrimSpace(justification) == "" {
		return Result{}, ErrJustificationRequired
	}

	exists, err := s.store.ExistsExact(ctx, emp.ID, t, at)
	if err != nil {
		return Result{}, err
	}
	if exists {
		return Result{}, ErrDuplicateManualPunch
	}

	created, err := s.store.Append(ctx, Punch{
		EmployeeID:    emp.ID,
		At:            at,
		Type:          t,
		Justification: justification,
		Origin:        OriginManual,
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			return Result{}, ErrDuplicateManualPunch
		}
		return Result{}, err
	}

	return Result{ID: created.ID, EmployeeID: emp.ID, EmployeeName: emp.Name, Type: created.Type, At: created.At}, nil
}

// validateSequence applies the same-day ordering rules. today's punches are
// fetched inside the civil-day window of now in the business timezone.
func (s *Service) validateSequence(ctx context.Context, emp employee.Employee, t Type, now time.Time) error {
	dayStart, dayEnd := clock.DayRange(now, s.clk.Location())
	today, err := s.store.ListEmployeeRange(ctx, emp.ID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	sortByTime(today)

	for _, p := range today {
		if p.Type == t {
			return errDuplicatePunch(t)
		}
	}

	switch t {
	case TypeLunchOut:
		last := lastOfTypes(today, TypeClockIn, TypeLunchIn)
		if last == nil {
			return ErrLunchOutNoSession
		}
		if now.Sub(last.At) < time.Duration(s.rules.MinPreLunchMinutes)*time.Minute {
			return errLunchOutTooSoon(s.rules.MinPreLunchMinutes)
		}

	case TypeLunchIn:
		last := lastOfTypes(today, TypeLunchOut)
		if last == nil {
			return ErrLunchInNoLunchOut
		}
		if now.Sub(last.At) < time.Duration(s.rules.MinLunchMinutes)*time.Minute {
			return errLunchInTooSoon(s.rules.MinLunchMinutes)
		}

	case TypeClockOut:
		if emp.ScheduleKind.LunchMandatory() {
			lunchOut := lastOfTypes(today, TypeLunchOut)
			lunchIn := lastOfTypes(today, TypeLunchIn)
			if lunchOut == nil && lunchIn == nil {
				return ErrLunchMandatory
			}
			if lunchIn == nil {
				return ErrLunchReturnRequired
			}
		}
	}

	return nil
}

func lastOfTypes(punches []Punch, types ...Type) *Punch {
	for i := len(punches) - 1; i >= 0; i-- {
		for _, t := range types {
			if punches[i].Type == t {
				return &punches[i]
			}
		}
	}
	return nil
}

func sortByTime(punches []Punch) {
	sort.Slice(punches, func(i, j int) bool {
		return punches[i].At.Before(punches[j].At)
	})
}
