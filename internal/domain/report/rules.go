package report

import (
	"math"
	"time"

	"ponto/internal/domain/employee"
)

// Rules are the business knobs of the aggregation engine, injected at
// construction. Location is the business timezone every day boundary is
// computed in.
type Rules struct {
	RoundingMinutes      int
	MinLunchMinutes      int
	LunchWindowStart     employee.TimeOfDay
	LunchWindowEnd       employee.TimeOfDay
	MaxDailyHours        float64
	LateToleranceMinutes int
	Location             *time.Location
}

func DefaultRules(loc *time.Location) Rules {
	return Rules{
		RoundingMinutes:      5,
		MinLunchMinutes:      60,
		LunchWindowStart:     employee.TimeOfDay(11 * 60),
		LunchWindowEnd:       employee.TimeOfDay(15 * 60),
		MaxDailyHours:        10,
		LateToleranceMinutes: 5,
		Location:             loc,
	}
}

// RoundMinutes rounds a duration to the nearest rounding unit, half away from
// zero. Rounding is idempotent: a value already on the grid is unchanged.
func (r Rules) RoundMinutes(d time.Duration) int {
	unit := r.RoundingMinutes
	if unit <= 1 {
		return int(math.Round(d.Minutes()))
	}
	return int(math.Round(d.Minutes()/float64(unit))) * unit
}

// lateness compares the day's first in against shift start (tolerance applies,
// and once exceeded the whole delay counts) and the last out against shift
// end (any early departure counts). Early arrivals and late departures never
// offset it, so the result is non-negative.
func (r Rules) lateness(day time.Time, firstIn, lastOut *time.Time, shiftStart, shiftEnd *employee.TimeOfDay) int {
	var late time.Duration

	if shiftStart != nil && firstIn != nil {
		expected := shiftStart.On(day)
		if diff := firstIn.Sub(expected); diff > time.Duration(r.LateToleranceMinutes)*time.Minute {
			late += diff
		}
	}

	if shiftEnd != nil && lastOut != nil {
		expected := shiftEnd.On(day)
		if diff := expected.Sub(*lastOut); diff > 0 {
			late += diff
		}
	}

	return r.RoundMinutes(late)
}
