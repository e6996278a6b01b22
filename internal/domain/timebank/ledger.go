package timebank

import (
	"sort"
	"time"

	"ponto/internal/platform/clock"
)

const (
	// expectedMinutesPerWeekday is the flat balance target: 8h for every
	// business weekday in range, regardless of schedule kind. The report
	// engine's per-day delta is the schedule-aware view; this one is the
	// schedule-agnostic payroll screen.
	expectedMinutesPerWeekday = 8 * 60

	// maxPairGapMinutes discards punch pairs spanning more than 12 hours as
	// anomalous (a forgotten clock-out paired with the next day's entry).
	maxPairGapMinutes = 12 * 60
)

// pairedWorkedMinutes reconstructs worked time by pairing consecutive punches
// within each civil day (1st with 2nd, 3rd with 4th, ...). Unpaired trailing
// punches and anomalous gaps contribute nothing.
func pairedWorkedMinutes(times []time.Time, loc *time.Location) int {
	if len(times) == 0 {
		return 0
	}

	sorted := make([]time.Time, len(times))
	copy(sorted, times)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	worked := 0
	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && clock.SameCivilDay(sorted[j], sorted[i], loc) {
			j++
		}
		dayTimes := sorted[i:j]
		i = j

		for k := 0; k+1 < len(dayTimes); k += 2 {
			diff := int(dayTimes[k+1].Sub(dayTimes[k]) / time.Minute)
			if diff > 0 && diff < maxPairGapMinutes {
				worked += diff
			}
		}
	}
	return worked
}

// businessWeekdays counts Monday through Friday dates in the inclusive civil
// range [start, end].
func businessWeekdays(start, end time.Time, loc *time.Location) int {
	from := clock.StartOfDay(start, loc)
	to := clock.StartOfDay(end, loc)

	count := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		switch d.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			count++
		}
	}
	return count
}
