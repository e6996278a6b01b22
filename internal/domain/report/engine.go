package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"ponto/internal/domain/punch"
	"ponto/internal/platform/clock"
)

// Compute turns a raw set of punch rows into a period summary. start and end
// are civil dates (local midnights in the business timezone), end inclusive.
// It is a pure function of its inputs: rows may arrive in any order and are
// not mutated.
func Compute(rules Rules, start, end time.Time, rows []Row) (Summary, error) {
	if end.Before(start) {
		return Summary{}, ErrInvalidPeriod
	}

	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].EmployeeID != sorted[j].EmployeeID {
			return sorted[i].EmployeeID < sorted[j].EmployeeID
		}
		return sorted[i].At.Before(sorted[j].At)
	})

	summary := Summary{Start: start, End: end, Days: []Day{}}
	pay := decimal.Zero
	hasPay := false

	for i := 0; i < len(sorted); {
		j := i
		for j < len(sorted) && sorted[j].EmployeeID == sorted[i].EmployeeID {
			j++
		}
		empRows := sorted[i:j]
		i = j

		for k := 0; k < len(empRows); {
			dayStart := clock.StartOfDay(empRows[k].At, rules.Location)
			l := k
			for l < len(empRows) && clock.SameCivilDay(empRows[l].At, dayStart, rules.Location) {
				l++
			}
			day := computeDay(rules, dayStart, empRows[k:l])
			k = l

			summary.TotalWorkedMinutes += day.WorkedMinutes
			summary.BankMinutes += day.BankDeltaMinutes
			if rate := empRows[0].HourlyRate; rate != nil && day.WorkedMinutes > 0 {
				hasPay = true
				pay = pay.Add(rate.Mul(decimal.NewFromInt(int64(day.WorkedMinutes)).Div(decimal.NewFromInt(60))))
			}
			summary.Days = append(summary.Days, day)
		}
	}

	sort.SliceStable(summary.Days, func(i, j int) bool {
		if !summary.Days[i].Day.Equal(summary.Days[j].Day) {
			return summary.Days[i].Day.Before(summary.Days[j].Day)
		}
		return summary.Days[i].EmployeeID < summary.Days[j].EmployeeID
	})

	if hasPay {
		rounded := pay.Round(2)
		summary.EstimatedPay = &rounded
	}

	return summary, nil
}

// computeDay reconstructs one employee-day. A clock-in or lunch-in opens a
// span only if none is open; a lunch-out or clock-out closes the open span.
// Duplicate or out-of-order historical punches therefore degrade gracefully
// instead of failing the whole report.
func computeDay(rules Rules, dayStart time.Time, rows []Row) Day {
	meta := rows[0]

	var intervals []Interval
	var open *time.Time
	var lunchOutAt, lunchInAt *time.Time

	for _, r := range rows {
		at := r.At
		switch r.Type {
		case punch.TypeClockIn, punch.TypeLunchIn:
			if open == nil {
				open = &at
			}
			if r.Type == punch.TypeLunchIn && lunchInAt == nil {
				lunchInAt = &at
			}
		case punch.TypeLunchOut, punch.TypeClockOut:
			if open != nil {
				dur := at.Sub(*open)
				if dur < 0 {
					dur = 0
				}
				out := at
				intervals = append(intervals, Interval{In: *open, Out: &out, Minutes: rules.RoundMinutes(dur)})
				open = nil
			}
			if r.Type == punch.TypeLunchOut && lunchOutAt == nil {
				lunchOutAt = &at
			}
		}
	}
	incomplete := open != nil
	if open != nil {
		intervals = append(intervals, Interval{In: *open})
	}

	deficit := lunchDeficit(rules, dayStart, intervals)

	worked := 0
	for _, iv := range intervals {
		if iv.Out != nil {
			worked += iv.Minutes
		}
	}
	worked -= deficit
	if worked < 0 {
		worked = 0
	}
	if maxDay := int(rules.MaxDailyHours * 60); maxDay > 0 && worked > maxDay {
		worked = maxDay
	}
	worked = rules.RoundMinutes(time.Duration(worked) * time.Minute)

	var firstIn, lastOut *time.Time
	if len(intervals) > 0 {
		firstIn = &intervals[0].In
	}
	for i := len(intervals) - 1; i >= 0; i-- {
		if intervals[i].Out != nil {
			lastOut = intervals[i].Out
			break
		}
	}

	lateness := rules.lateness(dayStart, firstIn, lastOut, meta.ShiftStart, meta.ShiftEnd)

	expected := meta.Kind.ExpectedMinutes(worked > 0)
	delta := worked - expected
	overtime := delta
	if overtime < 0 {
		overtime = 0
	}

	occurrences := []string{}
	if deficit > 0 {
		occurrences = append(occurrences, fmt.Sprintf("lunch shorter than %d minutes (%d minute adjustment)", rules.MinLunchMinutes, deficit))
	}
	if incomplete || firstIn == nil || lastOut == nil {
		occurrences = append(occurrences, "incomplete punch marks")
	}

	return Day{
		Day:                 dayStart,
		EmployeeID:          meta.EmployeeID,
		EmployeeName:        meta.EmployeeName,
		Intervals:           intervals,
		WorkedMinutes:       worked,
		LunchDeficitMinutes: deficit,
		LunchOutAt:          lunchOutAt,
		LunchInAt:           lunchInAt,
		OvertimeMinutes:     overtime,
		LatenessMinutes:     lateness,
		BankDeltaMinutes:    delta,
		Occurrences:         occurrences,
	}
}

// lunchDeficit finds the largest break between two closed spans that overlaps
// the valid lunch window and returns the shortfall, in minutes, against the
// configured minimum. The shortfall is never negative and never exceeds the
// minimum itself.
func lunchDeficit(rules Rules, dayStart time.Time, intervals []Interval) int {
	if rules.MinLunchMinutes <= 0 {
		return 0
	}

	windowStart := rules.LunchWindowStart.On(dayStart)
	windowEnd := rules.LunchWindowEnd.On(dayStart)

	var largestGap time.Duration
	var lastOut *time.Time
	for _, iv := range intervals {
		if iv.Out == nil {
			continue
		}
		if lastOut != nil {
			gapStart := *lastOut
			if windowStart.After(gapStart) {
				gapStart = windowStart
			}
			gapEnd := iv.In
			if windowEnd.Before(gapEnd) {
				gapEnd = windowEnd
			}
			if effective := gapEnd.Sub(gapStart); effective > largestGap {
				largestGap = effective
			}
		}
		lastOut = iv.Out
	}

	minLunch := time.Duration(rules.MinLunchMinutes) * time.Minute
	if largestGap >= minLunch {
		return 0
	}
	return int((minLunch - largestGap) / time.Minute)
}
