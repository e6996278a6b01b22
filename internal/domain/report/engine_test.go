package report

import (
	"reflect"
	"testing"
	"time"

	"ponto/internal/domain/employee"
	"ponto/internal/domain/punch"
)

func testRules(t *testing.T) Rules {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return DefaultRules(loc)
}

func day(loc *time.Location) time.Time {
	return time.Date(2025, 6, 2, 0, 0, 0, 0, loc)
}

func rowsFor(loc *time.Location, kind employee.ScheduleKind, marks ...mark) []Row {
	base := day(loc)
	rows := make([]Row, 0, len(marks))
	for _, m := range marks {
		rows = append(rows, Row{
			EmployeeID:   "e1",
			EmployeeName: "Maria",
			Kind:         kind,
			At:           base.Add(time.Duration(m.hour)*time.Hour + time.Duration(m.minute)*time.Minute),
			Type:         m.t,
		})
	}
	return rows
}

type mark struct {
	t            punch.Type
	hour, minute int
}

func TestComputeFullIntegralDay(t *testing.T) {
	rules := testRules(t)
	rows := rowsFor(rules.Location, employee.KindIntegral,
		mark{punch.TypeClockIn, 8, 0},
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 13, 0},
		mark{punch.TypeClockOut, 17, 0},
	)

	summary, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summary.Days) != 1 {
		t.Fatalf("expected 1 day, got %d", len(summary.Days))
	}

	d := summary.Days[0]
	if d.WorkedMinutes != 480 {
		t.Fatalf("expected 480 worked minutes, got %d", d.WorkedMinutes)
	}
	if d.LunchDeficitMinutes != 0 {
		t.Fatalf("expected no lunch deficit, got %d", d.LunchDeficitMinutes)
	}
	if d.OvertimeMinutes != 0 {
		t.Fatalf("expected no overtime, got %d", d.OvertimeMinutes)
	}
	if d.BankDeltaMinutes != 0 {
		t.Fatalf("expected zero bank delta, got %d", d.BankDeltaMinutes)
	}
	if len(d.Intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(d.Intervals))
	}
	if len(d.Occurrences) != 0 {
		t.Fatalf("expected no occurrences, got %v", d.Occurrences)
	}
	if summary.TotalWorkedMinutes != 480 {
		t.Fatalf("expected period total 480, got %d", summary.TotalWorkedMinutes)
	}
}

func TestComputeShortLunchCostsPaidTime(t *testing.T) {
	rules := testRules(t)
	rows := rowsFor(rules.Location, employee.KindIntegral,
		mark{punch.TypeClockIn, 8, 0},
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 12, 30},
		mark{punch.TypeClockOut, 17, 0},
	)

	summary, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := summary.Days[0]
	if d.LunchDeficitMinutes != 30 {
		t.Fatalf("expected 30 minute lunch deficit, got %d", d.LunchDeficitMinutes)
	}
	// 240 + 270 worked raw, minus the 30 minute shortfall.
	if d.WorkedMinutes != 480 {
		t.Fatalf("expected 480 worked minutes, got %d", d.WorkedMinutes)
	}
	if len(d.Occurrences) != 1 {
		t.Fatalf("expected a lunch occurrence, got %v", d.Occurrences)
	}
}

func TestComputeMissingClockOutIsIncomplete(t *testing.T) {
	rules := testRules(t)
	rows := rowsFor(rules.Location, employee.KindIntegral,
		mark{punch.TypeClockIn, 8, 0},
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 13, 0},
	)

	summary, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := summary.Days[0]
	if len(d.Intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(d.Intervals))
	}
	last := d.Intervals[1]
	if last.Out != nil || last.Minutes != 0 {
		t.Fatalf("open interval must contribute nothing, got %+v", last)
	}
	// Only the morning session counts; no full lunch gap between closed spans
	// exists, so the full lunch minimum is charged.
	if d.WorkedMinutes != 240-rules.MinLunchMinutes {
		t.Fatalf("expected %d worked minutes, got %d", 240-rules.MinLunchMinutes, d.WorkedMinutes)
	}
	found := false
	for _, occ := range d.Occurrences {
		if occ == "incomplete punch marks" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected incomplete punch marks occurrence, got %v", d.Occurrences)
	}
}

func TestComputeToleratesDoubleClockIn(t *testing.T) {
	rules := testRules(t)
	rows := rowsFor(rules.Location, employee.KindIntegral,
		mark{punch.TypeClockIn, 8, 0},
		mark{punch.TypeClockIn, 8, 30}, // historical/manual anomaly
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 13, 0},
		mark{punch.TypeClockOut, 17, 0},
	)

	summary, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Days[0].WorkedMinutes != 480 {
		t.Fatalf("second clock-in must be ignored, got %d minutes", summary.Days[0].WorkedMinutes)
	}
}

func TestComputeCapsDailyHours(t *testing.T) {
	rules := testRules(t)
	rows := rowsFor(rules.Location, employee.KindIntegral,
		mark{punch.TypeClockIn, 6, 0},
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 13, 0},
		mark{punch.TypeClockOut, 23, 0},
	)

	summary, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := summary.Days[0]
	if d.WorkedMinutes != 600 {
		t.Fatalf("expected the 10h cap, got %d minutes", d.WorkedMinutes)
	}
	if d.OvertimeMinutes != 120 {
		t.Fatalf("expected 120 overtime minutes, got %d", d.OvertimeMinutes)
	}
	if d.BankDeltaMinutes != 120 {
		t.Fatalf("expected 120 bank delta minutes, got %d", d.BankDeltaMinutes)
	}
}

func TestComputeLateness(t *testing.T) {
	rules := testRules(t)
	shiftStart, _ := employee.ParseTimeOfDay("08:00")
	shiftEnd, _ := employee.ParseTimeOfDay("17:00")

	rows := rowsFor(rules.Location, employee.KindIntegral,
		mark{punch.TypeClockIn, 8, 20}, // 20 min past shift start
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 13, 0},
		mark{punch.TypeClockOut, 16, 30}, // left 30 min early
	)
	for i := range rows {
		rows[i].ShiftStart = &shiftStart
		rows[i].ShiftEnd = &shiftEnd
	}

	summary, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := summary.Days[0].LatenessMinutes; got != 50 {
		t.Fatalf("expected 50 lateness minutes, got %d", got)
	}
}

func TestComputeLatenessWithinTolerance(t *testing.T) {
	rules := testRules(t)
	shiftStart, _ := employee.ParseTimeOfDay("08:00")

	rows := rowsFor(rules.Location, employee.KindIntegral,
		mark{punch.TypeClockIn, 8, 4},
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 13, 0},
		mark{punch.TypeClockOut, 17, 4},
	)
	for i := range rows {
		rows[i].ShiftStart = &shiftStart
	}

	summary, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := summary.Days[0].LatenessMinutes; got != 0 {
		t.Fatalf("expected no lateness within tolerance, got %d", got)
	}
}

func TestComputeInvalidPeriod(t *testing.T) {
	rules := testRules(t)
	start := day(rules.Location)
	if _, err := Compute(rules, start, start.AddDate(0, 0, -1), nil); err != ErrInvalidPeriod {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	rules := testRules(t)
	rows := rowsFor(rules.Location, employee.KindIntegral,
		mark{punch.TypeClockIn, 8, 0},
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 13, 0},
		mark{punch.TypeClockOut, 17, 0},
	)
	// Shuffle: the engine must not depend on input order.
	shuffled := []Row{rows[2], rows[0], rows[3], rows[1]}

	first, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Compute(rules, day(rules.Location), day(rules.Location), shuffled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical summaries, got\n%+v\n%+v", first, second)
	}
}

func TestComputeUnknownKindExpectsNothing(t *testing.T) {
	rules := testRules(t)
	rows := rowsFor(rules.Location, employee.ScheduleKind("mystery"),
		mark{punch.TypeClockIn, 8, 0},
		mark{punch.TypeLunchOut, 12, 0},
		mark{punch.TypeLunchIn, 13, 0},
		mark{punch.TypeClockOut, 17, 0},
	)

	summary, err := Compute(rules, day(rules.Location), day(rules.Location), rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	d := summary.Days[0]
	if d.BankDeltaMinutes != d.WorkedMinutes {
		t.Fatalf("unknown kind must expect zero hours, delta %d worked %d", d.BankDeltaMinutes, d.WorkedMinutes)
	}
}
