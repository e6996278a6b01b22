package report

import (
	"testing"
	"time"
)

func TestRoundMinutes(t *testing.T) {
	rules := testRules(t)

	cases := []struct {
		in   time.Duration
		want int
	}{
		{0, 0},
		{2 * time.Minute, 0},
		{3 * time.Minute, 5},
		{7*time.Minute + 30*time.Second, 10},
		{455 * time.Minute, 455},
		{482 * time.Minute, 480},
		{483 * time.Minute, 485},
	}

	for _, tc := range cases {
		if got := rules.RoundMinutes(tc.in); got != tc.want {
			t.Errorf("RoundMinutes(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRoundMinutesIsIdempotent(t *testing.T) {
	rules := testRules(t)

	for minutes := 0; minutes <= 600; minutes += 7 {
		once := rules.RoundMinutes(time.Duration(minutes) * time.Minute)
		twice := rules.RoundMinutes(time.Duration(once) * time.Minute)
		if once != twice {
			t.Fatalf("rounding %d minutes is not idempotent: %d then %d", minutes, once, twice)
		}
	}
}

func TestRoundMinutesUnitOne(t *testing.T) {
	rules := testRules(t)
	rules.RoundingMinutes = 1

	if got := rules.RoundMinutes(7*time.Minute + 40*time.Second); got != 8 {
		t.Fatalf("expected 8 minutes, got %d", got)
	}
}
