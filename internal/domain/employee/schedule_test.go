package employee

import "testing"

func TestLunchMandatory(t *testing.T) {
	exempt := map[ScheduleKind]bool{
		KindParcial:      true,
		KindIntermitente: true,
		KindEstagiario:   true,
	}

	for _, kind := range AllScheduleKinds() {
		mandatory := kind.LunchMandatory()
		if exempt[kind] && mandatory {
			t.Errorf("%s should not require lunch", kind)
		}
		if !exempt[kind] && !mandatory {
			t.Errorf("%s should require lunch", kind)
		}
	}
}

func TestExpectedMinutes(t *testing.T) {
	cases := []struct {
		kind ScheduleKind
		want int
	}{
		{KindIntegral, 480},
		{KindParcial, 240},
		{KindTwelveByThirtySix, 720},
		{KindNoturna, 420},
		{KindRemota, 480},
		{KindIntermitente, 0},
		{KindEstagiario, 360},
		{ScheduleKind("unknown"), 0},
	}

	for _, tc := range cases {
		if got := tc.kind.ExpectedMinutes(true); got != tc.want {
			t.Errorf("%s: expected %d minutes, got %d", tc.kind, tc.want, got)
		}
		if got := tc.kind.ExpectedMinutes(false); got != 0 {
			t.Errorf("%s: expected 0 minutes on an idle day, got %d", tc.kind, got)
		}
	}
}

func TestCapsCoverAllKinds(t *testing.T) {
	for _, kind := range AllScheduleKinds() {
		daily, weekly := kind.Caps()
		if daily <= 0 || weekly <= 0 {
			t.Errorf("%s: caps must be positive, got %v/%v", kind, daily, weekly)
		}
		if daily*7 < weekly {
			t.Errorf("%s: weekly cap %v unreachable with daily cap %v", kind, weekly, daily)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("08:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tod.Minutes() != 510 {
		t.Fatalf("expected 510 minutes, got %d", tod.Minutes())
	}
	if tod.String() != "08:30" {
		t.Fatalf("expected 08:30, got %s", tod)
	}

	if _, err := ParseTimeOfDay("25:00"); err == nil {
		t.Fatal("expected error for invalid hour")
	}
}
