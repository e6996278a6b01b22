package db

import (
	"os"
	"strings"
	"testing"
)

// The day-uniqueness index bakes a timezone literal into its expression; the
// startup check compares configuration against PunchDayIndexZone, so the
// constant and the migration text must never drift apart.
func TestPunchDayIndexZoneMatchesMigration(t *testing.T) {
	raw, err := os.ReadFile("../../migrations/0002_punch_day_uniqueness.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}

	want := "AT TIME ZONE '" + PunchDayIndexZone + "'"
	if !strings.Contains(string(raw), want) {
		t.Fatalf("migration does not pin %q; update PunchDayIndexZone together with the index", PunchDayIndexZone)
	}
}
