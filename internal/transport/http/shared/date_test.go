package shared

import (
	"testing"
	"time"
)

func TestParseDateBare(t *testing.T) {
	parsed, err := ParseDate("2025-06-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || parsed.Month() != time.June || parsed.Day() != 2 {
		t.Fatalf("unexpected date: %v", parsed)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	parsed, err := ParseDate("2025-06-02T08:30:00-03:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.UTC().Hour() != 11 {
		t.Fatalf("unexpected instant: %v", parsed)
	}
}

func TestParseDateInAnchorsBareDates(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	parsed, err := ParseDateIn("2025-06-02", loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Location() != loc {
		t.Fatalf("expected location %v, got %v", loc, parsed.Location())
	}
	if parsed.Hour() != 0 {
		t.Fatalf("expected local midnight, got %v", parsed)
	}
}

func TestParseDateEmpty(t *testing.T) {
	parsed, err := ParseDate("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.IsZero() {
		t.Fatalf("expected zero time, got %v", parsed)
	}
}

func TestParseDateInvalid(t *testing.T) {
	if _, err := ParseDate("yesterday"); err == nil {
		t.Fatal("expected error")
	}
}
