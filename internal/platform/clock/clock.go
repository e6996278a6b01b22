package clock

import "time"

// Clock supplies the current wall-clock time in the business timezone. Punch
// validation stamps live punches with it; report computation never calls it and
// works from stored timestamps only.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type Business struct {
	loc *time.Location
}

func NewBusiness(timezone string) (*Business, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Business{loc: loc}, nil
}

func (b *Business) Now() time.Time {
	return time.Now().In(b.loc)
}

func (b *Business) Location() *time.Location {
	return b.loc
}

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

func (f Fixed) Location() *time.Location {
	return f.At.Location()
}

// StartOfDay returns local midnight of the civil day containing t in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayRange returns the half-open range [00:00, 00:00 next day) of the civil day
// containing t in loc.
func DayRange(t time.Time, loc *time.Location) (start, end time.Time) {
	start = StartOfDay(t, loc)
	return start, start.AddDate(0, 0, 1)
}

// SameCivilDay reports whether a and b fall on the same calendar date in loc.
func SameCivilDay(a, b time.Time, loc *time.Location) bool {
	al, bl := a.In(loc), b.In(loc)
	ay, am, ad := al.Date()
	by, bm, bd := bl.Date()
	return ay == by && am == bm && ad == bd
}
