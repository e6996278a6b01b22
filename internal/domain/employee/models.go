package employee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string           `json:"id"`
	CompanyID    string           `json:"companyId"`
	Name         string           `json:"name"`
	PINHash      string           `json:"-"`
	NationalID   string           `json:"nationalId,omitempty"`
	Email        string           `json:"email,omitempty"`
	ScheduleKind ScheduleKind     `json:"scheduleKind"`
	ShiftStart   *TimeOfDay       `json:"shiftStart,omitempty"`
	ShiftEnd     *TimeOfDay       `json:"shiftEnd,omitempty"`
	HourlyRate   *decimal.Decimal `json:"hourlyRate,omitempty"`
	Active       bool             `json:"active"`
	Deleted      bool             `json:"-"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// CanPunch reports whether the employee may register attendance events.
func (e Employee) CanPunch() bool {
	return e.Active && !e.Deleted
}

// TimeOfDay is a civil time of day stored as minutes since local midnight.
type TimeOfDay int

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid HH:MM time of day", value)
	}
	return TimeOfDay(parsed.Hour()*60 + parsed.Minute()), nil
}

func (t TimeOfDay) Minutes() int {
	return int(t)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// On anchors the time of day to the civil day containing day, in day's location.
func (t TimeOfDay) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), int(t)/60, int(t)%60, 0, 0, day.Location())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	raw := string(data)
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return fmt.Errorf("time of day must be a %q string", "HH:MM")
	}
	parsed, err := ParseTimeOfDay(raw[1 : len(raw)-1])
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
