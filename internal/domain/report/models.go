package report

import (
	"time"

	"github.com/shopspring/decimal"

	"ponto/internal/domain/employee"
	"ponto/internal/domain/punch"
)

// Row is one punch joined with the schedule data of its employee, the unit the
// aggregation engine consumes.
type Row struct {
	EmployeeID   string
	EmployeeName string
	Kind         employee.ScheduleKind
	ShiftStart   *employee.TimeOfDay
	ShiftEnd     *employee.TimeOfDay
	HourlyRate   *decimal.Decimal
	At           time.Time
	Type         punch.Type
}

// Interval is a reconstructed work span within one civil day. Out is nil for a
// span left open by a missing closing punch; such spans contribute nothing to
// the day's total.
type Interval struct {
	In      time.Time  `json:"in"`
	Out     *time.Time `json:"out,omitempty"`
	Minutes int        `json:"minutes"`
}

type Day struct {
	Day                 time.Time  `json:"day"`
	EmployeeID          string     `json:"employeeId"`
	EmployeeName        string     `json:"employeeName"`
	Intervals           []Interval `json:"intervals"`
	WorkedMinutes       int        `json:"workedMinutes"`
	LunchDeficitMinutes int        `json:"lunchDeficitMinutes"`
	LunchOutAt          *time.Time `json:"lunchOutAt,omitempty"`
	LunchInAt           *time.Time `json:"lunchInAt,omitempty"`
	OvertimeMinutes     int        `json:"overtimeMinutes"`
	LatenessMinutes     int        `json:"latenessMinutes"`
	BankDeltaMinutes    int        `json:"bankDeltaMinutes"`
	Occurrences         []string   `json:"occurrences"`
}

type Summary struct {
	Start              time.Time        `json:"start"`
	End                time.Time        `json:"end"`
	EmployeeID         string           `json:"employeeId,omitempty"`
	EmployeeName       string           `json:"employeeName,omitempty"`
	Days               []Day            `json:"days"`
	TotalWorkedMinutes int              `json:"totalWorkedMinutes"`
	BankMinutes        int              `json:"bankMinutes"`
	EstimatedPay       *decimal.Decimal `json:"estimatedPay,omitempty"`
}

// Mirror types back the raw-marks timesheet screen.
type MirrorMark struct {
	Type punch.Type `json:"type"`
	At   time.Time  `json:"at"`
}

type MirrorDay struct {
	Day   time.Time    `json:"day"`
	Marks []MirrorMark `json:"marks"`
}
