package punch

import "time"

// Type is one of the four attendance events an employee can register on a
// civil day, in their legal order.
type Type string

const (
	TypeClockIn  Type = "clock_in"
	TypeLunchOut Type = "lunch_out"
	TypeLunchIn  Type = "lunch_in"
	TypeClockOut Type = "clock_out"
)

func (t Type) Valid() bool {
	switch t {
	case TypeClockIn, TypeLunchOut, TypeLunchIn, TypeClockOut:
		return true
	}
	return false
}

func (t Type) Label() string {
	switch t {
	case TypeClockIn:
		return "clock-in"
	case TypeLunchOut:
		return "lunch-out"
	case TypeLunchIn:
		return "lunch-in"
	case TypeClockOut:
		return "clock-out"
	}
	return string(t)
}

const (
	OriginTerminal = "terminal"
	OriginManual   = "manual_admin"
)

// Punch is immutable once created; there are no updates or deletes.
type Punch struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	At            time.Time `json:"at"`
	Type          Type      `json:"type"`
	Justification string    `json:"justification,omitempty"`
	Origin        string    `json:"origin"`
	SourceIP      string    `json:"sourceIp,omitempty"`
}

// Result is what punch registration returns to the caller.
type Result struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	Type         Type      `json:"type"`
	At           time.Time `json:"at"`
}
