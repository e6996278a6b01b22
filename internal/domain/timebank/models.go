package timebank

import "time"

const SourceManual = "manual"

// Entry is a manual ledger line. Entries are created once, dated on the civil
// day of creation, and never mutated; the report engine never writes them.
type Entry struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	Minutes    int       `json:"minutes"`
	Reason     string    `json:"reason"`
	Source     string    `json:"source"`
	CreatedAt  time.Time `json:"createdAt"`
}
