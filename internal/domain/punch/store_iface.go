package punch

import (
	"context"
	"time"

	"ponto/internal/domain/employee"
)

// StoreAPI is the punch persistence contract. Listing accepts any order from
// the store; the service and the report engine sort what they need.
type StoreAPI interface {
	// ListEmployeeRange returns the employee's punches with at in [from, to).
	ListEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)
	// Append persists a punch atomically and returns it with its id set.
	Append(ctx context.Context, p Punch) (Punch, error)
	// ExistsExact reports whether an identical (employee, type, instant) punch exists.
	ExistsExact(ctx context.Context, employeeID string, t Type, at time.Time) (bool, error)
}

// Directory is the slice of the employee registry the state machine needs.
type Directory interface {
	ByID(ctx context.Context, id string) (employee.Employee, error)
	ByName(ctx context.Context, name string) (employee.Employee, error)
}
