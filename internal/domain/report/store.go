package report

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"ponto/internal/domain/employee"
	"ponto/internal/domain/punch"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

var _ StoreAPI = (*Store)(nil)

// Rows fetches punches joined with schedule data for active employees in
// [from, to). An empty employeeID means all employees.
func (s *Store) Rows(ctx context.Context, from, to time.Time, employeeID string) ([]Row, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT e.id, e.name, e.schedule_kind, e.shift_start_minutes, e.shift_end_minutes, e.hourly_rate::text,
           p.punched_at, p.type
    FROM punches p
    JOIN employees e ON p.employee_id = e.id
    WHERE p.punched_at >= $1 AND p.punched_at < $2
      AND e.active AND NOT e.deleted
      AND ($3 = '' OR e.id::text = $3)
    ORDER BY e.id, p.punched_at
  `, from, to, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var r Row
		var kind, punchType string
		var shiftStart, shiftEnd *int
		var rate *string
		if err := rows.Scan(&r.EmployeeID, &r.EmployeeName, &kind, &shiftStart, &shiftEnd, &rate, &r.At, &punchType); err != nil {
			return nil, err
		}
		r.Kind = employee.ScheduleKind(kind)
		r.Type = punch.Type(punchType)
		if shiftStart != nil {
			tod := employee.TimeOfDay(*shiftStart)
			r.ShiftStart = &tod
		}
		if shiftEnd != nil {
			tod := employee.TimeOfDay(*shiftEnd)
			r.ShiftEnd = &tod
		}
		if rate != nil {
			parsed, err := decimal.NewFromString(*rate)
			if err != nil {
				return nil, err
			}
			r.HourlyRate = &parsed
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Marks fetches bare punch marks for the day mirror.
func (s *Store) Marks(ctx context.Context, from, to time.Time, employeeID string) ([]MirrorMark, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT p.type, p.punched_at
    FROM punches p
    JOIN employees e ON p.employee_id = e.id
    WHERE p.punched_at >= $1 AND p.punched_at < $2
      AND e.active AND NOT e.deleted
      AND ($3 = '' OR e.id::text = $3)
    ORDER BY p.punched_at
  `, from, to, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MirrorMark
	for rows.Next() {
		var m MirrorMark
		var punchType string
		if err := rows.Scan(&punchType, &m.At); err != nil {
			return nil, err
		}
		m.Type = punch.Type(punchType)
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Store) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	var name string
	err := s.DB.QueryRow(ctx, `SELECT name FROM employees WHERE id::text = $1`, employeeID).Scan(&name)
	return name, err
}
