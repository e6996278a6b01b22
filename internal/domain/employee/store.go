package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
  id, company_id, name, pin_hash, national_id, email, schedule_kind,
  shift_start_minutes, shift_end_minutes, hourly_rate::text, active, deleted, created_at
`

func (s *Store) List(ctx context.Context, companyID string) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE company_id = $1 AND NOT deleted
    ORDER BY name
  `, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) ByID(ctx context.Context, id string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE id = $1
  `, id)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

// ByName resolves the active employee who identifies at the punch terminal.
// PIN verification happens against the returned hash, never in SQL.
func (s *Store) ByName(ctx context.Context, name string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
    SELECT `+employeeColumns+`
    FROM employees
    WHERE name = $1 AND active AND NOT deleted
  `, name)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

func (s *Store) Create(ctx context.Context, companyID string, payload Employee) (string, error) {
	var shiftStart, shiftEnd *int
	if payload.ShiftStart != nil {
		minutes := payload.ShiftStart.Minutes()
		shiftStart = &minutes
	}
	if payload.ShiftEnd != nil {
		minutes := payload.ShiftEnd.Minutes()
		shiftEnd = &minutes
	}
	var rate *string
	if payload.HourlyRate != nil {
		value := payload.HourlyRate.String()
		rate = &value
	}

	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees (company_id, name, pin_hash, national_id, email, schedule_kind, shift_start_minutes, shift_end_minutes, hourly_rate)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9::numeric)
    RETURNING id
  `, companyID, payload.Name, payload.PINHash, payload.NationalID, payload.Email, string(payload.ScheduleKind), shiftStart, shiftEnd, rate).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrNameInUse
		}
		return "", err
	}
	return id, nil
}

func (s *Store) Deactivate(ctx context.Context, companyID, id string) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET active = false
    WHERE company_id = $1 AND id = $2 AND NOT deleted
  `, companyID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (Employee, error) {
	var emp Employee
	var kind string
	var shiftStart, shiftEnd *int
	var rate *string
	err := row.Scan(
		&emp.ID, &emp.CompanyID, &emp.Name, &emp.PINHash, &emp.NationalID, &emp.Email, &kind,
		&shiftStart, &shiftEnd, &rate, &emp.Active, &emp.Deleted, &emp.CreatedAt,
	)
	if err != nil {
		return Employee{}, err
	}
	emp.ScheduleKind = ScheduleKind(kind)
	if shiftStart != nil {
		tod := TimeOfDay(*shiftStart)
		emp.ShiftStart = &tod
	}
	if shiftEnd != nil {
		tod := TimeOfDay(*shiftEnd)
		emp.ShiftEnd = &tod
	}
	if rate != nil {
		parsed, err := decimal.NewFromString(*rate)
		if err != nil {
			return Employee{}, err
		}
		emp.HourlyRate = &parsed
	}
	return emp, nil
}
