package timebank

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

var _ StoreAPI = (*Store)(nil)

func (s *Store) SumRange(ctx context.Context, employeeID string, from, to time.Time) (int, error) {
	var total int
	err := s.DB.QueryRow(ctx, `
    SELECT COALESCE(SUM(minutes), 0)
    FROM time_bank_entries
    WHERE employee_id = $1 AND entry_date >= $2::date AND entry_date <= $3::date
  `, employeeID, from, to).Scan(&total)
	return total, err
}

func (s *Store) ListRange(ctx context.Context, employeeID string, from, to time.Time) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, entry_date, minutes, reason, source, created_at
    FROM time_bank_entries
    WHERE employee_id = $1 AND entry_date >= $2::date AND entry_date <= $3::date
    ORDER BY entry_date, created_at
  `, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.Date, &e.Minutes, &e.Reason, &e.Source, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) Append(ctx context.Context, entry Entry) (Entry, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO time_bank_entries (employee_id, entry_date, minutes, reason, source)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id, created_at
  `, entry.EmployeeID, entry.Date, entry.Minutes, entry.Reason, entry.Source).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return Entry{}, err
	}
	return entry, nil
}

func (s *Store) PunchTimes(ctx context.Context, employeeID string, from, to time.Time) ([]time.Time, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT punched_at
    FROM punches
    WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3
    ORDER BY punched_at
  `, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, err
		}
		times = append(times, at)
	}
	return times, rows.Err()
}
