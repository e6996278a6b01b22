package punch

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

var _ StoreAPI = (*Store)(nil)

func (s *Store) ListEmployeeRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, punched_at, type, COALESCE(justification, ''), origin, COALESCE(source_ip, '')
    FROM punches
    WHERE employee_id = $1 AND punched_at >= $2 AND punched_at < $3
    ORDER BY punched_at
  `, employeeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var punches []Punch
	for rows.Next() {
		var p Punch
		var kind string
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.At, &kind, &p.Justification, &p.Origin, &p.SourceIP); err != nil {
			return nil, err
		}
		p.Type = Type(kind)
		punches = append(punches, p)
	}
	return punches, rows.Err()
}

func (s *Store) Append(ctx context.Context, p Punch) (Punch, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO punches (employee_id, punched_at, type, justification, origin, source_ip)
    VALUES ($1,$2,$3,NULLIF($4,''),$5,NULLIF($6,''))
    RETURNING id
  `, p.EmployeeID, p.At, string(p.Type), p.Justification, p.Origin, p.SourceIP).Scan(&p.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return Punch{}, ErrConflict
		}
		return Punch{}, err
	}
	return p, nil
}

func (s *Store) ExistsExact(ctx context.Context, employeeID string, t Type, at time.Time) (bool, error) {
	var count int
	err := s.DB.QueryRow(ctx, `
    SELECT COUNT(1) FROM punches
    WHERE employee_id = $1 AND type = $2 AND punched_at = $3
  `, employeeID, string(t), at).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
