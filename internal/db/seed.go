package db

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"ponto/internal/auth"
	"ponto/internal/config"
)

// Seed provisions the company and admin user a fresh deployment needs to log
// in, plus optional demo employees for development. It is idempotent.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	var companyID string
	if err := pool.QueryRow(ctx, `
    INSERT INTO companies (name)
    VALUES ($1)
    ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
    RETURNING id
  `, cfg.SeedCompanyName).Scan(&companyID); err != nil {
		return err
	}

	if cfg.SeedAdminEmail != "" && cfg.SeedAdminPassword != "" {
		hash, err := auth.HashPassword(cfg.SeedAdminPassword)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO users (company_id, email, password_hash, role, active)
      VALUES ($1, $2, $3, $4, true)
      ON CONFLICT (email) DO NOTHING
    `, companyID, cfg.SeedAdminEmail, hash, auth.RoleAdmin); err != nil {
			return err
		}
	} else {
		log.Println("seed: no admin credentials configured, skipping admin user")
	}

	if cfg.SeedDemoEmployees {
		return seedDemoEmployees(ctx, pool, companyID)
	}
	return nil
}

func seedDemoEmployees(ctx context.Context, pool *pgxpool.Pool, companyID string) error {
	demo := []struct {
		name string
		pin  string
		kind string
	}{
		{"Ana Lima", "1001", "integral"},
		{"Bruno Souza", "1002", "parcial"},
		{"Carla Mendes", "1003", "estagiario"},
	}
	for _, d := range demo {
		pinHash, err := auth.HashPassword(d.pin)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, `
      INSERT INTO employees (company_id, name, pin_hash, schedule_kind, shift_start_minutes, shift_end_minutes, active)
      VALUES ($1, $2, $3, $4, 480, 1020, true)
      ON CONFLICT (company_id, name) DO NOTHING
    `, companyID, d.name, pinHash, d.kind); err != nil {
			return err
		}
	}
	return nil
}
