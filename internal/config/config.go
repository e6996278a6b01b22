package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	JWTSecret          string
	Environment        string
	RunMigrations      bool
	RunSeed            bool
	SeedCompanyName    string
	SeedAdminEmail     string
	SeedAdminPassword  string
	SeedDemoEmployees  bool
	CORSAllowedOrigins []string
	MetricsEnabled     bool

	// Attendance engine tunables.
	BusinessTimezone     string
	RoundingMinutes      int
	MinLunchMinutes      int
	MinPreLunchMinutes   int
	LunchWindowStart     string
	LunchWindowEnd       string
	MaxDailyHours        float64
	LateToleranceMinutes int
}

func Load() Config {
	// A local .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		Environment:        getEnv("APP_ENV", "development"),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		RunSeed:            getEnvBool("RUN_SEED", true),
		SeedCompanyName:    getEnv("SEED_COMPANY_NAME", "Default Company"),
		SeedAdminEmail:     getEnv("SEED_ADMIN_EMAIL", ""),
		SeedAdminPassword:  getEnv("SEED_ADMIN_PASSWORD", ""),
		SeedDemoEmployees:  getEnvBool("SEED_DEMO_EMPLOYEES", false),
		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),

		BusinessTimezone:     getEnv("BUSINESS_TIMEZONE", "America/Sao_Paulo"),
		RoundingMinutes:      getEnvInt("ROUNDING_MINUTES", 5),
		MinLunchMinutes:      getEnvInt("MIN_LUNCH_MINUTES", 60),
		MinPreLunchMinutes:   getEnvInt("MIN_PRE_LUNCH_MINUTES", 60),
		LunchWindowStart:     getEnv("LUNCH_WINDOW_START", "11:00"),
		LunchWindowEnd:       getEnv("LUNCH_WINDOW_END", "15:00"),
		MaxDailyHours:        getEnvFloat("MAX_DAILY_HOURS", 10),
		LateToleranceMinutes: getEnvInt("LATE_TOLERANCE_MINUTES", 5),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" {
		if strings.TrimSpace(c.JWTSecret) == "" {
			return fmt.Errorf("JWT_SECRET must be set to a strong value in production")
		}
		if c.RunSeed && strings.TrimSpace(c.SeedAdminPassword) == "" {
			return fmt.Errorf("SEED_ADMIN_PASSWORD must be changed or RUN_SEED disabled in production")
		}
	}
	if _, err := time.LoadLocation(c.BusinessTimezone); err != nil {
		return fmt.Errorf("BUSINESS_TIMEZONE %q is not a valid IANA zone: %w", c.BusinessTimezone, err)
	}
	if c.RoundingMinutes < 0 {
		return fmt.Errorf("ROUNDING_MINUTES must not be negative")
	}
	if c.MinLunchMinutes < 0 || c.MinPreLunchMinutes < 0 {
		return fmt.Errorf("lunch minimums must not be negative")
	}
	if _, err := parseClock(c.LunchWindowStart); err != nil {
		return fmt.Errorf("LUNCH_WINDOW_START: %w", err)
	}
	if _, err := parseClock(c.LunchWindowEnd); err != nil {
		return fmt.Errorf("LUNCH_WINDOW_END: %w", err)
	}
	if c.MaxDailyHours < 0 {
		return fmt.Errorf("MAX_DAILY_HOURS must not be negative")
	}
	if c.LateToleranceMinutes < 0 {
		return fmt.Errorf("LATE_TOLERANCE_MINUTES must not be negative")
	}
	return nil
}

// LunchWindowMinutes returns the valid lunch window as minutes since midnight.
func (c Config) LunchWindowMinutes() (start, end int, err error) {
	start, err = parseClock(c.LunchWindowStart)
	if err != nil {
		return 0, 0, err
	}
	end, err = parseClock(c.LunchWindowEnd)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseClock(value string) (int, error) {
	parsed, err := time.Parse("15:04", strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("%q is not a valid HH:MM clock value", value)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}
