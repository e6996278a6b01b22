package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"ponto/internal/config"
	"ponto/internal/db"
	"ponto/internal/domain/employee"
	"ponto/internal/domain/punch"
	"ponto/internal/domain/report"
	"ponto/internal/domain/timebank"
	"ponto/internal/platform/clock"
	"ponto/internal/platform/metrics"
	"ponto/internal/transport/http/api"
	authhandler "ponto/internal/transport/http/handlers/auth"
	employeehandler "ponto/internal/transport/http/handlers/employee"
	punchhandler "ponto/internal/transport/http/handlers/punch"
	reporthandler "ponto/internal/transport/http/handlers/report"
	timebankhandler "ponto/internal/transport/http/handlers/timebank"
	"ponto/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.BusinessTimezone != db.PunchDayIndexZone {
		log.Printf("WARNING: BUSINESS_TIMEZONE %q differs from the zone %q baked into the punch day-uniqueness index; rebuild the index or duplicate punches near midnight may slip through", cfg.BusinessTimezone, db.PunchDayIndexZone)
	}

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	businessClock, err := clock.NewBusiness(cfg.BusinessTimezone)
	if err != nil {
		log.Fatalf("business timezone: %v", err)
	}

	collector := metrics.New()

	employeeStore := employee.NewStore(pool)
	punchStore := punch.NewStore(pool)
	punchService := punch.NewService(employeeStore, punchStore, businessClock, punch.Rules{
		MinPreLunchMinutes: cfg.MinPreLunchMinutes,
		MinLunchMinutes:    cfg.MinLunchMinutes,
	})

	reportRules, err := reportRulesFromConfig(cfg, businessClock)
	if err != nil {
		log.Fatalf("report rules: %v", err)
	}
	reportService := report.NewService(report.NewStore(pool), reportRules)

	timebankService := timebank.NewService(timebank.NewStore(pool), businessClock)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics(collector))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))
	router.Use(middleware.Auth(cfg.JWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(pool, cfg.JWTSecret).RegisterRoutes(r)
		punchhandler.NewHandler(punchService, punchStore, businessClock, collector).RegisterRoutes(r)
		reporthandler.NewHandler(reportService).RegisterRoutes(r)
		timebankhandler.NewHandler(timebankService, businessClock).RegisterRoutes(r)
		employeehandler.NewHandler(employeeStore).RegisterRoutes(r)
	})

	log.Printf("attendance server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

func reportRulesFromConfig(cfg config.Config, clk clock.Clock) (report.Rules, error) {
	windowStart, windowEnd, err := cfg.LunchWindowMinutes()
	if err != nil {
		return report.Rules{}, err
	}
	return report.Rules{
		RoundingMinutes:      cfg.RoundingMinutes,
		MinLunchMinutes:      cfg.MinLunchMinutes,
		LunchWindowStart:     employee.TimeOfDay(windowStart),
		LunchWindowEnd:       employee.TimeOfDay(windowEnd),
		MaxDailyHours:        cfg.MaxDailyHours,
		LateToleranceMinutes: cfg.LateToleranceMinutes,
		Location:             clk.Location(),
	}, nil
}
