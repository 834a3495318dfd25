package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"hrms/internal/config"
	"hrms/internal/db"
	"hrms/internal/domain/attendance"
	"hrms/internal/domain/employee"
	"hrms/internal/domain/guard"
	"hrms/internal/domain/leave"
	"hrms/internal/domain/performance"
	"hrms/internal/domain/recruitment"
	"hrms/internal/domain/training"
	attendancehandler "hrms/internal/transport/http/handlers/attendance"
	employeehandler "hrms/internal/transport/http/handlers/employee"
	leavehandler "hrms/internal/transport/http/handlers/leave"
	performancehandler "hrms/internal/transport/http/handlers/performance"
	recruitmenthandler "hrms/internal/transport/http/handlers/recruitment"
	traininghandler "hrms/internal/transport/http/handlers/training"
	"hrms/internal/transport/http/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("dotenv load failed", "err", err)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}

	refs := guard.New(pool)

	employeeSvc := employee.NewService(employee.NewStore(pool), refs, cfg.DocumentDir)
	recruitmentSvc := recruitment.NewService(recruitment.NewStore(pool), refs)
	performanceSvc := performance.NewService(performance.NewStore(pool), refs)
	trainingSvc := training.NewService(training.NewStore(pool), refs)
	attendanceSvc := attendance.NewService(attendance.NewStore(pool), refs)
	leaveSvc := leave.NewService(leave.NewStore(pool), refs)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

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

	router.Route("/api/v1", func(r chi.Router) {
		employeehandler.NewHandler(employeeSvc).RegisterRoutes(r)
		recruitmenthandler.NewHandler(recruitmentSvc).RegisterRoutes(r)
		performancehandler.NewHandler(performanceSvc).RegisterRoutes(r)
		traininghandler.NewHandler(trainingSvc).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceSvc).RegisterRoutes(r)
		leavehandler.NewHandler(leaveSvc).RegisterRoutes(r)
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}

// spaHandler serves the dashboard build, falling back to index.html
// for client-side routes.
type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
