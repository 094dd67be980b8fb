package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Siddaarth-Babu/MOOC/internal/config"
	"github.com/Siddaarth-Babu/MOOC/internal/database"
	"github.com/Siddaarth-Babu/MOOC/internal/handler"
	"github.com/Siddaarth-Babu/MOOC/internal/logger"
	"github.com/Siddaarth-Babu/MOOC/internal/repository"
	"github.com/Siddaarth-Babu/MOOC/internal/router"
	"github.com/Siddaarth-Babu/MOOC/internal/service"
	"github.com/Siddaarth-Babu/MOOC/internal/validator"
	"github.com/rs/zerolog"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting MOOC Backend")

	// A missing signing secret would make every issued token forgeable
	// with an empty key. Refuse to start.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("SECRET_KEY is not set")
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	studentRepo := repository.NewStudentRepository(pool)
	instructorRepo := repository.NewInstructorRepository(pool)
	analystRepo := repository.NewAnalystRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	universityRepo := repository.NewUniversityRepository(pool)
	topicRepo := repository.NewTopicRepository(pool)
	materialRepo := repository.NewMaterialRepository(pool)
	assignmentRepo := repository.NewAssignmentRepository(pool)
	evaluationRepo := repository.NewEvaluationRepository(pool)
	reportRepo := repository.NewReportRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg)
	accountService := service.NewAccountService(pool, cfg, authService, log)
	studentService := service.NewStudentService(studentRepo, courseRepo, materialRepo, assignmentRepo, evaluationRepo, universityRepo)
	instructorService := service.NewInstructorService(courseRepo, materialRepo, assignmentRepo, evaluationRepo)
	statsService := service.NewStatsService(reportRepo, rdb, cfg.StatsCacheTTL)
	adminService := service.NewAdminService(studentRepo, instructorRepo, analystRepo, courseRepo, universityRepo, topicRepo)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(accountService),
		Student:    handler.NewStudentHandler(studentService),
		Instructor: handler.NewInstructorHandler(instructorService),
		Analyst:    handler.NewAnalystHandler(statsService),
		Admin:      handler.NewAdminHandler(adminService, statsService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, accountService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
