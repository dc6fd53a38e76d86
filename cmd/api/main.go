package main

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"clinicapi/docs"
	"clinicapi/internal/assistant"
	"clinicapi/internal/config"
	"clinicapi/internal/database"
	"clinicapi/internal/database/migration"
	handlers "clinicapi/internal/http/handler"
	"clinicapi/internal/http/middleware"
	"clinicapi/internal/logging"
	"clinicapi/internal/model"
	"clinicapi/internal/otel"
	"clinicapi/internal/remote"
	"clinicapi/internal/repository"
	"clinicapi/internal/repository/local"
	"clinicapi/internal/repository/postgres"
	"clinicapi/internal/seed"
	"clinicapi/internal/service"
	"clinicapi/internal/storage"
)

// @title Clinic API
// @version 1.0
// @description Patient records, digital files, treatment timeline and AI diagnosis assistant.
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := cfg.Location()
	logger := logging.New(os.Stdout, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logging.Component(logger, "otel"))
	if err != nil {
		logger.Fatal().Err(err).Msg("tracing_init_failed")
	}

	logger.Info().
		Bool("remote_storage", cfg.Features.RemoteStorage).
		Bool("database", cfg.Features.Database).
		Bool("auth", cfg.Features.Auth).
		Msg("features_resolved")

	repoLog := logging.Component(logger, "repository")

	provider, err := newRemoteProvider(ctx, cfg, logging.Component(logger, "remote"))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize object storage")
	}

	patientRepo := local.NewPatients(
		storage.NewJSONFile(cfg.Storage.PatientsFile, func() []model.Patient { return []model.Patient{} }),
		cfg.Features,
		repoLog,
	)
	fileRepo := local.NewFiles(
		storage.NewJSONFile(cfg.Storage.FilesFile, func() model.FilesIndex { return model.FilesIndex{} }),
		provider,
		repoLog,
	)

	// Treatments move to PostgreSQL when DATABASE_URL is set; patients and files stay on the local store.
	var db *sql.DB
	var treatmentRepo repository.TreatmentRepository
	if cfg.Features.Database {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to database")
		}
		defer db.Close()
		if err := migration.EnsureMigrated(ctx, db, logging.Component(logger, "database")); err != nil {
			logger.Fatal().Err(err).Msg("failed to migrate database")
		}
		treatmentRepo = postgres.NewTreatmentPostgres(db)
	} else {
		treatmentRepo = local.NewTreatments(
			storage.NewJSONFile(cfg.Storage.TreatmentsFile, func() []model.Treatment { return []model.Treatment{} }),
		)
	}

	if cfg.SeedDemoData {
		if _, err := seed.Patients(ctx, patientRepo, logging.Component(logger, "seed")); err != nil {
			logger.Fatal().Err(err).Msg("failed to seed demo data")
		}
	}

	var suggester service.Suggester
	a, err := assistant.NewGenAI(ctx, cfg.GenAI)
	switch {
	case errors.Is(err, assistant.ErrNotConfigured):
		logger.Warn().Msg("diagnosis assistant disabled; GEMINI_API_KEY is not set")
	case err != nil:
		logger.Fatal().Err(err).Msg("failed to initialize diagnosis assistant")
	default:
		suggester = a
	}

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to register metrics")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logging.Component(logger, "http")))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Dependencies{
		DB:         db,
		Features:   cfg.Features,
		Gatherer:   prometheus.DefaultGatherer,
		Patients:   service.NewPatientService(patientRepo),
		Files:      service.NewFileService(fileRepo),
		Treatments: service.NewTreatmentService(patientRepo, treatmentRepo, loc),
		Diagnosis:  service.NewDiagnosisService(patientRepo, suggester, logging.Component(logger, "diagnosis")),
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("server_started")
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("failed to start server")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutdown_requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server_shutdown_failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("tracing_shutdown_failed")
	}
}

// newRemoteProvider picks the remote file backend once at startup.
// nil disables remote storage; MinIO is used when configured, the fixture provider otherwise.
func newRemoteProvider(ctx context.Context, cfg *config.AppConfig, log zerolog.Logger) (remote.Provider, error) {
	if !cfg.Features.RemoteStorage {
		return nil, nil
	}
	if !cfg.MinIO.Configured() {
		log.Warn().Msg("remote storage enabled without MinIO settings; serving fixture files")
		return remote.NewFixture(log), nil
	}
	store, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return nil, err
	}
	expiry := time.Duration(cfg.Remote.URLExpirySec) * time.Second
	return remote.NewObjectProvider(store, expiry, log), nil
}
