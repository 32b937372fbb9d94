package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/pgstay/booking/internal/application/service"
	"github.com/pgstay/booking/internal/config"
	"github.com/pgstay/booking/internal/infrastructure/persistence/repository"
	"github.com/pgstay/booking/internal/infrastructure/sheets"
	httpadapter "github.com/pgstay/booking/internal/interfaces/http"
	"github.com/pgstay/booking/pkg/database"
	"github.com/pgstay/booking/pkg/utils"
)

func main() {
	// Local overrides from .env, if present
	_ = gotenv.Load()

	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting PG booking service",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

	// Initialize database
	db, err := database.New(database.Config{
		Path:            cfg.Database.Path,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}, logger)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	// Open the register workbook
	register, err := sheets.NewRegister(cfg.Register.WorkbookPath, logger)
	if err != nil {
		logger.Fatal("Failed to open register workbook",
			zap.String("path", cfg.Register.WorkbookPath), zap.Error(err))
	}

	// Initialize repositories and services
	bookingRepo := repository.NewBookingRepository(db.DB, logger)
	kvLogger := utils.NewKVLogger(logger)

	referenceService := service.NewReferenceService(register, kvLogger)
	sessionService := service.NewSessionService(register, kvLogger)
	bookingService := service.NewBookingService(bookingRepo, register, kvLogger)

	// Initialize HTTP server
	server := httpadapter.NewServer(httpadapter.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, referenceService, sessionService, bookingService, kvLogger)

	// Run until interrupted
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
