package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/subosito/gotenv"
	"go.uber.org/zap"

	"github.com/dcexperts/dcaudit/internal/config"
	"github.com/dcexperts/dcaudit/internal/email"
	"github.com/dcexperts/dcaudit/internal/evaluation"
	httpserver "github.com/dcexperts/dcaudit/internal/interfaces/http"
	"github.com/dcexperts/dcaudit/internal/questionnaire"
	"github.com/dcexperts/dcaudit/internal/report"
	"github.com/dcexperts/dcaudit/internal/repository"
	"github.com/dcexperts/dcaudit/pkg/database"
	"github.com/dcexperts/dcaudit/pkg/utils"
)

func main() {
	// Local overrides (SMTP credentials etc.) from .env when present.
	_ = gotenv.Load()

	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

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

	logger.Info("Starting datacenter audit server",
		zap.String("version", "1.0.0"),
		zap.Int("port", cfg.Server.Port))

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

	migrator := database.NewMigrator(db, logger)
	if err := migrator.RunMigrations(cfg.Database.MigrationsDir); err != nil {
		logger.Fatal("Failed to run database migrations", zap.Error(err))
	}

	catalog := questionnaire.NewCatalog()
	evaluator := evaluation.NewStandardsEvaluator()
	excelGenerator := report.NewExcelGenerator(cfg.Report.OutputDir, logger)
	auditRepo := repository.NewAuditRepository(db.DB, logger)

	var sender *email.Sender
	if cfg.Email.Host != "" {
		sender = email.NewSender(email.Config{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.From,
		}, logger)
	} else {
		logger.Info("Email delivery disabled: no SMTP host configured")
	}

	server := httpserver.NewServer(
		httpserver.ServerConfig{
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		db,
		catalog,
		evaluator,
		excelGenerator,
		auditRepo,
		sender,
		httpserver.NewZapLogger(logger),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Fatal("HTTP server failed", zap.Error(err))
	}

	logger.Info("Server exited successfully")
}
