package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atelier/cmd"
	httpadapter "atelier/internal/adapters/in/http"
	_ "atelier/internal/adapters/in/http/docs"
	"atelier/internal/adapters/out/postgres/migrations"
	"atelier/internal/pkg/logger"

	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  configs.LogLevel,
		Format: configs.LogFormat,
		Output: configs.LogOutput,
	})
	defer func() { _ = log.Sync() }()

	if err = run(configs, log); err != nil {
		log.Fatal("application stopped", zap.Error(err))
	}
}

func run(configs cmd.Config, log *zap.Logger) error {
	if configs.MigrationsEnable {
		if err := migrate(configs.DSN(), log); err != nil {
			return err
		}
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(configs.DSN()), &gorm.Config{
		Logger:         logger.NewGormLogger(log, logger.GormLevel(configs.DBLogLevel), configs.DBSlowQuery),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, log, nil)

	if configs.JobsEnabled {
		jobManager := app.CreateJobManager()
		if err = jobManager.StartAll(); err != nil {
			return err
		}
		defer jobManager.StopAll()
	}

	return startWebServer(app, configs.HTTPPort, log)
}

func migrate(dsn string, log *zap.Logger) error {
	migrator, err := migrations.New(dsn, log)
	if err != nil {
		return err
	}
	defer func() { _ = migrator.Close() }()
	return migrator.Up()
}

func startWebServer(app cmd.CompositionRoot, port string, log *zap.Logger) error {
	e := httpadapter.NewEcho(log)
	app.CreateHTTPServer().Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
