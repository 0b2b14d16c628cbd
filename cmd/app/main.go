package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"dispatch/cmd"
	apihttp "dispatch/internal/adapters/in/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config, err := cmd.LoadConfig(os.LookupEnv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Logs go to stderr so the console prompt on stdout stays readable.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: config.LogLevel}))
	slog.SetDefault(logger)

	app, err := cmd.NewCompositionRoot(config, logger)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run(ctx, app, config, logger)
}

func run(ctx context.Context, app *cmd.CompositionRoot, config cmd.Config, logger *slog.Logger) {
	jobManager, err := app.CreateJobManager()
	if err != nil {
		log.Fatalf("Failed to create jobs: %v", err)
	}
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	schedulerCtx, stopScheduler := context.WithCancel(context.Background())
	schedulerDone := make(chan struct{})
	go func() {
		defer close(schedulerDone)
		_ = app.Scheduler().Run(schedulerCtx)
	}()

	e := startWebServer(ctx, app, config.HTTPPort, logger)

	if config.ConsoleEnabled {
		go func() {
			if consoleErr := app.CreateConsoleReader(os.Stdout).Run(ctx, os.Stdin); consoleErr != nil {
				logger.Error("Console input failed", "error", consoleErr)
			}
		}()
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown failed", "error", err)
	}

	stopScheduler()
	<-schedulerDone

	if err = app.Tasks().Wait(shutdownCtx); err != nil {
		logger.Error("Shipments did not drain", "error", err, "in_flight", app.Tasks().InFlight())
	}

	jobManager.StopAll()
	logger.Info("BYE")
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	apihttp.RegisterHandlers(e, app.CreateHTTPServer(), app.MetricsHandler())

	go func() {
		logger.InfoContext(ctx, "HTTP server started", "port", port)
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()
	return e
}
