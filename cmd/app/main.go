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
	"time"

	"fulfillment/cmd"
	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))

	db, err := postgres.Open(configs.DatabaseSettings())
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err = postgres.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(
		configs,
		db,
		logger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = startWebServer(ctx, &app, configs.HTTPPort, logger); err != nil {
		log.Fatalf("web server: %v", err)
	}
}

func getConfigs() cmd.Config {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	config := cmd.Config{
		HTTPPort:   os.Getenv("HTTP_PORT"),
		DBDriver:   os.Getenv("DB_DRIVER"),
		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     os.Getenv("DB_PORT"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  os.Getenv("DB_SSLMODE"),
		SQLitePath: os.Getenv("SQLITE_PATH"),
		LogLevel:   os.Getenv("LOG_LEVEL"),
	}
	return config
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, port string, logger *slog.Logger) error {
	e := echo.New()
	e.HideBanner = true
	app.CreateHTTPServer(httpin.NewMetrics()).Register(e)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server starting", slog.String("port", port))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("http server stopping")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
