package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"campdash/internal/adapter/http"
	"campdash/internal/adapter/usecase"
	"campdash/internal/app"
	"campdash/internal/config"
)

// main is the entry point of the campaign dashboard. It loads configuration,
// reads and aggregates the campaign source once, then serves the dashboard
// until a termination signal arrives. Any load failure exits non-zero before
// the server starts.
func main() {
	os.Exit(run())
}

func run() int {
	dataPath := flag.String("data", "", "campaign CSV file; overrides SOURCE_CSV_PATH")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return 1
	}
	if *dataPath != "" {
		cfg.Source.CSVPath = *dataPath
	}
	if err = cfg.Validate(); err != nil {
		slog.Error("invalid config", slog.Any("error", err))
		return 1
	}

	logger := cfg.Log.NewLogger(os.Stdout)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	src, closeSrc, err := app.NewSource(ctx, cfg, logger)
	if err != nil {
		logger.Error("source error", slog.Any("error", err))
		return 1
	}
	defer closeSrc()

	svc := usecase.NewDashboardUseCase(src, logger)
	dash, err := svc.Load(ctx)
	if err != nil {
		logger.Error("load campaigns error", slog.String("source", src.Name()), slog.Any("error", err))
		return 1
	}

	handler, err := httpadapter.NewHandler(svc, dash, httpadapter.Options{
		Title:       cfg.Dashboard.Title,
		PageSize:    cfg.Dashboard.PageSize,
		ChartWidth:  cfg.Dashboard.ChartWidth,
		ChartHeight: cfg.Dashboard.ChartHeight,
	}, logger)
	if err != nil {
		logger.Error("handler error", slog.Any("error", err))
		return 1
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
		return 1
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return 1
	}
	logger.Info("server gracefully stopped")
	return 0
}
