package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AsMaNick/RatingCalculator/internal/adapters/http/api"
	"github.com/AsMaNick/RatingCalculator/internal/adapters/sheets"
	app "github.com/AsMaNick/RatingCalculator/internal/app"
	"github.com/AsMaNick/RatingCalculator/internal/board"
	"github.com/AsMaNick/RatingCalculator/internal/config"
	"github.com/AsMaNick/RatingCalculator/internal/domain/judge"
	"github.com/AsMaNick/RatingCalculator/pkg/logger"
	"github.com/AsMaNick/RatingCalculator/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout            = 10 * time.Second
	writeTimeout           = 60 * time.Second
	idleTimeout            = 60 * time.Second
	readHeaderTimeout      = 5 * time.Second
	shutdownTimeout        = 30 * time.Second
	serviceMetricsInterval = 5 * time.Second
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	judges, err := parseJudges(cfg.Judges)
	if err != nil {
		os.Stderr.WriteString("invalid judges config: " + err.Error() + "\n")
		return
	}

	// The workbook the engine mutates. The in-memory store pre-creates the
	// sheets the cumulative table and coefficient lookup expect.
	store := sheets.NewMemoryStore(
		sheets.WithSheets(cfg.TableName, cfg.ConfigSheetName, cfg.LogSheetName),
	)

	b := board.New(store,
		board.WithLogger(log),
		board.WithTableName(cfg.TableName),
		board.WithConfigSheetName(cfg.ConfigSheetName),
		board.WithLogSheetName(cfg.LogSheetName),
		board.WithJudges(judges),
		board.WithRoundTypes(cfg.RoundTypes),
		board.WithCodeforcesListKey(cfg.CodeforcesListKey),
		board.WithMinFieldSize(cfg.MinFieldSize),
		board.WithDeltaIntensity(cfg.DeltaColorIntensity),
	)

	svc := app.New(
		app.WithLogger(log),
		app.WithStore(store),
		app.WithBoard(b),
		app.WithLockTimeout(time.Duration(cfg.LockTimeoutMS)*time.Millisecond),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}
	defer svc.Stop()

	// Start service metrics updater
	go startServiceMetricsUpdater(ctx, svc)

	// HTTP mux and routes.
	mux := http.NewServeMux()
	apiServer := api.NewServer(svc, svc, cfg.MaxLeaderboardLimit)
	apiServer.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			return
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}

// parseJudges validates the configured judge order.
func parseJudges(names []string) ([]judge.Judge, error) {
	judges := make([]judge.Judge, 0, len(names))
	for _, name := range names {
		j, err := judge.Parse(name)
		if err != nil {
			return nil, err
		}
		judges = append(judges, j)
	}
	return judges, nil
}

// startServiceMetricsUpdater refreshes the roster and contest gauges from
// service stats on a fixed interval.
func startServiceMetricsUpdater(ctx context.Context, svc *app.Service) {
	ticker := time.NewTicker(serviceMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateServiceMetrics(svc)
		}
	}
}

// updateServiceMetrics updates service-level metrics.
func updateServiceMetrics(svc *app.Service) {
	stats := svc.GetStats()

	if rosterSize, ok := stats["rosterSize"].(int); ok {
		metrics.UpdateRosterSize(rosterSize)
	}
	if contests, ok := stats["contests"].(int); ok {
		metrics.UpdateContestColumns(contests)
	}
}
