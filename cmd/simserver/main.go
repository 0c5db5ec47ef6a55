package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/runemist/runemist/internal/ai"
	"github.com/runemist/runemist/internal/config"
	"github.com/runemist/runemist/internal/data"
	"github.com/runemist/runemist/internal/model"
	"github.com/runemist/runemist/internal/sim"
)

const ConfigPath = "config/simserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("RUNEMIST_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logLevel := parseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	ai.EnableDebugLogging(cfg.AIDebug || logLevel == slog.LevelDebug)

	slog.Info("simulation server starting", "log_level", cfg.LogLevel)

	store := data.NewStore()
	core := sim.New(cfg, store)

	for _, sp := range defaultSpawnPoints() {
		core.AddSpawnPoint(sp)
	}
	if err := core.SpawnAll(); err != nil {
		return fmt.Errorf("initial spawn: %w", err)
	}

	return core.Run(ctx)
}

// defaultSpawnPoints lays out a small starting area: passive rats near
// the center, aggressive goblins and a guard patrol further out.
func defaultSpawnPoints() []*model.SpawnPoint {
	return []*model.SpawnPoint{
		model.NewSpawnPoint(1, 1, model.Location{X: 10, Y: 10}, 15),
		model.NewSpawnPoint(2, 1, model.Location{X: -12, Y: 8}, 15),
		model.NewSpawnPoint(3, 2, model.Location{X: 40, Y: 35}, 30),
		model.NewSpawnPoint(4, 2, model.Location{X: 48, Y: 30}, 30),
		model.NewSpawnPoint(5, 2, model.Location{X: 44, Y: 44}, 30),
		model.NewSpawnPoint(6, 3, model.Location{X: -60, Y: 20}, 60),
		model.NewSpawnPoint(7, 4, model.Location{X: 90, Y: -40}, 120),
		model.NewSpawnPoint(8, 5, model.Location{X: 70, Y: 65}, 45),
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
