package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	v1 "github.com/vmunix/watchlist/internal/api/v1"
	"github.com/vmunix/watchlist/internal/config"
	"github.com/vmunix/watchlist/internal/library"
	"github.com/vmunix/watchlist/internal/media"
	"github.com/vmunix/watchlist/internal/metadata"
	"github.com/vmunix/watchlist/internal/migrations"
	"github.com/vmunix/watchlist/internal/poster"
	"github.com/vmunix/watchlist/internal/server"
	"github.com/vmunix/watchlist/internal/settings"
	"github.com/vmunix/watchlist/internal/tmdb"
	"github.com/vmunix/watchlist/internal/web"
)

const posterPruneInterval = time.Hour

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// openDB opens the SQLite database at path and brings its schema up to date.
func openDB(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// buildHandler wires stores, providers and both HTTP surfaces onto one mux.
func buildHandler(cfg *config.Config, configPath string, db *sql.DB, logger *slog.Logger) (http.Handler, []server.Job, error) {
	// === Stores ===
	entries := library.NewStore(db)

	// === Providers ===
	current := settings.FromConfig(cfg)
	meta := metadata.NewService(current.Metadata(), logger.With("component", "metadata"),
		metadata.WithTMDBOptions(
			tmdb.WithCacheTTL(cfg.Metadata.CacheTTL),
			tmdb.WithRateLimit(cfg.Metadata.RequestsPerSec),
		),
	)
	posters := poster.NewCache(cfg.Posters.CacheDir, meta, logger.With("component", "poster"))
	scanner := media.NewScanner(cfg.Media.LocalPath, logger.With("component", "media"))
	mgr := settings.NewManager(cfg, configPath, meta, scanner, logger.With("component", "settings"))

	mux := http.NewServeMux()

	// === JSON API ===
	api, err := v1.NewWithDeps(v1.ServerDeps{
		Entries:  entries,
		Metadata: meta,
		Media:    scanner,
		Settings: mgr,
	}, v1.Config{
		Version:    version,
		DefaultTab: string(library.CategorySeries),
	}, logger.With("component", "api"))
	if err != nil {
		return nil, nil, fmt.Errorf("api: %w", err)
	}
	api.RegisterRoutes(mux)

	// === Pages ===
	pages, err := web.New(web.Deps{
		Entries:  entries,
		Lookup:   meta,
		Posters:  posters,
		Media:    scanner,
		Settings: mgr,
	}, logger.With("component", "web"))
	if err != nil {
		return nil, nil, fmt.Errorf("web: %w", err)
	}
	pages.RegisterRoutes(mux)

	// === Background Jobs ===
	var jobs []server.Job
	if maxAge := cfg.Posters.MaxAge; maxAge > 0 {
		log := logger.With("component", "poster")
		jobs = append(jobs, server.Job{
			Name:     "poster-prune",
			Interval: posterPruneInterval,
			Run: func(context.Context) error {
				n, err := posters.Prune(maxAge)
				if n > 0 {
					log.Info("pruned poster thumbnails", "removed", n)
				}
				return err
			},
		})
	}

	return mux, jobs, nil
}

func runServer(configPath string) error {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	db, err := openDB(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	handler, jobs, err := buildHandler(cfg, configPath, db, logger)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting",
		"addr", addr,
		"config", configPath,
		"database", cfg.Database.Path,
		"provider", cfg.Metadata.Provider,
		"media", cfg.Media.LocalPath,
		"log_level", cfg.Server.LogLevel,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(handler, server.Config{Addr: addr}, logger, jobs...)
	if err := runner.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}
