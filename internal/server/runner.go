// Package server runs the HTTP listener and the background jobs of the daemon.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const defaultShutdownTimeout = 30 * time.Second

// Config for the runner.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
}

// Job is a background task run once at start and then every Interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Runner serves HTTP and runs jobs until its context ends.
type Runner struct {
	handler http.Handler
	config  Config
	jobs    []Job
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cfg Config, logger *slog.Logger, jobs ...Job) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		config:  cfg,
		jobs:    jobs,
		logger:  logger,
	}
}

// Run listens on the configured address and blocks until the context is
// canceled or the server fails.
func (r *Runner) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.config.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return r.Serve(ctx, ln)
}

// Serve is Run on an existing listener. Cancellation shuts the HTTP server
// down gracefully and stops the jobs.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           LogRequests(r.handler, r.logger.With("component", "http")),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), r.config.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		r.logger.Info("server stopped")
		return nil
	})

	for _, job := range r.jobs {
		g.Go(func() error {
			r.runJob(ctx, job)
			return nil
		})
	}

	return g.Wait()
}

// runJob never fails the group; job errors are logged and retried on the
// next tick.
func (r *Runner) runJob(ctx context.Context, job Job) {
	log := r.logger.With("component", "job", "job", job.Name)
	run := func() {
		if err := job.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error("job failed", "error", err)
		}
	}

	run()
	if job.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
