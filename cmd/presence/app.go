package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"presence/internal/attendance/biometric"
	"presence/internal/attendance/location"
	"presence/internal/attendance/lock"
	"presence/internal/attendance/service"
	"presence/internal/device"
	"presence/internal/platform/config"
	"presence/internal/platform/httpserver"
	"presence/internal/platform/metrics"
	redisclient "presence/internal/platform/redis"
	"presence/internal/session"
	"presence/internal/session/store"
	"presence/pkg/platform/audit"
	"presence/pkg/platform/audit/publishers"
	auditmemory "presence/pkg/platform/audit/store/memory"
)

// app holds the wired dependencies for one process.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	auditLog *auditmemory.InMemoryStore
	device   *device.Simulator
	session  *session.Service
	gate     *service.Service
	checks   map[string]httpserver.HealthCheck
	closers  []func() error
}

func newApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*app, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a := &app{
		cfg:      cfg,
		logger:   logger,
		registry: registry,
		metrics:  metrics.New(registry),
		auditLog: auditmemory.NewInMemoryStore(),
		device:   device.New(cfg.Zone().Center),
		checks:   make(map[string]httpserver.HealthCheck),
	}

	bio, err := biometric.New(a.device, biometric.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	loc, err := location.New(a.device)
	if err != nil {
		return nil, err
	}

	auditRouter := publishers.NewRouter(logger, a.auditLog)
	auditRouter.Register(audit.CategorySecurity, publishers.Fanout{
		a.auditLog,
		publishers.LogSink{Logger: logger, Level: slog.LevelWarn},
	})

	a.session, err = session.New(store.New(),
		session.WithLogger(logger),
		session.WithMetrics(a.metrics),
		session.WithAuditPublisher(auditRouter),
		session.WithBiometricVerifier(bio),
		session.WithReason(cfg.Attendance.BiometricReason),
	)
	if err != nil {
		return nil, err
	}

	locker, err := a.newLocker(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.gate, err = service.New(a.session, bio, loc, cfg.Zone(),
		service.WithLogger(logger),
		service.WithMetrics(a.metrics),
		service.WithAuditPublisher(auditRouter),
		service.WithLocker(locker),
		service.WithCalendar(cfg.Calendar()),
		service.WithReason(cfg.Attendance.BiometricReason),
	)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// newLocker uses Redis when configured so attempts serialize across processes.
func (a *app) newLocker(ctx context.Context) (lock.Locker, error) {
	client, err := redisclient.New(ctx, a.cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	if client == nil {
		return lock.NewMemoryLocker(), nil
	}

	a.closers = append(a.closers, client.Close)
	a.checks["redis"] = client.Health
	a.logger.InfoContext(ctx, "using redis attempt lock", "ttl", a.cfg.Redis.LockTTL)
	return lock.NewRedisLocker(client, lock.WithTTL(a.cfg.Redis.LockTTL))
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
	a.closers = nil
}
