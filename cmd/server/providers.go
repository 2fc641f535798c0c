package main

import (
	"context"

	"caffind_backend/internal/config"
	"caffind_backend/internal/platform/logger"
	"caffind_backend/internal/platform/metrics"
	"caffind_backend/internal/translation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

func provideLogger(cfg *config.Config) (*zap.Logger, func(), error) {
	l, err := logger.New(cfg)
	if err != nil {
		return nil, nil, err
	}
	return l, logger.Cleanup(l), nil
}

func provideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(cfg *config.Config, reg *prometheus.Registry) (metrics.Metrics, error) {
	if !cfg.MetricsEnabled {
		return metrics.Noop{}, nil
	}
	return metrics.NewProm(cfg.MetricsNamespace, reg)
}

func provideGoogleEngine(ctx context.Context, cfg *config.Config, log *zap.Logger) (*translation.GoogleEngine, func(), error) {
	engine, err := translation.NewGoogleEngine(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := engine.Close(); err != nil {
			log.Warn("Failed to close translation client", zap.Error(err))
		}
	}
	return engine, cleanup, nil
}
