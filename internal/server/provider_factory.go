package server

import (
	"log/slog"

	"github.com/preston-bernstein/nfl-predictor-web/internal/config"
	"github.com/preston-bernstein/nfl-predictor-web/internal/metrics"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
)

// providerFactory assembles the provider with the shared metrics/retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	return providers.NewRetryingProvider(base, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), cfg.Predictor.RetryAttempts, 0)
}
