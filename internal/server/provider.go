package server

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nfl-predictor-web/internal/config"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers/fixture"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers/predictapi"
)

const (
	providerHTTP    = "http"
	providerFixture = "fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch strings.ToLower(cfg.Provider) {
	case providerFixture:
		return fixture.New()
	case providerHTTP, "":
		return newPredictAPIClient(cfg)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to http", slog.String("provider", cfg.Provider))
		}
		return newPredictAPIClient(cfg)
	}
}

func newPredictAPIClient(cfg config.Config) *predictapi.Client {
	return predictapi.NewClient(predictapi.Config{
		BaseURL: cfg.Predictor.BaseURL,
		Timeout: cfg.Predictor.Timeout,
	})
}
