package predictor

import (
	"context"
	"errors"
	"strings"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
)

// ErrMissingTeams is returned when either side of the matchup is blank. No upstream call is made.
var ErrMissingTeams = errors.New("select both teams")

// Provider is the subset of the prediction service the predictor screen needs.
type Provider interface {
	providers.TeamProvider
	providers.PredictionProvider
}

// Service coordinates the predictor screen's team listing and matchup scoring.
type Service struct {
	provider Provider
}

// NewService constructs a Service with the provided upstream.
func NewService(provider Provider) *Service {
	return &Service{provider: provider}
}

// Teams returns the team codes offered in the selectors.
func (s *Service) Teams(ctx context.Context) ([]string, error) {
	return s.provider.FetchTeams(ctx)
}

// Predict scores home vs away after checking both were selected.
func (s *Service) Predict(ctx context.Context, home, away string) (predictions.Result, error) {
	req := predictions.Request{
		Home: predictions.TeamCode(strings.TrimSpace(home)),
		Away: predictions.TeamCode(strings.TrimSpace(away)),
	}
	if req.Home == "" || req.Away == "" {
		return predictions.Result{}, ErrMissingTeams
	}
	return s.provider.Predict(ctx, req)
}
