package providers

import (
	"context"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
)

// TeamProvider lists the team codes the prediction service can score.
type TeamProvider interface {
	FetchTeams(ctx context.Context) ([]string, error)
}

// PredictionProvider scores a single matchup.
type PredictionProvider interface {
	Predict(ctx context.Context, req predictions.Request) (predictions.Result, error)
}

// GameProvider lists historical games with the service's past predictions.
// Providers return an empty, non-nil slice when the service has nothing to report.
type GameProvider interface {
	FetchGames(ctx context.Context) ([]games.Record, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	TeamProvider
	PredictionProvider
	GameProvider
}
