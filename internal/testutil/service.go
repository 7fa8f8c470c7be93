package testutil

import (
	"github.com/preston-bernstein/nfl-predictor-web/internal/app/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/app/predictor"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
)

// NewServices builds the predictor and games services over the same provider.
func NewServices(p providers.DataProvider) (*predictor.Service, *games.Service) {
	return predictor.NewService(p), games.NewService(p)
}
