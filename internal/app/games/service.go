package games

import (
	"context"

	domaingames "github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
)

// Service serves the past-games screen. Each call goes to the upstream; nothing is kept between calls.
type Service struct {
	provider providers.GameProvider
}

// NewService constructs a Service with the provided upstream.
func NewService(provider providers.GameProvider) *Service {
	return &Service{provider: provider}
}

// PastGames returns the latest completed week as reported by the prediction service.
func (s *Service) PastGames(ctx context.Context) ([]domaingames.Record, error) {
	records, err := s.provider.FetchGames(ctx)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []domaingames.Record{}
	}
	return records, nil
}
