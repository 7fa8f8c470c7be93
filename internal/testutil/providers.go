package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
)

// StubProvider is a configurable providers.DataProvider that counts calls.
type StubProvider struct {
	Teams      []string
	TeamsErr   error
	Result     predictions.Result
	PredictErr error
	Games      []games.Record
	GamesErr   error

	TeamCalls    atomic.Int32
	PredictCalls atomic.Int32
	GameCalls    atomic.Int32

	mu          sync.Mutex
	lastRequest predictions.Request
}

var _ providers.DataProvider = (*StubProvider)(nil)

func (s *StubProvider) FetchTeams(ctx context.Context) ([]string, error) {
	s.TeamCalls.Add(1)
	return s.Teams, s.TeamsErr
}

func (s *StubProvider) Predict(ctx context.Context, req predictions.Request) (predictions.Result, error) {
	s.PredictCalls.Add(1)
	s.mu.Lock()
	s.lastRequest = req
	s.mu.Unlock()
	return s.Result, s.PredictErr
}

func (s *StubProvider) FetchGames(ctx context.Context) ([]games.Record, error) {
	s.GameCalls.Add(1)
	return s.Games, s.GamesErr
}

// LastRequest returns the most recent Predict request.
func (s *StubProvider) LastRequest() predictions.Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRequest
}

// ErrProvider fails every call with Err.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchTeams(ctx context.Context) ([]string, error) {
	return nil, p.Err
}

func (p ErrProvider) Predict(ctx context.Context, req predictions.Request) (predictions.Result, error) {
	return predictions.Result{}, p.Err
}

func (p ErrProvider) FetchGames(ctx context.Context) ([]games.Record, error) {
	return nil, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
func UnavailableProvider() ErrProvider {
	return ErrProvider{Err: providers.ErrProviderUnavailable}
}
