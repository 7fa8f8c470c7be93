package predictor

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
)

type stubProvider struct {
	teams        []string
	teamsErr     error
	result       predictions.Result
	predictErr   error
	predictCalls int
	lastRequest  predictions.Request
}

func (s *stubProvider) FetchTeams(ctx context.Context) ([]string, error) {
	return s.teams, s.teamsErr
}

func (s *stubProvider) Predict(ctx context.Context, req predictions.Request) (predictions.Result, error) {
	s.predictCalls++
	s.lastRequest = req
	return s.result, s.predictErr
}

func TestServiceTeams(t *testing.T) {
	svc := NewService(&stubProvider{teams: []string{"KC", "BUF"}})

	teams, err := svc.Teams(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(teams) != 2 || teams[0] != "KC" {
		t.Fatalf("unexpected teams %v", teams)
	}
}

func TestServicePredictRequiresBothTeams(t *testing.T) {
	cases := []struct {
		name       string
		home, away string
	}{
		{"neither", "", ""},
		{"home_only", "KC", ""},
		{"away_only", "", "BUF"},
		{"whitespace", "  ", "BUF"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubProvider{}
			svc := NewService(stub)

			_, err := svc.Predict(context.Background(), tc.home, tc.away)
			if !errors.Is(err, ErrMissingTeams) {
				t.Fatalf("expected ErrMissingTeams, got %v", err)
			}
			if stub.predictCalls != 0 {
				t.Fatalf("expected no upstream call, got %d", stub.predictCalls)
			}
		})
	}
}

func TestServicePredictForwardsRequest(t *testing.T) {
	stub := &stubProvider{result: predictions.Result{HomeTeam: "KC", AwayTeam: "BUF"}}
	svc := NewService(stub)

	res, err := svc.Predict(context.Background(), " KC ", "BUF")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if stub.predictCalls != 1 {
		t.Fatalf("expected one upstream call, got %d", stub.predictCalls)
	}
	if stub.lastRequest.Home != "KC" || stub.lastRequest.Away != "BUF" {
		t.Fatalf("unexpected request %+v", stub.lastRequest)
	}
	if res.HomeTeam != "KC" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestServicePredictPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(&stubProvider{predictErr: boom})

	if _, err := svc.Predict(context.Background(), "KC", "BUF"); !errors.Is(err, boom) {
		t.Fatalf("expected upstream error, got %v", err)
	}
}
