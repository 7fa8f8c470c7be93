package fixture

import (
	"context"
	"hash/fnv"
	"math"
	"net/http"
	"strings"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/teams"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
)

const providerName = "fixture"

// Ensemble weights mirror the service's weighted average (logistic counts double).
var ensembleWeights = map[string]float64{
	predictions.ModelLogistic:     0.5,
	predictions.ModelRandomForest: 0.25,
	predictions.ModelXGBoost:      0.25,
}

var ensembleModels = []string{predictions.ModelLogistic, predictions.ModelRandomForest, predictions.ModelXGBoost}

// modelSpread scales how strongly each fixture model reacts to the rating gap.
var modelSpread = map[string]float64{
	predictions.ModelLogistic:     0.8,
	predictions.ModelRandomForest: 0.5,
	predictions.ModelXGBoost:      1.1,
}

// Provider serves deterministic teams, predictions and games for local runs without the model service.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// FetchTeams returns every team code with a known logo.
func (p *Provider) FetchTeams(ctx context.Context) ([]string, error) {
	return teams.Codes(), nil
}

// Predict scores a matchup from a stable per-team rating. Unknown codes are rejected like the service does.
func (p *Provider) Predict(ctx context.Context, req predictions.Request) (predictions.Result, error) {
	home := predictions.TeamCode(strings.ToUpper(string(req.Home)))
	away := predictions.TeamCode(strings.ToUpper(string(req.Away)))
	if !teams.Known(string(home)) || !teams.Known(string(away)) {
		return predictions.Result{}, &providers.StatusError{
			Provider:   providerName,
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid team code",
		}
	}
	return score(home, away), nil
}

// FetchGames returns a small completed week: a home win, an away win and an unplayed game.
func (p *Provider) FetchGames(ctx context.Context) ([]games.Record, error) {
	return []games.Record{
		played("KC", "BAL", 27, 20),
		played("DET", "GB", 17, 24),
		unplayed("DAL", "PHI"),
	}, nil
}

func score(home, away predictions.TeamCode) predictions.Result {
	gap := rating(home) - rating(away)
	res := predictions.Result{
		HomeTeam:      home,
		AwayTeam:      away,
		Predictions:   make(map[string]predictions.TeamCode, len(ensembleWeights)+1),
		Probabilities: make(map[string]predictions.Probability, len(ensembleWeights)+1),
	}

	var ensembleHome, totalWeight float64
	for _, model := range ensembleModels {
		weight := ensembleWeights[model]
		homeProb := logistic(gap * modelSpread[model])
		prob := predictions.Probability{Home: homeProb, Away: 1 - homeProb}
		res.Probabilities[model] = prob
		res.Predictions[model] = pick(home, away, prob)
		ensembleHome += weight * homeProb
		totalWeight += weight
	}

	ensemble := predictions.Probability{Home: ensembleHome / totalWeight}
	ensemble.Away = 1 - ensemble.Home
	res.Probabilities[predictions.ModelEnsemble] = ensemble
	res.Predictions[predictions.ModelEnsemble] = pick(home, away, ensemble)
	return res
}

// rating maps a team code to a stable value in [-1, 1].
func rating(code predictions.TeamCode) float64 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(code))
	return float64(h.Sum32()%2001)/1000 - 1
}

func logistic(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

func pick(home, away predictions.TeamCode, p predictions.Probability) predictions.TeamCode {
	if p.Home >= p.Away {
		return home
	}
	return away
}

func played(home, away predictions.TeamCode, homeScore, awayScore int) games.Record {
	rec := unplayed(home, away)
	rec.HomeScore = &homeScore
	rec.AwayScore = &awayScore

	var winner predictions.TeamCode
	switch {
	case homeScore > awayScore:
		winner = home
	case awayScore > homeScore:
		winner = away
	}
	if winner != "" {
		rec.TrueWinner = &winner
	}

	for model, predicted := range rec.Predictions {
		var verdict *bool
		if winner != "" {
			v := predicted == winner
			verdict = &v
		}
		rec.Correct[model] = verdict
	}
	return rec
}

func unplayed(home, away predictions.TeamCode) games.Record {
	res := score(home, away)
	rec := games.Record{
		Home:          home,
		Away:          away,
		Predictions:   res.Predictions,
		Probabilities: make(map[string]*games.Probability, len(res.Probabilities)),
		Correct:       make(map[string]*bool, len(res.Predictions)),
	}
	for model, prob := range res.Probabilities {
		rec.Probabilities[model] = games.NewProbability(prob)
		rec.Correct[model] = nil
	}
	return rec
}
