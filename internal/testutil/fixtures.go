package testutil

import (
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
)

// SampleResult returns a prediction where the home side wins the ensemble 70/30.
func SampleResult(home, away string) predictions.Result {
	h, a := predictions.TeamCode(home), predictions.TeamCode(away)
	return predictions.Result{
		HomeTeam: h,
		AwayTeam: a,
		Predictions: map[string]predictions.TeamCode{
			predictions.ModelLogistic:     h,
			predictions.ModelRandomForest: a,
			predictions.ModelXGBoost:      h,
			predictions.ModelEnsemble:     h,
		},
		Probabilities: map[string]predictions.Probability{
			predictions.ModelLogistic:     {Home: 0.6, Away: 0.4},
			predictions.ModelRandomForest: {Home: 0.45, Away: 0.55},
			predictions.ModelXGBoost:      {Home: 0.8, Away: 0.2},
			predictions.ModelEnsemble:     {Home: 0.7, Away: 0.3},
		},
	}
}

// SamplePlayedGame returns a finished KC 27 - BAL 20 game the ensemble called correctly.
func SamplePlayedGame() games.Record {
	winner := predictions.TeamCode("KC")
	return games.Record{
		Home:       "KC",
		Away:       "BAL",
		HomeScore:  IntPtr(27),
		AwayScore:  IntPtr(20),
		TrueWinner: &winner,
		Predictions: map[string]predictions.TeamCode{
			predictions.ModelLogistic: "KC",
			predictions.ModelEnsemble: "KC",
		},
		Probabilities: map[string]*games.Probability{
			predictions.ModelLogistic: games.NewProbability(predictions.Probability{Home: 0.62, Away: 0.38}),
			predictions.ModelXGBoost:  games.NewProbability(predictions.Probability{Home: 0.41, Away: 0.59}),
		},
		Correct: map[string]*bool{
			predictions.ModelLogistic: BoolPtr(true),
			predictions.ModelXGBoost:  BoolPtr(false),
		},
	}
}

// SampleUnplayedGame returns a game with null scores and no predictions.
func SampleUnplayedGame() games.Record {
	return games.Record{Home: "DAL", Away: "PHI"}
}

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// FloatPtr returns a pointer to v.
func FloatPtr(v float64) *float64 { return &v }

// BoolPtr returns a pointer to v.
func BoolPtr(v bool) *bool { return &v }
