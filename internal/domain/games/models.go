package games

import "github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"

// Record is one historical game as returned by GET /games.
// Nullable upstream fields are pointers; a nil score means the game has not been played.
type Record struct {
	Home          predictions.TeamCode                `json:"home"`
	Away          predictions.TeamCode                `json:"away"`
	HomeScore     *int                                `json:"home_score"`
	AwayScore     *int                                `json:"away_score"`
	TrueWinner    *predictions.TeamCode               `json:"true_winner"`
	Predictions   map[string]predictions.TeamCode     `json:"predictions"`
	Probabilities map[string]*Probability             `json:"probabilities"`
	Correct       map[string]*bool                    `json:"correct"`
}

// Probability is a past-game win probability; either side may be absent upstream.
type Probability struct {
	Home *float64 `json:"home"`
	Away *float64 `json:"away"`
}

// NewProbability copies a complete prediction probability.
func NewProbability(p predictions.Probability) *Probability {
	home, away := p.Home, p.Away
	return &Probability{Home: &home, Away: &away}
}

// Played reports whether both final scores are known.
func (r Record) Played() bool {
	return r.HomeScore != nil && r.AwayScore != nil
}

// Winner returns the true winner, or "" for ties and unplayed games.
func (r Record) Winner() predictions.TeamCode {
	if r.TrueWinner == nil {
		return ""
	}
	return *r.TrueWinner
}

// EnsemblePrediction returns the ensemble's pick for this game, if any.
func (r Record) EnsemblePrediction() (predictions.TeamCode, bool) {
	if r.Predictions == nil {
		return "", false
	}
	pick, ok := r.Predictions[predictions.ModelEnsemble]
	return pick, ok && pick != ""
}

// Models lists models with a probability entry, ensemble included, in display order.
func (r Record) Models() []string {
	names := make([]string, 0, len(r.Probabilities))
	for name := range r.Probabilities {
		names = append(names, name)
	}
	return predictions.OrderModels(names)
}

// Verdict reports whether a model's pick matched the outcome. ok is false when there is no
// correct map or the model's entry is null; a model missing from a present map counts as a miss.
func (r Record) Verdict(model string) (correct bool, ok bool) {
	if r.Correct == nil {
		return false, false
	}
	v, found := r.Correct[model]
	if !found {
		return false, true
	}
	if v == nil {
		return false, false
	}
	return *v, true
}
