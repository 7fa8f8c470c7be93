package predictions

import "sort"

// TeamCode is the short team identifier used by the prediction service (e.g. "KC").
type TeamCode string

// Model names returned by the prediction service.
const (
	ModelLogistic     = "logistic"
	ModelRandomForest = "randomforest"
	ModelXGBoost      = "xgboost"
	ModelEnsemble     = "ensemble"
)

// chartOrder is the display order for per-model charts; unknown models follow alphabetically.
var chartOrder = []string{ModelLogistic, ModelRandomForest, ModelXGBoost}

// Probability is a model's win probability for each side, each in [0,1].
// The service does not guarantee Home+Away == 1 and neither do we.
type Probability struct {
	Home float64 `json:"home"`
	Away float64 `json:"away"`
}

// Request is the body sent to POST /predict.
type Request struct {
	Home TeamCode `json:"home"`
	Away TeamCode `json:"away"`
}

// Result is the payload returned by POST /predict.
type Result struct {
	HomeTeam      TeamCode               `json:"home_team"`
	AwayTeam      TeamCode               `json:"away_team"`
	Predictions   map[string]TeamCode    `json:"predictions"`
	Probabilities map[string]Probability `json:"probabilities"`
}

// EnsembleWinner returns the ensemble's predicted winner, if present.
func (r Result) EnsembleWinner() (TeamCode, bool) {
	winner, ok := r.Predictions[ModelEnsemble]
	return winner, ok && winner != ""
}

// Ensemble returns the ensemble probabilities, if present.
func (r Result) Ensemble() (Probability, bool) {
	p, ok := r.Probabilities[ModelEnsemble]
	return p, ok
}

// ChartModels lists the non-ensemble models with probabilities, in display order.
func (r Result) ChartModels() []string {
	names := make([]string, 0, len(r.Probabilities))
	for name := range r.Probabilities {
		if name != ModelEnsemble {
			names = append(names, name)
		}
	}
	return OrderModels(names)
}

// OrderModels sorts model names: known models first in their fixed order, then the rest alphabetically.
// The input slice is not modified.
func OrderModels(names []string) []string {
	out := append([]string(nil), names...)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := modelRank(out[i]), modelRank(out[j])
		if ri != rj {
			return ri < rj
		}
		return out[i] < out[j]
	})
	return out
}

func modelRank(name string) int {
	for i, known := range chartOrder {
		if name == known {
			return i
		}
	}
	if name == ModelEnsemble {
		return len(chartOrder) + 1
	}
	return len(chartOrder)
}
