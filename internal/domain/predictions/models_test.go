package predictions

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestResultDecodesServicePayload(t *testing.T) {
	body := `{
		"home_team": "KC",
		"away_team": "BUF",
		"predictions": {"logistic": "KC", "randomforest": "BUF", "xgboost": "KC", "ensemble": "KC"},
		"probabilities": {
			"logistic": {"home": 0.61, "away": 0.39},
			"randomforest": {"home": 0.48, "away": 0.52},
			"xgboost": {"home": 0.7, "away": 0.3},
			"ensemble": {"home": 0.6, "away": 0.4}
		}
	}`

	var res Result
	if err := json.Unmarshal([]byte(body), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.HomeTeam != "KC" || res.AwayTeam != "BUF" {
		t.Fatalf("unexpected teams %s/%s", res.HomeTeam, res.AwayTeam)
	}
	winner, ok := res.EnsembleWinner()
	if !ok || winner != "KC" {
		t.Fatalf("expected ensemble winner KC, got %q", winner)
	}
	ens, ok := res.Ensemble()
	if !ok || ens.Home != 0.6 || ens.Away != 0.4 {
		t.Fatalf("unexpected ensemble probability %+v", ens)
	}
	want := []string{ModelLogistic, ModelRandomForest, ModelXGBoost}
	if got := res.ChartModels(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected chart models %v, got %v", want, got)
	}
}

func TestEnsembleWinnerMissing(t *testing.T) {
	res := Result{Predictions: map[string]TeamCode{ModelLogistic: "KC"}}
	if _, ok := res.EnsembleWinner(); ok {
		t.Fatalf("expected no ensemble winner")
	}
	res.Predictions[ModelEnsemble] = ""
	if _, ok := res.EnsembleWinner(); ok {
		t.Fatalf("expected empty ensemble winner to be treated as missing")
	}
}

func TestOrderModelsKnownFirstThenAlphabetical(t *testing.T) {
	in := []string{"svm", ModelEnsemble, ModelXGBoost, "adaboost", ModelLogistic}
	got := OrderModels(in)
	want := []string{ModelLogistic, ModelXGBoost, "adaboost", "svm", ModelEnsemble}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if in[0] != "svm" {
		t.Fatalf("expected input slice to be left untouched")
	}
}
