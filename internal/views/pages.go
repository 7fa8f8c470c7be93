package views

import (
	"strconv"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/teams"
)

// AlertMissingTeams is shown when predict is pressed without both selections.
const AlertMissingTeams = "Select both teams!"

// PredictorPage is the view model for the predictor screen.
type PredictorPage struct {
	LeagueLogo string
	Teams      []teams.Team
	Home       string
	Away       string
	HomeLogo   string
	AwayLogo   string
	Alert      string
	Result     *PredictionView
}

// PredictionView is the rendered form of a prediction result.
type PredictionView struct {
	Winner       string
	HomeTeam     string
	AwayTeam     string
	HasEnsemble  bool
	EnsembleHome string
	EnsembleAway string
	Charts       []PieChart
}

// GamesPage is the view model for the past-games screen.
// Error replaces the whole view; an empty Cards list renders the loading placeholder.
type GamesPage struct {
	Error string
	Cards []GameCard
}

// GameCard is one historical game.
type GameCard struct {
	Home             string
	Away             string
	Played           bool
	HomeScore        string
	AwayScore        string
	TrueWinner       string
	Ensemble         string
	HasProbabilities bool
	Lines            []ProbabilityLine
}

// ProbabilityLine is one model's probabilities for a past game.
type ProbabilityLine struct {
	Model      string
	HomePct    string
	AwayPct    string
	HasVerdict bool
	Correct    bool
}

// NewPredictorPage builds the predictor view; result may be nil.
func NewPredictorPage(teamCodes []string, home, away string, result *predictions.Result) PredictorPage {
	page := PredictorPage{
		LeagueLogo: teams.LeagueLogo,
		Teams:      teams.FromCodes(teamCodes),
		Home:       home,
		Away:       away,
		HomeLogo:   teams.Logo(home),
		AwayLogo:   teams.Logo(away),
	}
	if result != nil {
		view := NewPredictionView(*result)
		page.Result = &view
	}
	return page
}

// NewPredictionView formats the ensemble headline and one pie chart per model.
func NewPredictionView(res predictions.Result) PredictionView {
	home, away := string(res.HomeTeam), string(res.AwayTeam)
	view := PredictionView{
		HomeTeam: home,
		AwayTeam: away,
	}
	if winner, ok := res.EnsembleWinner(); ok {
		view.Winner = string(winner)
	}
	if ens, ok := res.Ensemble(); ok {
		view.HasEnsemble = true
		view.EnsembleHome = Percent(ens.Home)
		view.EnsembleAway = Percent(ens.Away)
	}
	for _, model := range res.ChartModels() {
		prob := res.Probabilities[model]
		view.Charts = append(view.Charts, NewPieChart(ModelTitle(model), []PieEntry{
			{Label: home, Value: prob.Home, Color: HomeColor},
			{Label: away, Value: prob.Away, Color: AwayColor},
		}))
	}
	return view
}

// NewGamesPage builds the past-games view from upstream records.
func NewGamesPage(records []games.Record) GamesPage {
	page := GamesPage{Cards: make([]GameCard, 0, len(records))}
	for _, rec := range records {
		page.Cards = append(page.Cards, newGameCard(rec))
	}
	return page
}

// NewGamesErrorPage replaces the past-games view with an error message.
func NewGamesErrorPage(err error) GamesPage {
	return GamesPage{Error: err.Error()}
}

func newGameCard(rec games.Record) GameCard {
	card := GameCard{
		Home:             string(rec.Home),
		Away:             string(rec.Away),
		Played:           rec.Played(),
		TrueWinner:       string(rec.Winner()),
		HasProbabilities: rec.Probabilities != nil,
	}
	if card.Played {
		card.HomeScore = strconv.Itoa(*rec.HomeScore)
		card.AwayScore = strconv.Itoa(*rec.AwayScore)
	}
	if pick, ok := rec.EnsemblePrediction(); ok {
		card.Ensemble = string(pick)
	}
	for _, model := range rec.Models() {
		line := ProbabilityLine{Model: model, HomePct: "?%", AwayPct: "?%"}
		if prob := rec.Probabilities[model]; prob != nil {
			line.HomePct = optionalPercent(prob.Home)
			line.AwayPct = optionalPercent(prob.Away)
		}
		line.Correct, line.HasVerdict = rec.Verdict(model)
		card.Lines = append(card.Lines, line)
	}
	return card
}

func optionalPercent(p *float64) string {
	if p == nil {
		return "?%"
	}
	return Percent(*p)
}
