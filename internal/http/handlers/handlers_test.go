package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/testutil"
)

func newTestHandler(p *testutil.StubProvider) *Handler {
	predictorSvc, gamesSvc := testutil.NewServices(p)
	logger, _ := testutil.NewBufferLogger()
	return NewHandler(predictorSvc, gamesSvc, nil, logger)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{})

	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestHomeRendersTeamOptions(t *testing.T) {
	stub := &testutil.StubProvider{Teams: []string{"BUF", "KC"}}
	h := newTestHandler(stub)

	rr := testutil.Serve(http.HandlerFunc(h.Home), http.MethodGet, "/", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %s", ct)
	}
	doc := testutil.ParseHTML(t, rr.Body)
	if n := doc.Find("select#home option").Length() - 1; n != 2 {
		t.Fatalf("expected 2 home options, got %d", n)
	}
	if stub.PredictCalls.Load() != 0 {
		t.Fatalf("expected no prediction on page load")
	}
}

func TestHomeTeamsFailureRendersEmptySelectors(t *testing.T) {
	stub := &testutil.StubProvider{TeamsErr: errors.New("connection refused")}
	h := newTestHandler(stub)

	rr := testutil.Serve(http.HandlerFunc(h.Home), http.MethodGet, "/", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	doc := testutil.ParseHTML(t, rr.Body)
	for _, id := range []string{"home", "away"} {
		if n := doc.Find("select#" + id + " option").Length() - 1; n != 0 {
			t.Fatalf("expected zero %s options, got %d", id, n)
		}
	}
}

func TestPredictMissingTeamShowsAlertWithoutUpstreamCall(t *testing.T) {
	cases := map[string]url.Values{
		"neither":   {"team": {"BUF", "KC"}},
		"home_only": {"home": {"KC"}, "team": {"BUF", "KC"}},
		"away_only": {"away": {"BUF"}, "team": {"BUF", "KC"}},
	}
	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			stub := &testutil.StubProvider{Teams: []string{"BUF", "KC"}}
			h := newTestHandler(stub)

			rr := testutil.PostForm(http.HandlerFunc(h.Predict), "/predict", form)

			testutil.AssertStatus(t, rr, http.StatusOK)
			if stub.PredictCalls.Load() != 0 || stub.TeamCalls.Load() != 0 {
				t.Fatalf("expected no upstream calls, got teams=%d predict=%d",
					stub.TeamCalls.Load(), stub.PredictCalls.Load())
			}
			doc := testutil.ParseHTML(t, rr.Body)
			if got := strings.TrimSpace(doc.Find(".alert").Text()); got != "Select both teams!" {
				t.Fatalf("expected alert, got %q", got)
			}
			if n := doc.Find("select#home option").Length() - 1; n != 2 {
				t.Fatalf("expected posted teams as options, got %d", n)
			}
			if doc.Find("#results").Length() != 0 {
				t.Fatalf("expected no results")
			}
		})
	}
}

func TestPredictRendersResults(t *testing.T) {
	stub := &testutil.StubProvider{
		Teams:  []string{"BUF", "KC"},
		Result: testutil.SampleResult("KC", "BUF"),
	}
	h := newTestHandler(stub)

	rr := testutil.PostForm(http.HandlerFunc(h.Predict), "/predict", url.Values{"home": {"KC"}, "away": {"BUF"}})

	testutil.AssertStatus(t, rr, http.StatusOK)
	if stub.PredictCalls.Load() != 1 {
		t.Fatalf("expected one prediction call, got %d", stub.PredictCalls.Load())
	}
	if req := stub.LastRequest(); req.Home != "KC" || req.Away != "BUF" {
		t.Fatalf("unexpected request %+v", req)
	}
	doc := testutil.ParseHTML(t, rr.Body)
	if got := strings.TrimSpace(doc.Find(".ensemble-line").Text()); got != "KC: 70.0% | BUF: 30.0%" {
		t.Fatalf("unexpected ensemble line %q", got)
	}
	if doc.Find(".chart").Length() != 3 {
		t.Fatalf("expected 3 charts")
	}
	if v, _ := doc.Find("select#away option[selected]").Attr("value"); v != "BUF" {
		t.Fatalf("expected BUF to stay selected, got %q", v)
	}
}

func TestPredictMissingTeamWithoutPostedOptions(t *testing.T) {
	stub := &testutil.StubProvider{Teams: []string{"BUF", "KC"}}
	h := newTestHandler(stub)

	rr := testutil.PostForm(http.HandlerFunc(h.Predict), "/predict", url.Values{})

	testutil.AssertStatus(t, rr, http.StatusOK)
	if stub.TeamCalls.Load() != 0 || stub.PredictCalls.Load() != 0 {
		t.Fatalf("expected no upstream calls")
	}
	doc := testutil.ParseHTML(t, rr.Body)
	if n := doc.Find("select#home option").Length() - 1; n != 0 {
		t.Fatalf("expected no options, got %d", n)
	}
}

func TestPredictUsesPostedTeamOptions(t *testing.T) {
	stub := &testutil.StubProvider{
		Teams:  []string{"BUF", "KC", "MIA"},
		Result: testutil.SampleResult("KC", "BUF"),
	}
	h := newTestHandler(stub)

	form := url.Values{"home": {"KC"}, "away": {"BUF"}, "team": {"BUF", "KC"}}
	rr := testutil.PostForm(http.HandlerFunc(h.Predict), "/predict", form)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if stub.TeamCalls.Load() != 0 || stub.PredictCalls.Load() != 1 {
		t.Fatalf("expected only the prediction call, got teams=%d predict=%d",
			stub.TeamCalls.Load(), stub.PredictCalls.Load())
	}
	doc := testutil.ParseHTML(t, rr.Body)
	if n := doc.Find("input[type=hidden][name=team]").Length(); n != 2 {
		t.Fatalf("expected posted teams echoed back, got %d", n)
	}
}

func TestPredictUpstreamFailureRendersWithoutResults(t *testing.T) {
	stub := &testutil.StubProvider{
		Teams:      []string{"BUF", "KC"},
		PredictErr: errors.New("upstream down"),
	}
	predictorSvc, gamesSvc := testutil.NewServices(stub)
	logger, buf := testutil.NewBufferLogger()
	h := NewHandler(predictorSvc, gamesSvc, nil, logger)

	rr := testutil.PostForm(http.HandlerFunc(h.Predict), "/predict", url.Values{"home": {"KC"}, "away": {"BUF"}})

	testutil.AssertStatus(t, rr, http.StatusOK)
	doc := testutil.ParseHTML(t, rr.Body)
	if doc.Find("#results").Length() != 0 || doc.Find(".alert").Length() != 0 {
		t.Fatalf("expected plain page without results or alert")
	}
	if !strings.Contains(buf.String(), "prediction failed") {
		t.Fatalf("expected failure to be logged, got %s", buf.String())
	}
}

func TestGamesEmptyRendersLoading(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{Games: []games.Record{}})

	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	doc := testutil.ParseHTML(t, rr.Body)
	if got := strings.TrimSpace(doc.Find(".loading").Text()); got != "Loading..." {
		t.Fatalf("expected loading placeholder, got %q", got)
	}
}

func TestGamesUnplayedGame(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{Games: []games.Record{testutil.SampleUnplayedGame()}})

	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games", nil)

	doc := testutil.ParseHTML(t, rr.Body)
	card := doc.Find("article.game")
	if !strings.Contains(card.Text(), "Game not yet played") {
		t.Fatalf("expected unplayed marker")
	}
	if strings.Contains(card.Text(), "True Winner") {
		t.Fatalf("expected no true winner line")
	}
}

func TestGamesErrorReplacesView(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{GamesErr: errors.New("predictapi: fetch games: connection refused")})

	rr := testutil.Serve(http.HandlerFunc(h.Games), http.MethodGet, "/games", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	doc := testutil.ParseHTML(t, rr.Body)
	if got := strings.TrimSpace(doc.Find(".error").Text()); got != "Error: predictapi: fetch games: connection refused" {
		t.Fatalf("unexpected error text %q", got)
	}
	if doc.Find("article.game").Length() != 0 {
		t.Fatalf("expected no cards")
	}
}

func TestHowItWorksMakesNoUpstreamCalls(t *testing.T) {
	stub := &testutil.StubProvider{}
	h := newTestHandler(stub)

	rr := testutil.Serve(http.HandlerFunc(h.HowItWorks), http.MethodGet, "/how", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if stub.TeamCalls.Load()+stub.PredictCalls.Load()+stub.GameCalls.Load() != 0 {
		t.Fatalf("expected no upstream calls")
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h := newTestHandler(&testutil.StubProvider{})

	rr := testutil.Serve(http.HandlerFunc(h.NotFound), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(http.HandlerFunc(h.MethodNotAllowed), http.MethodDelete, "/", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
