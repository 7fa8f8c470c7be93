package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/nfl-predictor-web/internal/app/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/app/predictor"
	"github.com/preston-bernstein/nfl-predictor-web/internal/logging"
	"github.com/preston-bernstein/nfl-predictor-web/internal/views"
)

// Handler wires HTTP routes to the predictor and games services.
type Handler struct {
	predictor *predictor.Service
	games     *games.Service
	renderer  *views.Renderer
	logger    *slog.Logger
}

// NewHandler constructs a Handler. A nil renderer falls back to the embedded templates.
func NewHandler(predictorSvc *predictor.Service, gamesSvc *games.Service, renderer *views.Renderer, logger *slog.Logger) *Handler {
	if renderer == nil {
		renderer = views.MustNewRenderer()
	}
	return &Handler{
		predictor: predictorSvc,
		games:     gamesSvc,
		renderer:  renderer,
		logger:    logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Home renders the predictor with both selectors populated from the prediction service.
func (h *Handler) Home(w nethttp.ResponseWriter, r *nethttp.Request) {
	codes := h.teams(r)
	h.render(w, r, views.PagePredictor, views.NewPredictorPage(codes, "", "", nil))
}

// Predict scores the submitted matchup and renders the predictor with results.
// Selector options come from the posted "team" fields; the team list is only
// fetched when none were posted. Missing selections render an alert and make
// no upstream call at all.
func (h *Handler) Predict(w nethttp.ResponseWriter, r *nethttp.Request) {
	home := r.PostFormValue("home")
	away := r.PostFormValue("away")
	codes := offeredTeams(r)
	logger := loggerFromContext(r, h.logger)

	res, err := h.predictor.Predict(r.Context(), home, away)
	if errors.Is(err, predictor.ErrMissingTeams) {
		page := views.NewPredictorPage(codes, home, away, nil)
		page.Alert = views.AlertMissingTeams
		h.render(w, r, views.PagePredictor, page)
		return
	}
	if len(codes) == 0 {
		codes = h.teams(r)
	}
	if err != nil {
		logging.Error(logger, "prediction failed", err,
			logging.FieldHome, home,
			logging.FieldAway, away,
		)
		h.render(w, r, views.PagePredictor, views.NewPredictorPage(codes, home, away, nil))
		return
	}

	winner, _ := res.EnsembleWinner()
	logging.Info(logger, "prediction served",
		logging.FieldHome, home,
		logging.FieldAway, away,
		"winner", string(winner),
	)
	h.render(w, r, views.PagePredictor, views.NewPredictorPage(codes, home, away, &res))
}

// Games renders the past-games list. Upstream failures replace the whole view with the error.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	records, err := h.games.PastGames(r.Context())
	if err != nil {
		logging.Error(logger, "failed to load past games", err)
		h.render(w, r, views.PageGames, views.NewGamesErrorPage(err))
		return
	}
	logging.Info(logger, "served past games", logging.FieldCount, len(records))
	h.render(w, r, views.PageGames, views.NewGamesPage(records))
}

// HowItWorks renders the static explanation page.
func (h *Handler) HowItWorks(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.render(w, r, views.PageHow, nil)
}

// NotFound handles unmatched routes.
func (h *Handler) NotFound(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed handles known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// teams returns the selector options; failures are logged and yield no options.
func (h *Handler) teams(r *nethttp.Request) []string {
	codes, err := h.predictor.Teams(r.Context())
	if err != nil {
		logging.Warn(loggerFromContext(r, h.logger), "failed to load teams", "error", err)
		return nil
	}
	return codes
}

// offeredTeams returns the selector options echoed back by the predictor form.
func offeredTeams(r *nethttp.Request) []string {
	var codes []string
	for _, code := range r.PostForm["team"] {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
