package handlers

import (
	"encoding/json"
	"errors"
	"io"
	nethttp "net/http"

	"github.com/preston-bernstein/nfl-predictor-web/internal/app/predictor"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
	"github.com/preston-bernstein/nfl-predictor-web/internal/logging"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
)

const maxPredictBody = 1 << 10

// APITeams forwards GET /teams as JSON.
func (h *Handler) APITeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	codes, err := h.predictor.Teams(r.Context())
	if err != nil {
		h.upstreamError(w, r, "failed to load teams", err)
		return
	}
	if codes == nil {
		codes = []string{}
	}
	writeJSON(w, nethttp.StatusOK, codes, h.logger)
}

// APIPredict forwards a {"home","away"} body to POST /predict.
func (h *Handler) APIPredict(w nethttp.ResponseWriter, r *nethttp.Request) {
	var req predictions.Request
	body := nethttp.MaxBytesReader(w, r.Body, maxPredictBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	res, err := h.predictor.Predict(r.Context(), string(req.Home), string(req.Away))
	if errors.Is(err, predictor.ErrMissingTeams) {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}
	if err != nil {
		h.upstreamError(w, r, "prediction failed", err)
		return
	}
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// APIGames forwards GET /games as JSON.
func (h *Handler) APIGames(w nethttp.ResponseWriter, r *nethttp.Request) {
	records, err := h.games.PastGames(r.Context())
	if err != nil {
		h.upstreamError(w, r, "failed to load past games", err)
		return
	}
	if records == nil {
		records = []games.Record{}
	}
	writeJSON(w, nethttp.StatusOK, records, h.logger)
}

func (h *Handler) upstreamError(w nethttp.ResponseWriter, r *nethttp.Request, msg string, err error) {
	logging.Error(loggerFromContext(r, h.logger), msg, err)
	writeError(w, r, nethttp.StatusBadGateway, upstreamMessage(err), h.logger)
}

// upstreamMessage prefers the prediction service's own error text.
func upstreamMessage(err error) string {
	if stErr, ok := providers.AsStatusError(err); ok && stErr.Message != "" {
		return stErr.Message
	}
	if _, ok := providers.AsRateLimitError(err); ok {
		return "prediction service rate limited"
	}
	return providers.ErrProviderUnavailable.Error()
}
