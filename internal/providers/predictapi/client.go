package predictapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
	"github.com/preston-bernstein/nfl-predictor-web/internal/providers"
)

// Config controls how the client reaches the prediction service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client talks to the prediction service's JSON API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a prediction service client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// FetchTeams calls GET /teams and returns the team codes in upstream order.
func (c *Client) FetchTeams(ctx context.Context) ([]string, error) {
	resp, err := c.do(ctx, http.MethodGet, "/teams", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	teams := make([]string, 0)
	if err := json.NewDecoder(resp.Body).Decode(&teams); err != nil {
		return nil, fmt.Errorf("%s: decode teams: %w", providerName, err)
	}
	return teams, nil
}

// Predict calls POST /predict with {"home", "away"}.
func (c *Client) Predict(ctx context.Context, req predictions.Request) (predictions.Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return predictions.Result{}, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/predict", bytes.NewReader(body))
	if err != nil {
		return predictions.Result{}, err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return predictions.Result{}, err
	}

	var result predictions.Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return predictions.Result{}, fmt.Errorf("%s: decode prediction: %w", providerName, err)
	}
	return result, nil
}

// FetchGames calls GET /games. Any well-formed JSON that is not an array
// (the service answers {"error": ...} when no week is complete) yields an empty list.
func (c *Client) FetchGames(ctx context.Context) ([]games.Record, error) {
	resp, err := c.do(ctx, http.MethodGet, "/games", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, rateLimitError(resp)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: decode games: %w", providerName, err)
	}

	records := make([]games.Record, 0)
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return records, nil
	}
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("%s: decode games: %w", providerName, err)
	}
	return records, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %s %s: %w", providerName, method, path, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return rateLimitError(resp)
	}
	return &providers.StatusError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Message:    errorMessage(resp.Body),
	}
}

func rateLimitError(resp *http.Response) error {
	return &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		Message:    errorMessage(resp.Body),
	}
}

// errorMessage prefers the JSON "error" field and falls back to the trimmed body text.
func errorMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, maxErrorBody))
	var envelope errorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return strings.TrimSpace(string(raw))
}
