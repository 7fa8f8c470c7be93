package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/games"
	"github.com/preston-bernstein/nfl-predictor-web/internal/domain/predictions"
	"github.com/preston-bernstein/nfl-predictor-web/internal/metrics"
)

const (
	// Reads are attempted once unless the caller asks for retries.
	defaultRetryAttempts = 1
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with metrics and optional retry/backoff for idempotent reads.
// Predict is never retried.
type retryingProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	backoffFn    backoffFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingProvider wraps the given provider. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DataProvider {
	return NewRetryingProviderWithRNG(inner, logger, recorder, name, nil, maxAttempts, backoff)
}

// NewRetryingProviderWithRNG is NewRetryingProvider with an explicit jitter source.
func NewRetryingProviderWithRNG(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, rng *rand.Rand, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	if name == "" {
		name = "provider"
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		rng:          rng,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchTeams(ctx context.Context) ([]string, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return withRetry(ctx, r, "teams", r.inner.FetchTeams)
}

func (r *retryingProvider) FetchGames(ctx context.Context) ([]games.Record, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}
	return withRetry(ctx, r, "games", r.inner.FetchGames)
}

func (r *retryingProvider) Predict(ctx context.Context, req predictions.Request) (predictions.Result, error) {
	if r.inner == nil {
		return predictions.Result{}, ErrProviderUnavailable
	}
	start := time.Now()
	res, err := r.inner.Predict(ctx, req)
	r.observe(err, time.Since(start))
	if err != nil {
		logWithUpstream(ctx, r.logger, slog.LevelWarn, r.providerName, "prediction failed", "err", err)
	}
	return res, err
}

func withRetry[T any](ctx context.Context, r *retryingProvider, op string, fetch func(context.Context) (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		out, err := fetch(ctx)
		r.observe(err, time.Since(start))
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		logWithUpstream(ctx, r.logger, slog.LevelWarn, r.providerName, "upstream fetch retry",
			"op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(r.computeDelay(err, attempt)):
		}
	}

	logWithUpstream(ctx, r.logger, slog.LevelWarn, r.providerName, "upstream fetch failed",
		"op", op, "attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}

func (r *retryingProvider) observe(err error, took time.Duration) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordUpstreamAttempt(r.providerName, took, err)
	if rlErr, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
	}
}

// computeDelay honors Retry-After on rate limits, otherwise jitters the backoff into [base/2, base].
func (r *retryingProvider) computeDelay(err error, attempt int) time.Duration {
	if rlErr, ok := AsRateLimitError(err); ok && rlErr.RetryAfter > 0 {
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	half := base / 2
	r.rngMu.Lock()
	jitter := time.Duration(r.rng.Int63n(int64(half) + 1))
	r.rngMu.Unlock()
	return half + jitter
}
