package config

import "time"

const (
	envFile            = "ENV_FILE"
	envPort            = "PORT"
	envProvider        = "PROVIDER"
	envPredictorURL    = "PREDICTOR_BASE_URL"
	envPredictorTTL    = "PREDICTOR_TIMEOUT"
	envPredictorRetry  = "PREDICTOR_RETRY_ATTEMPTS"
	envCORSOrigins     = "CORS_ALLOWED_ORIGINS"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	defaultEnvFile     = ".env"
	defaultPort        = "3000"
	defaultProvider    = "http"
	defaultMetricsPort = "9090"

	defaultPredictorURL = "http://127.0.0.1:5000"
	// Predictions are computed synchronously upstream; 10s covers a cold model load.
	defaultPredictorTimeout = 10 * time.Second
	// Reads are attempted once unless retries are explicitly enabled.
	defaultPredictorRetry = 1
	defaultCORSOrigins    = "*"
)
