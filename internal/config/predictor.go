package config

import (
	"strings"
	"time"
)

// PredictorConfig controls how we talk to the prediction service.
type PredictorConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
}

// CORSConfig lists origins allowed to call the JSON pass-through API.
type CORSConfig struct {
	AllowedOrigins []string
}

func loadPredictor() PredictorConfig {
	return PredictorConfig{
		BaseURL:       envOrDefault(envPredictorURL, defaultPredictorURL),
		Timeout:       durationEnvOrDefault(envPredictorTTL, defaultPredictorTimeout),
		RetryAttempts: intEnvOrDefault(envPredictorRetry, defaultPredictorRetry),
	}
}

func loadCORS() CORSConfig {
	raw := envOrDefault(envCORSOrigins, defaultCORSOrigins)
	origins := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = append(origins, defaultCORSOrigins)
	}
	return CORSConfig{AllowedOrigins: origins}
}
