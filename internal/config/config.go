package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the web client.
type Config struct {
	Port      string
	Provider  string
	Predictor PredictorConfig
	CORS      CORSConfig
	Metrics   MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
// Values from a .env file (ENV_FILE) are applied first without overriding the real environment.
func Load() Config {
	_ = loadEnvFile(envOrDefault(envFile, defaultEnvFile))

	return Config{
		Port:      envOrDefault(envPort, defaultPort),
		Provider:  envOrDefault(envProvider, defaultProvider),
		Predictor: loadPredictor(),
		CORS:      loadCORS(),
		Metrics:   loadMetrics(),
	}
}

// loadEnvFile applies the dotenv file at path; a missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
