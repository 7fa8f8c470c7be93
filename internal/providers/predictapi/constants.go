package predictapi

import "time"

const (
	defaultBaseURL     = "http://127.0.0.1:5000"
	defaultHTTPTimeout = 10 * time.Second
	// Error bodies are only read for their message; cap what we buffer.
	maxErrorBody = 4096
)
