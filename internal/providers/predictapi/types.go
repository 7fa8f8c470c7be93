package predictapi

const providerName = "predictapi"

// errorResponse is the service's error envelope, e.g. {"error": "Invalid team code"}.
type errorResponse struct {
	Error string `json:"error"`
}
