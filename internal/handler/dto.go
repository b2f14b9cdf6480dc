package handler

const (
	MsgMethodNotAllowed = "Method not allowed"
	MsgMissingConfig    = "Missing required environment variables. Please check your .env.local file."
	MsgNoResults        = "Unable to fetch news from any source. Please check your API keys and try again."
	MsgUnexpected       = "Failed to fetch news feed"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProviderStatus struct {
	Name       string `json:"name"`
	Configured bool   `json:"configured"`
}

type HealthResponse struct {
	Status    string           `json:"status"`
	Providers []ProviderStatus `json:"providers"`
	Missing   []string         `json:"missing,omitempty"`
}
