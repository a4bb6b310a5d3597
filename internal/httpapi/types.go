package httpapi

// Request is the body of POST /. Command holds the link, optionally inside a
// sentence ("summarize https://youtu.be/...").
type Request struct {
	Command string `json:"command"`
	Context string `json:"context,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

// Response is returned by POST / for both outcomes.
type Response struct {
	Success bool   `json:"success"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Agent   string `json:"agent"`
	Version string `json:"version"`
}
