package client

import "fmt"

// ChatRequest for POST /chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse from POST /chat. Every field is optional on the wire; the
// renderer substitutes documented fallbacks for anything missing.
type ChatResponse struct {
	ResponseText string   `json:"response_text"`
	ResponseType string   `json:"response_type"`
	ToolNames    []string `json:"tool_names"`
}

// ErrorResponse is the body shape the service uses for non-2xx replies.
type ErrorResponse struct {
	Error        string `json:"error"`
	ResponseType string `json:"response_type"`
}

// APIError is a non-2xx reply whose body carried usable JSON. Message holds
// the service's error field, or the HTTP status text when the field was
// absent.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API %d: %s", e.Status, e.Message)
}
