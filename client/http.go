package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client talks to the agent service. Requests carry no deadline: a chat
// completion takes as long as it takes, and the UI stays responsive while
// one is outstanding.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a Client for the service at baseURL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
	}
}

// Send posts one user message to /chat and decodes the structured reply.
// A non-2xx status with a JSON body comes back as *APIError; any other
// failure (transport error, non-JSON body) is a plain error.
func (c *Client) Send(text string) (*ChatResponse, error) {
	resp, err := c.postJSON("/chat", ChatRequest{Message: text})
	if err != nil {
		return nil, fmt.Errorf("send message: %w", err)
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return nil, c.parseError(resp)
	}
	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	return &result, nil
}

// ClearHistory asks the service to drop its server-side conversation
// history. The response body is not consumed beyond error detection.
func (c *Client) ClearHistory() error {
	resp, err := c.postJSON("/clear", nil)
	if err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	defer resp.Body.Close()
	if !success(resp.StatusCode) {
		return c.parseError(resp)
	}
	return nil
}

func (c *Client) postJSON(path string, body any) (*http.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequest("POST", c.BaseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.HTTPClient.Do(req)
}

func success(status int) bool {
	return status >= 200 && status < 300
}

// parseError turns a non-2xx response into an *APIError when the body is
// JSON. Anything else (HTML error pages, truncated bodies) stays a plain
// error so callers treat it as a transport failure.
func (c *Client) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var apiErr ErrorResponse
	if err := json.Unmarshal(body, &apiErr); err != nil {
		return fmt.Errorf("API %d: %s", resp.StatusCode, string(body))
	}
	message := apiErr.Error
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: message}
}
