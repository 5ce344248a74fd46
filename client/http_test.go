package client

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Send
// ---------------------------------------------------------------------------

func TestSend_DecodesStructuredReply(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody ChatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"response_text": "Here you go",
			"response_type": "tool_success",
			"tool_names": ["Google_Search", "Browse_Website"]
		}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Send("find me something")
	require.NoError(t, err)

	assert.Equal(t, "/chat", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "find me something", gotBody.Message)

	assert.Equal(t, "Here you go", resp.ResponseText)
	assert.Equal(t, "tool_success", resp.ResponseType)
	assert.Equal(t, []string{"Google_Search", "Browse_Website"}, resp.ToolNames)
}

func TestSend_UnknownFieldsIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response_text":"ok","something_new":42}`))
	}))
	defer srv.Close()

	resp, err := New(srv.URL).Send("q")
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.ResponseText)
	assert.Empty(t, resp.ResponseType)
	assert.Empty(t, resp.ToolNames)
}

func TestSend_ErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom","response_type":"error"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Send("q")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "want *APIError, got %T: %v", err, err)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "boom", apiErr.Message)
	assert.Equal(t, "API 500: boom", apiErr.Error())
}

func TestSend_ErrorWithoutMessageFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Send("q")
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusText(http.StatusServiceUnavailable), apiErr.Message)
}

func TestSend_NonJSONErrorStaysPlain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream exploded</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Send("q")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "HTML bodies must not become APIError")
	assert.Contains(t, err.Error(), "502")
}

func TestSend_MalformedSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json at all"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Send("q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode chat response")
}

func TestSend_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := New(srv.URL).Send("q")
	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

// ---------------------------------------------------------------------------
// ClearHistory
// ---------------------------------------------------------------------------

func TestClearHistory_PostsToClear(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).ClearHistory())
	assert.Equal(t, "/clear", gotPath)
	assert.Equal(t, http.MethodPost, gotMethod)
}

func TestClearHistory_ErrorBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"no database"}`))
	}))
	defer srv.Close()

	err := New(srv.URL).ClearHistory()
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "no database", apiErr.Message)
}

func TestClearHistory_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	err := New(srv.URL).ClearHistory()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clear history")
}
