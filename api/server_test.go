package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestCheck(t *testing.T) {
	s := NewServer("test")

	tests := []struct {
		name     string
		body     string
		correct  bool
		mixed    bool
		valid    bool
		display  string
		formated string
	}{
		{"fraction tolerance", `{"key":"2/3","response":".667"}`, true, false, true, "2/3", ".667"},
		{"mixed number", `{"key":"5/2","response":"21/2"}`, false, true, true, "5/2", "21/2"},
		{"interval", `{"key":"[1/3,2/3]","response":"1/2"}`, true, false, false, "1/3 ≤ x ≤ 2/3", " 1/2"},
		{"blank response", `{"key":"0"}`, false, false, false, "0", "    "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/v1/check", tt.body)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			var resp CheckResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.correct, resp.Correct)
			assert.Equal(t, tt.mixed, resp.MixedAnswer)
			assert.Equal(t, tt.valid, resp.ValidResponse)
			assert.Equal(t, tt.display, resp.KeyDisplay)
			assert.Equal(t, tt.formated, resp.FormattedResponse)
			assert.True(t, resp.KeyParseable)
			assert.Equal(t, rec.Header().Get(RequestIDHeader), resp.RequestID)
		})
	}
}

func TestCheckErrors(t *testing.T) {
	s := NewServer("test")

	tests := []struct {
		name string
		body string
	}{
		{"missing key", `{"response":"1"}`},
		{"bad json", `{"key":`},
		{"unknown field", `{"key":"1","answer":"1"}`},
		{"two objects", `{"key":"1"} {"key":"2"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, s, http.MethodPost, "/v1/check", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "INPUT_ERROR", resp.Error.Code)
			assert.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestDisplayAndFormat(t *testing.T) {
	s := NewServer("test")

	rec := do(t, s, http.MethodPost, "/v1/display", `{"text":"(1,5);(8,12)"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var d DisplayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "1 < x < 5 or 8 < x < 12", d.Display)

	rec = do(t, s, http.MethodPost, "/v1/format", `{"text":"1/3;2/3"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var f FormatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, " 1/3", f.Formatted)
	assert.False(t, f.Valid)
}

func TestRequestID(t *testing.T) {
	s := NewServer("test")

	rec := do(t, s, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get(RequestIDHeader))
	assert.NoError(t, err)

	id := uuid.New().String()
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(RequestIDHeader, id)
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.Equal(t, id, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/version", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid\r\n")
	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	assert.NotEqual(t, "not-a-uuid\r\n", rec.Header().Get(RequestIDHeader))
}

func TestVersion(t *testing.T) {
	rec := do(t, NewServer("1.2.3"), http.MethodGet, "/version", "")
	var v map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	assert.Equal(t, "1.2.3", v["version"])
	assert.Equal(t, "v1", v["api_version"])
}

func TestMethodNotAllowed(t *testing.T) {
	rec := do(t, NewServer("test"), http.MethodGet, "/v1/check", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- NewServer("test").Run(ctx, "127.0.0.1:0", time.Second, time.Second)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
