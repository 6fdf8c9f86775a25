package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gridin/adapters/fixtures"
	"gridin/api"
	"gridin/core/conformance"
	"gridin/internal/errors"
)

func TestAdapterMatchesSharedFixtures(t *testing.T) {
	srv := httptest.NewServer(api.NewServer("test"))
	defer srv.Close()

	adapter, err := New(srv.URL+"/", srv.Client())
	require.NoError(t, err)

	suite, err := fixtures.Load(filepath.Join("..", "..", "testdata", "fixtures"))
	require.NoError(t, err)

	// Keys the API rejects as missing are not sent over the wire
	var sendable conformance.Suite
	for _, c := range suite.Cases {
		if c.Kind.Arity() == 2 && c.Inputs[0] == "" {
			continue
		}
		sendable.Add(c)
	}

	report, err := conformance.Run(context.Background(), adapter, &sendable)
	require.NoError(t, err)
	for _, m := range report.Mismatches {
		t.Error(m)
	}
	assert.Zero(t, report.Skipped)

	stats := adapter.Stats()
	assert.Equal(t, int64(len(sendable.Cases)), stats.Requests)
	assert.Zero(t, stats.Errors)
}

func TestAdapterReportsServerErrors(t *testing.T) {
	srv := httptest.NewServer(api.NewServer("test"))
	defer srv.Close()

	adapter, err := New(srv.URL, srv.Client())
	require.NoError(t, err)

	_, err = adapter.Equivalent(context.Background(), "", "1")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeStorage))
	assert.Contains(t, err.Error(), "INPUT_ERROR")
	assert.Equal(t, int64(1), adapter.Stats().Errors)
}

func TestAdapterNon200WithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	adapter, err := New(srv.URL, nil)
	require.NoError(t, err)

	_, err = adapter.Display(context.Background(), "2/3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 502")
}

func TestNewRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:8080", "://x"} {
		_, err := New(raw, nil)
		assert.Error(t, err, raw)
	}
}
