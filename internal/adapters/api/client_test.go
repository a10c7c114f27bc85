package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGetSetsBearerHeader(t *testing.T) {
	t.Parallel()

	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	res := client.Get(context.Background(), "/api/parent/receipt/requests", "tok-123")

	assert.Equal(t, ResultSuccess, res.Kind)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientGetOmitsAuthorizationWithoutToken(t *testing.T) {
	t.Parallel()

	var sawAuth bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	res := client.Get(context.Background(), "/ping", "  ")

	assert.Equal(t, ResultSuccess, res.Kind)
	assert.False(t, sawAuth)
}

func TestClientReportsHTTPErrorWithBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("nope"))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.Client())
	res := client.Get(context.Background(), "/anything", "tok")

	assert.Equal(t, ResultHTTPError, res.Kind)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
	assert.Equal(t, "nope", string(res.Body))
}

func TestClientReportsNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := NewClient(serverURL, nil)
	res := client.Get(context.Background(), "/anything", "tok")

	assert.Equal(t, ResultNetworkError, res.Kind)
	require.Error(t, res.Err)
}

func TestClientNormalizesRelativePaths(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", server.Client())
	res := client.Post(context.Background(), "api/receipt/7/pay", "tok", nil)

	assert.Equal(t, ResultSuccess, res.Kind)
	assert.Equal(t, "/api/receipt/7/pay", gotPath)
}
