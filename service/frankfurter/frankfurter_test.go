package frankfurter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("amount"))
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"amount":100,"base":"USD","date":"2024-01-01","rates":{"EUR":92.3456}}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	quote, err := c.Latest(context.Background(), "100", "USD", "EUR")
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", quote.Date)
	assert.Equal(t, 92.3456, quote.Rates["EUR"])
}

func TestLatestUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	_, err = c.Latest(context.Background(), "1", "USD", "EUR")
	assert.Error(t, err)
}

func TestLatestMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>rate limited</html>"))
	}))
	defer srv.Close()

	c, err := New(srv.URL + "/")
	require.NoError(t, err)

	_, err = c.Latest(context.Background(), "1", "USD", "EUR")
	assert.Error(t, err)
}

func TestNewRejectsBadURL(t *testing.T) {
	_, err := New("://nope")
	assert.Error(t, err)
}
