package sanity

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuet-cad-club/clubsite-api/pkg/config"
	appErrors "github.com/cuet-cad-club/clubsite-api/pkg/errors"
)

func newTestClient(serverURL string) *Client {
	client := NewClient(config.ContentStoreConfig{
		ProjectID:  "proj",
		Dataset:    "ds",
		APIVersion: "2024-01-01",
		Timeout:    2 * time.Second,
	})
	client.baseURL = serverURL
	return client
}

func TestClientQueryDecodesResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"result":[{"_id":"e1","title":"CAD Fest"}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	var docs []struct {
		ID    string `json:"_id"`
		Title string `json:"title"`
	}
	client := newTestClient(server.URL)
	err := client.Query(context.Background(), "events", `*[_type == "event"]`, &docs)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "CAD Fest", docs[0].Title)
}

func TestClientQueryNullResultLeavesDestUntouched(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":null}`)) //nolint:errcheck
	}))
	defer server.Close()

	var doc *struct {
		Title string `json:"title"`
	}
	client := newTestClient(server.URL)
	err := client.Query(context.Background(), "home", `*[_type == "homeContent"][0]`, &doc)

	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestClientQueryBackendErrorIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var docs []struct{}
	client := newTestClient(server.URL)
	err := client.Query(context.Background(), "events", `*`, &docs)

	assert.ErrorContains(t, err, "content backend unavailable")
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
	assert.Equal(t, http.StatusBadGateway, appErr.Status)
}

func TestClientQueryTransportErrorIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	var docs []struct{}
	client := newTestClient(server.URL)
	err := client.Query(context.Background(), "events", `*`, &docs)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
}

func TestClientQueryMalformedBodyIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`)) //nolint:errcheck
	}))
	defer server.Close()

	var docs []struct{}
	client := newTestClient(server.URL)
	err := client.Query(context.Background(), "events", `*`, &docs)

	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrUpstream.Code, appErr.Code)
}

func TestClientQueryObserveReceivesLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":[]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	var observed string
	client.Observe = func(label string, duration time.Duration) {
		observed = label
	}

	var docs []struct{}
	require.NoError(t, client.Query(context.Background(), "workshops", `*`, &docs))
	assert.Equal(t, "workshops", observed)
}

func TestClientBaseURLHosts(t *testing.T) {
	cdn := NewClient(config.ContentStoreConfig{ProjectID: "p", Dataset: "d", APIVersion: "2024-01-01", UseCDN: true})
	assert.Equal(t, "https://p.apicdn.sanity.io/v2024-01-01/data/query/d", cdn.baseURL)

	live := NewClient(config.ContentStoreConfig{ProjectID: "p", Dataset: "d", APIVersion: "2024-01-01"})
	assert.Equal(t, "https://p.api.sanity.io/v2024-01-01/data/query/d", live.baseURL)
}
