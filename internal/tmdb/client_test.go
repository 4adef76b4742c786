package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "k", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Phone Booth", r.URL.Query().Get("query"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [{"id": 161, "title": "Phone Booth", "release_date": "2002-04-06", "overview": "A sniper."}]}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient("k")
	c.BaseURL = srv.URL
	results, err := c.Search(context.Background(), "Phone Booth")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(161), results[0].ID)
	assert.Equal(t, "2002-04-06", results[0].ReleaseDate)
}

func TestClientDetails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/161", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 161, "title": "Phone Booth", "release_date": "2002-04-06", "overview": "A sniper.", "poster_path": "/booth.jpg"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewClient("k")
	c.BaseURL = srv.URL
	d, err := c.Details(context.Background(), 161)
	require.NoError(t, err)
	assert.Equal(t, "Phone Booth", d.Title)
	assert.Equal(t, "/booth.jpg", d.PosterPath)
}

func TestClientSurfacesUpstreamFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	c := NewClient("bad")
	c.BaseURL = srv.URL
	_, err := c.Search(context.Background(), "anything")
	assert.Error(t, err)

	// malformed body is an error too, never a partial result
	srv2 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [`))
	}))
	t.Cleanup(srv2.Close)
	c.BaseURL = srv2.URL
	_, err = c.Search(context.Background(), "anything")
	assert.Error(t, err)
}
