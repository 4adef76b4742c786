// Package tmdb is a minimal client for the themoviedb.org v3 API, covering
// the two calls the movie tracker needs: title search and detail lookup.
// No retry or timeout is configured; a failed call surfaces as an error and
// the handler reports it upstream instead of inserting a partial record.
package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// PosterBaseURL prefixes the poster_path of a detail response to form a
// full image URL.
const PosterBaseURL = "https://image.tmdb.org/t/p/w500"

// SearchResult is one row of a title search response.
type SearchResult struct {
	ID          int64  `json:"id"`           // external movie id
	Title       string `json:"title"`        // display title
	ReleaseDate string `json:"release_date"` // "YYYY-MM-DD", may be empty
	Overview    string `json:"overview"`     // plot summary
}

// Details is the full metadata of one movie.
type Details struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
	PosterPath  string `json:"poster_path"`
}

// Client calls the metadata API with a fixed api key.  BaseURL is
// overridable so tests can point the client at a stub server.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client against the production endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
		HTTP:    http.DefaultClient,
	}
}

// Search returns the movies matching the free-text query, in the order the
// API ranks them.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	v := url.Values{}
	v.Set("api_key", c.APIKey)
	v.Set("query", query)

	var body struct {
		Results []SearchResult `json:"results"`
	}
	if err := c.getJSON(ctx, "/search/movie?"+v.Encode(), &body); err != nil {
		return nil, err
	}
	return body.Results, nil
}

// Details fetches the full metadata for one external movie id.
func (c *Client) Details(ctx context.Context, id int64) (*Details, error) {
	v := url.Values{}
	v.Set("api_key", c.APIKey)

	var d Details
	if err := c.getJSON(ctx, "/movie/"+strconv.FormatInt(id, 10)+"?"+v.Encode(), &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// getJSON performs one GET and decodes the JSON response into out.  A
// non-200 status or malformed body is an error; callers never see a
// half-decoded result.
func (c *Client) getJSON(ctx context.Context, pathAndQuery string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+pathAndQuery, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("tmdb: unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tmdb: decode response: %w", err)
	}
	return nil
}
