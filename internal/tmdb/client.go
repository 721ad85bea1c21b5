package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"
)

var (
	// ErrRemote wraps network and non-200 failures from the API.
	ErrRemote = errors.New("tmdb request failed")
	// ErrMalformed wraps responses missing required fields.
	ErrMalformed = errors.New("tmdb response malformed")
)

type Client struct {
	config     *Config
	httpClient *http.Client
}

func NewClient(config *Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", c.config.APIKey)

	fullURL := fmt.Sprintf("%s%s?%s", c.config.BaseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	log.Printf("TMDb API request: %s%s", c.config.BaseURL, endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrRemote, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("TMDb API error: status %d, body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("%w: status %d", ErrRemote, resp.StatusCode)
	}

	return body, nil
}

// SearchMovies searches the API by title. An empty result list is not
// an error.
func (c *Client) SearchMovies(ctx context.Context, query string) (*MovieSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("include_adult", "false")

	body, err := c.get(ctx, "/search/movie", params)
	if err != nil {
		return nil, err
	}

	var result MovieSearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &result, nil
}

// GetMovieDetails fetches the detail record for a remote id. The
// fields needed to build a local movie must all be present.
func (c *Client) GetMovieDetails(ctx context.Context, remoteID int) (*MovieDetails, error) {
	body, err := c.get(ctx, fmt.Sprintf("/movie/%d", remoteID), nil)
	if err != nil {
		return nil, err
	}

	var details MovieDetails
	if err := json.Unmarshal(body, &details); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	if err := details.validate(); err != nil {
		return nil, err
	}

	return &details, nil
}
