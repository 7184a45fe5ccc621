// Package joke fetches a random joke over HTTP and tracks the state of that
// interaction for display.
package joke

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/aretw0/quipnote/pkg/core"
)

// DefaultURL is the fixed remote resource a joke is read from.
const DefaultURL = "https://official-joke-api.appspot.com/random_joke"

// Client performs one GET per Fetch. It adds no retry and no timeout of its
// own; whatever the http.Client provides is what applies.
type Client struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

// NewClient creates a Client. A nil httpClient means http.DefaultClient and
// an empty url means DefaultURL.
func NewClient(url string, httpClient *http.Client, logger *slog.Logger) *Client {
	if url == "" {
		url = DefaultURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{url: url, http: httpClient, logger: logger}
}

// URL returns the endpoint the client reads from.
func (c *Client) URL() string {
	return c.url
}

// Fetch issues the GET and decodes the body as a core.Joke. Every failure is
// wrapped with core.ErrFetch.
func (c *Client) Fetch(ctx context.Context) (core.Joke, error) {
	reqID := uuid.NewString()
	log := c.logger.With("request_id", reqID, "url", c.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return core.Joke{}, fmt.Errorf("%w: build request: %w", core.ErrFetch, err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debug("fetching joke")
	resp, err := c.http.Do(req)
	if err != nil {
		return core.Joke{}, fmt.Errorf("%w: %w", core.ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return core.Joke{}, fmt.Errorf("%w: unexpected status %d", core.ErrFetch, resp.StatusCode)
	}

	var j core.Joke
	if err := json.NewDecoder(resp.Body).Decode(&j); err != nil {
		return core.Joke{}, fmt.Errorf("%w: decode body: %w", core.ErrFetch, err)
	}
	log.Debug("joke fetched", "status", resp.StatusCode)
	return j, nil
}

var _ core.JokeSource = (*Client)(nil)
