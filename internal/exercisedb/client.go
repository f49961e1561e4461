// Package exercisedb is a thin client for the ExerciseDB search API. It is
// an optional enrichment source: every failure mode (no API key, network
// error, non-200 response, bad JSON) degrades to an empty result set so the
// rest of the app never depends on the service being reachable.
package exercisedb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://exercisedb.p.rapidapi.com"

// Exercise is a single search result from the remote catalog.
type Exercise struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BodyPart  string `json:"bodyPart"`
	Equipment string `json:"equipment"`
	Target    string `json:"target"`
	GifURL    string `json:"gifUrl"`
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

func New(apiKey, baseURL string, log *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Search queries the catalog by exercise name. Results are best-effort:
// any failure is logged and returns an empty slice, never an error.
func (c *Client) Search(ctx context.Context, query string) []Exercise {
	if !c.Enabled() || query == "" {
		return []Exercise{}
	}

	u := fmt.Sprintf("%s/exercises/name/%s", c.baseURL, url.PathEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.log.Warn("exercisedb request build failed", "error", err)
		return []Exercise{}
	}
	req.Header.Set("X-RapidAPI-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("exercisedb search failed", "query", query, "error", err)
		return []Exercise{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("exercisedb search non-200", "query", query, "status", resp.StatusCode)
		return []Exercise{}
	}

	var results []Exercise
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.log.Warn("exercisedb decode failed", "error", err)
		return []Exercise{}
	}
	if results == nil {
		results = []Exercise{}
	}
	return results
}
