// Package vlr is a thin client for the VLR statistics API. It covers the
// three read surfaces the collector walks: event listings, per-event series
// listings, and per-series map statistics.
package vlr

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultBaseURL = "https://api.vlr.gg/v1"

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// ListEventsParams scopes an event listing. Limit <= 0 means no cap.
type ListEventsParams struct {
	Tier   Tier
	Status Status
	Limit  int
}

// ListEvents fetches events for a tier across the requested statuses.
func (c *Client) ListEvents(ctx context.Context, p ListEventsParams) ([]Event, error) {
	query := url.Values{}
	if p.Tier != "" {
		query.Set("tier", string(p.Tier))
	}
	if p.Status != "" {
		query.Set("status", string(p.Status))
	}
	if p.Limit > 0 {
		query.Set("limit", strconv.Itoa(p.Limit))
	}

	var env struct {
		Data []Event `json:"data"`
	}
	if err := c.getJSON(ctx, "/events", query, &env); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return env.Data, nil
}

// EventMatches fetches every series played under an event.
func (c *Client) EventMatches(ctx context.Context, eventID int) ([]Match, error) {
	var env struct {
		Data []Match `json:"data"`
	}
	path := fmt.Sprintf("/events/%d/matches", eventID)
	if err := c.getJSON(ctx, path, nil, &env); err != nil {
		return nil, fmt.Errorf("event %d matches: %w", eventID, err)
	}
	return env.Data, nil
}

// SeriesMaps fetches per-map statistics for one series.
func (c *Client) SeriesMaps(ctx context.Context, matchID int) ([]MapStats, error) {
	var env struct {
		Data []MapStats `json:"data"`
	}
	path := fmt.Sprintf("/series/%d/maps", matchID)
	if err := c.getJSON(ctx, path, nil, &env); err != nil {
		return nil, fmt.Errorf("series %d maps: %w", matchID, err)
	}
	return env.Data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(body, 200))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
