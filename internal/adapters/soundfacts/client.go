// Package soundfacts provides the HTTP adapter for the remote song
// analysis service. It submits a song/artist pair and hands back the
// decoded JSON payload untouched; deciding whether that payload is safe to
// render belongs to the core.
package soundfacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dabeerhasan15/sounds/internal/core/ports"
)

const defaultBaseURL = "http://localhost:8090"

const analyzePath = "/api/analyze"

// Client is an HTTP client for the analysis service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// compile-time interface assertion
var _ ports.ReportSource = (*Client)(nil)

type analyzeRequest struct {
	Song   string `json:"song"`
	Artist string `json:"artist"`
}

// NewClient constructs a Client. A zero timeout disables the client-side
// deadline and leaves the transport default in charge.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch submits the song and artist for analysis and returns the decoded
// response body. Unreachable service, non-2xx status, and undecodable
// bodies are all transport-class failures wrapped in ports.UpstreamError.
// Any body that decodes as JSON is returned as-is, object or not; schema
// judgment stays with the core.
func (c *Client) Fetch(ctx context.Context, song, artist string) (any, error) {
	body, err := json.Marshal(analyzeRequest{Song: song, Artist: artist})
	if err != nil {
		return nil, fmt.Errorf("soundfacts: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("soundfacts: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ports.UpstreamError{Song: song, Artist: artist, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ports.UpstreamError{
			Song:   song,
			Artist: artist,
			Cause:  fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var raw any
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &ports.UpstreamError{
			Song:   song,
			Artist: artist,
			Cause:  fmt.Errorf("decode response: %w", err),
		}
	}

	return raw, nil
}
