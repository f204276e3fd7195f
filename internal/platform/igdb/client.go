package igdb

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"gamelib/internal/metrics"
)

// Client issues authenticated query-language requests to the IGDB API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	clientID   string
	creds      *CredentialCache
	metrics    metrics.Recorder
	log        *zap.Logger
}

func NewClient(baseURL, clientID string, creds *CredentialCache, rec metrics.Recorder, log *zap.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		clientID:   clientID,
		creds:      creds,
		metrics:    rec,
		log:        log,
	}
}

// Do posts the query body to {baseURL}/{endpoint} and decodes the response
// into out. On a 401 it invalidates the cached credential and returns
// ErrAuthExpired without retrying; a caller that wants a second attempt
// calls Do again and picks up a fresh token.
func (c *Client) Do(ctx context.Context, endpoint, query string, out any) error {
	token, err := c.creds.Token(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, strings.NewReader(query))
	if err != nil {
		return err
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Status: 0, Body: err.Error()}
	}
	defer resp.Body.Close()

	c.metrics.RecordUpstreamLatency(endpoint, time.Since(start))
	c.metrics.RecordUpstreamRequest(endpoint, resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		c.creds.Invalidate()
		c.log.Warn("upstream rejected token, credential invalidated", zap.String("endpoint", endpoint))
		return ErrAuthExpired
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &UpstreamError{Endpoint: endpoint, Status: resp.StatusCode, Body: string(body)}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UpstreamError{Endpoint: endpoint, Status: resp.StatusCode, Body: err.Error()}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return &DecodeError{Cause: err, RawBody: raw}
	}
	return nil
}
