// Package fetch provides the authenticated client for the upstream NFT
// statistics API and one fetch function per metric endpoint.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sirupsen/logrus"

	"github.com/yourorg/nft-collection-dashboard/internal/config"
)

// Granularity is the time-bucket width for historical series requests.
type Granularity string

// Granularities accepted by the upstream API.
const (
	GranularityOneMin  Granularity = "ONE_MIN"
	GranularityOneHour Granularity = "ONE_HOUR"
	GranularityOneDay  Granularity = "ONE_DAY"
)

// Window sizes used by the collection detail fetches.
const (
	floorPriceHours      = 24
	ownershipHistoryDays = 30
)

// RemoteError reports an upstream HTTP failure with the status and the
// upstream message preserved. It is never retried here.
type RemoteError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("upstream %s: status %d: %s", e.Endpoint, e.StatusCode, e.Message)
}

// Client is an explicitly constructed, immutable handle on the upstream
// API: base URL, CDN URL and bearer credential are fixed at construction.
type Client struct {
	baseURL    string
	cdnURL     string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a Client from configuration. Retries stay off unless
// RetryMax is raised; every failed call surfaces to its caller directly.
func NewClient(cfg config.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = cfg.RetryMax
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 3 * time.Second
	retryClient.Logger = nil

	return &Client{
		baseURL:    cfg.BaseURL,
		cdnURL:     cfg.CDNURL,
		apiKey:     cfg.APIKey,
		httpClient: retryClient.StandardClient(),
	}
}

// envelope is the wrapper every upstream response uses.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Post issues an authenticated JSON request and decodes the enveloped
// rows into out. out must be a pointer to a slice of the row type.
func (c *Client) Post(ctx context.Context, endpoint string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("error encoding request for %s: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error creating request for %s: %w", endpoint, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	logrus.WithFields(logrus.Fields{
		"endpoint": endpoint,
	}).Debug("Fetching upstream data")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error fetching %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &RemoteError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    string(msg),
		}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("error decoding %s response: %w", endpoint, err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("error decoding %s rows: %w", endpoint, err)
	}
	return nil
}

// ImageURL builds the CDN URL for a collection's sample image.
func (c *Client) ImageURL(collectionID string) string {
	return fmt.Sprintf("%s/collection/%s?apiKey=%s&format=webp", c.cdnURL, collectionID, c.apiKey)
}
