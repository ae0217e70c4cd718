package rms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/JonWolf1234/current-rms-schedule/internal/config"
	"github.com/JonWolf1234/current-rms-schedule/internal/logging"
	"github.com/JonWolf1234/current-rms-schedule/pkg/utils"
)

// Client is an HTTP client bound to one Current RMS account. Auth uses the
// X-SUBDOMAIN / X-AUTH-TOKEN header pair. The client is immutable after
// construction and safe for concurrent use.
type Client struct {
	baseURL    string
	subdomain  string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logging.Logger
}

// NewClient creates a Current RMS client from configuration
func NewClient(cfg *config.Config) *Client {
	logger := logging.GetGlobalLogger()

	limit := rate.Limit(cfg.CurrentRMS.RateLimit)
	if cfg.CurrentRMS.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := cfg.CurrentRMS.RateBurst
	if burst < 1 {
		burst = 1
	}

	logger.Info("Current RMS client initialized", map[string]interface{}{
		"base_url":   cfg.CurrentRMS.BaseURL,
		"subdomain":  cfg.CurrentRMS.Subdomain,
		"timeout":    cfg.CurrentRMS.Timeout.String(),
		"rate_limit": cfg.CurrentRMS.RateLimit,
	})

	return &Client{
		baseURL:   strings.TrimRight(utils.GetStringOrDefault(cfg.CurrentRMS.BaseURL, "https://api.current-rms.com/api/v1"), "/"),
		subdomain: cfg.CurrentRMS.Subdomain,
		apiKey:    cfg.CurrentRMS.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.CurrentRMS.Timeout,
		},
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// Get requests a single resource path from the Current RMS API and decodes
// the JSON response envelope. Non-2xx statuses are returned as errors; no
// retries are performed.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (map[string]interface{}, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait failed: %w", err)
	}

	requestURL := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if encoded := query.Encode(); encoded != "" {
		requestURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-SUBDOMAIN", c.subdomain)
	req.Header.Set("X-AUTH-TOKEN", c.apiKey)

	c.logger.Debug("Making Current RMS API request", map[string]interface{}{
		"path":  path,
		"query": query.Encode(),
	})

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("current-rms request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read current-rms response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, utils.NewRemoteAPIError(fmt.Sprintf("status %d from %s: %s",
			resp.StatusCode, path, utils.Truncate(string(body), 512)))
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode current-rms response: %w", err)
	}

	return envelope, nil
}
