package riot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/daanteeab/demacia/internal/metrics"
)

// API base URLs. The platform host serves summoner, league and spectator
// endpoints for EUW; the regional routing host serves account and match-v5.
const (
	PlatformBaseURL = "https://euw1.api.riotgames.com"
	RegionalBaseURL = "https://europe.api.riotgames.com"
)

const requestTimeout = 10 * time.Second

// Client is a League of Legends API client pinned to the EUW platform.
// Base URLs are overridable so tests can point it at a local server.
type Client struct {
	apiKey string
	http   *http.Client
	logger zerolog.Logger
	cache  *Cache

	PlatformURL string
	RegionalURL string
}

// NewClient creates a Client with a 10 second per-call timeout and a
// process-local cache for immutable match details and league entries.
func NewClient(apiKey string, logger zerolog.Logger) *Client {
	return &Client{
		apiKey:      apiKey,
		http:        &http.Client{Timeout: requestTimeout},
		logger:      logger.With().Str("component", "riot").Logger(),
		cache:       NewDefaultCache(),
		PlatformURL: PlatformBaseURL,
		RegionalURL: RegionalBaseURL,
	}
}

// Cache exposes the client's cache, mainly for the janitor in main.
func (c *Client) Cache() *Cache {
	return c.cache
}

// get performs an authenticated GET against the Riot API and decodes the JSON
// response into result. op is a short stable name for the endpoint, used for
// logging, metrics and error reporting.
func (c *Client) get(ctx context.Context, op, url string, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &APIError{Kind: KindNetwork, Endpoint: op, Err: err}
	}
	req.Header.Set("X-Riot-Token", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.RiotRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RiotRequestsTotal.WithLabelValues(op, "network_error").Inc()
		c.logger.Error().Err(err).Str("endpoint", op).Msg("request failed")
		return &APIError{Kind: KindNetwork, Endpoint: op, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	metrics.RiotRequestsTotal.WithLabelValues(op, strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		c.logger.Warn().Int("status", resp.StatusCode).Str("endpoint", op).Msg("non-OK response")
		return &APIError{Kind: classifyStatus(resp.StatusCode), StatusCode: resp.StatusCode, Endpoint: op}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: KindNetwork, Endpoint: op, Err: err}
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &APIError{Kind: KindUpstream, StatusCode: resp.StatusCode, Endpoint: op,
			Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}
