// Package weather fetches forecasts from the OpenWeather one-call API.
// Responses are opaque JSON passed through to the prompt builder and the
// caller unmodified.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"agroadvisor/internal/advisor"
)

const defaultBaseURL = "https://api.openweathermap.org/data/3.0/onecall"

type Config struct {
	APIKey    string
	BaseURL   string
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

// Query identifies one forecast request. Units must be one of metric,
// imperial or standard.
type Query struct {
	Lat     float64
	Lon     float64
	Units   string
	Exclude string
}

func (q Query) withDefaults() Query {
	if q.Units == "" {
		q.Units = "metric"
	}
	if q.Exclude == "" {
		q.Exclude = "minutely"
	}
	return q
}

func (q Query) cacheKey() string {
	return fmt.Sprintf("%.4f,%.4f,%s,%s", q.Lat, q.Lon, q.Units, q.Exclude)
}

// Client is the outbound weather boundary. Identical queries within the
// cache TTL are served from a bounded in-memory cache, so bursts of
// advisory requests for the same field do not fan out to the provider.
type Client struct {
	cfg   Config
	http  *http.Client
	cache *expirable.LRU[string, json.RawMessage]
	log   *zap.Logger
}

func New(cfg Config, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.CacheSize == 0 {
		cfg.CacheSize = 256
	}
	return &Client{
		cfg:   cfg,
		http:  &http.Client{Timeout: cfg.Timeout},
		cache: expirable.NewLRU[string, json.RawMessage](cfg.CacheSize, nil, cfg.CacheTTL),
		log:   logger,
	}
}

// OneCall returns the provider's forecast JSON for the query. Failures are
// reported as transport errors; the caller decides whether to resubmit.
func (c *Client) OneCall(ctx context.Context, q Query) (json.RawMessage, error) {
	q = q.withDefaults()
	if cached, ok := c.cache.Get(q.cacheKey()); ok {
		return cached, nil
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	params.Set("units", q.Units)
	params.Set("exclude", q.Exclude)
	params.Set("appid", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &advisor.TransportError{Provider: "openweather", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &advisor.TransportError{
			Provider: "openweather",
			Err:      fmt.Errorf("status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &advisor.TransportError{Provider: "openweather", Err: err}
	}
	if !json.Valid(body) {
		return nil, &advisor.TransportError{
			Provider: "openweather",
			Err:      fmt.Errorf("malformed forecast payload"),
		}
	}

	c.cache.Add(q.cacheKey(), json.RawMessage(body))
	return body, nil
}
