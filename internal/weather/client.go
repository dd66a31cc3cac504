package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/singleflight"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/logger"
	"github.com/osse101/Cultivation_Go/internal/metrics"
)

// Config configures the OpenWeatherMap client
type Config struct {
	APIKey    string
	BaseURL   string
	Lang      string
	Timeout   time.Duration
	CacheTTL  time.Duration
	CacheSize int
}

// Client fetches current conditions from the OpenWeatherMap 2.5 API.
// Results are cached per location and concurrent misses are coalesced.
type Client struct {
	cfg    Config
	http   *http.Client
	cache  *expirable.LRU[string, domain.Weather]
	flight singleflight.Group
}

// NewClient creates a new weather client. A nil httpClient uses a client with cfg.Timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Lang == "" {
		cfg.Lang = DefaultLang
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		cfg:   cfg,
		http:  httpClient,
		cache: expirable.NewLRU[string, domain.Weather](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

// Current returns current conditions for a city name
func (c *Client) Current(ctx context.Context, location string) (*domain.Weather, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: no api key configured", domain.ErrWeatherUnavailable)
	}

	key := strings.ToLower(strings.TrimSpace(location))
	if w, ok := c.cache.Get(key); ok {
		metrics.WeatherLookups.WithLabelValues(metrics.LookupResultCacheHit).Inc()
		return &w, nil
	}

	// The shared fetch outlives any single caller's cancellation
	ch := c.flight.DoChan(key, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.cfg.Timeout)
		defer cancel()
		w, err := c.fetch(fetchCtx, location)
		if err != nil {
			return nil, err
		}
		c.cache.Add(key, *w)
		return *w, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		metrics.WeatherLookups.WithLabelValues(metrics.LookupResultError).Inc()
		return nil, fmt.Errorf("%w: %w", domain.ErrWeatherUnavailable, ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		metrics.WeatherLookups.WithLabelValues(metrics.LookupResultError).Inc()
		return nil, res.Err
	}

	if res.Shared {
		logger.FromContext(ctx).Debug("Weather lookup coalesced", "location", location)
	}
	metrics.WeatherLookups.WithLabelValues(metrics.LookupResultFetched).Inc()

	w := res.Val.(domain.Weather)
	return &w, nil
}

func (c *Client) fetch(ctx context.Context, location string) (*domain.Weather, error) {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.cfg.APIKey)
	q.Set("units", "metric")
	q.Set("lang", c.cfg.Lang)

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + CurrentWeatherPath + "?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrWeatherUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "message").String()
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrWeatherUnavailable, resp.StatusCode, msg)
	}

	return parseCurrent(body, location)
}

// parseCurrent maps an OpenWeatherMap current-weather document
func parseCurrent(body []byte, location string) (*domain.Weather, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: malformed response", domain.ErrWeatherUnavailable)
	}
	doc := gjson.ParseBytes(body)

	temp := doc.Get("main.temp")
	if !temp.Exists() {
		return nil, fmt.Errorf("%w: response missing main.temp", domain.ErrWeatherUnavailable)
	}

	condition := doc.Get("weather.0.description").String()
	if condition == "" {
		condition = doc.Get("weather.0.main").String()
	}

	name := doc.Get("name").String()
	if name == "" {
		name = location
	}

	visibility := 10.0
	if v := doc.Get("visibility"); v.Exists() {
		visibility = v.Float() / 1000
	}

	return &domain.Weather{
		Condition:   condition,
		Temperature: temp.Float(),
		Humidity:    int(doc.Get("main.humidity").Int()),
		Pressure:    int(doc.Get("main.pressure").Int()),
		WindSpeed:   doc.Get("wind.speed").Float(),
		Visibility:  visibility,
		Location:    name,
		Source:      domain.WeatherSourceLive,
	}, nil
}
