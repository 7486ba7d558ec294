package catalogapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"learning-buddy-be/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
	gobreaker "github.com/sony/gobreaker/v2"
)

const (
	breakerName           = "catalog-api"
	breakerFailuresToTrip = 5
	breakerOpenTimeout    = 30 * time.Second
	breakerHalfOpenProbes = 1
	defaultRequestTimeout = 10 * time.Second
	maxResponseBodyBytes  = 8 << 20
	logModule             = "CATALOG_API"
)

var ErrNotConfigured = errors.New("catalog api is not configured")

type Config struct {
	BaseURL  string
	Key      string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// Client reads catalog tables from a PostgREST endpoint. Calls go through a
// circuit breaker and successful bodies are cached per request URL.
type Client struct {
	baseURL string
	key     string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker[[]byte]
	cache   *cache.Cache
	logger  logger.ILogger
}

type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog api returned %d: %s", e.StatusCode, e.Body)
}

func NewClient(cfg Config, log logger.ILogger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		key:     cfg.Key,
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
	if cfg.CacheTTL > 0 {
		c.cache = cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}

	c.cb = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: breakerHalfOpenProbes,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailuresToTrip
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn(logModule, "Circuit breaker state changed", map[string]interface{}{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			})
		},
	})

	return c
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != "" && c.key != ""
}

// Get returns the raw JSON body of /rest/v1/<table>. Each filter becomes
// column=eq.value.
func (c *Client) Get(ctx context.Context, table string, filters map[string]string) ([]byte, error) {
	if !c.IsConfigured() {
		return nil, ErrNotConfigured
	}

	endpoint := c.endpoint(table, filters)
	if c.cache != nil {
		if body, ok := c.cache.Get(endpoint); ok {
			return body.([]byte), nil
		}
	}

	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.do(ctx, endpoint)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.logger.Warn(logModule, "Request rejected by circuit breaker", map[string]interface{}{
				"table": table,
			})
		}
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(endpoint, body, cache.DefaultExpiration)
	}
	return body, nil
}

// Fetch decodes the rows of table into T.
func Fetch[T any](ctx context.Context, c *Client, table string, filters map[string]string) ([]T, error) {
	body, err := c.Get(ctx, table, filters)
	if err != nil {
		return nil, err
	}
	var rows []T
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("decode %s rows: %w", table, err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (c *Client) endpoint(table string, filters map[string]string) string {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	if len(filters) == 0 {
		return endpoint
	}
	params := url.Values{}
	for col, v := range filters {
		params.Set(col, "eq."+v)
	}
	return endpoint + "?" + params.Encode()
}

func (c *Client) do(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.key)
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
