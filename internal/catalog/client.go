// Package catalog reads the public coffee API: two read-only category
// lists (hot, iced) cached in Redis.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/sony/gobreaker/v2"
)

const DefaultBaseURL = "https://api.sampleapis.com/coffee"

type Category string

const (
	CategoryHot  Category = "hot"
	CategoryIced Category = "iced"
)

func (c Category) Valid() bool {
	return c == CategoryHot || c == CategoryIced
}

// Client fetches one category list per call. Every request carries a hard
// timeout, and a circuit breaker fails fast when the upstream is down
// instead of letting callers hang on a dead host.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[[]domain.CatalogItem]
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[[]domain.CatalogItem](gobreaker.Settings{
		Name:    "catalog-api",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		breaker:    breaker,
	}
}

func (c *Client) FetchCategory(ctx context.Context, category Category) ([]domain.CatalogItem, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown catalog category %q", category)
	}

	items, err := c.breaker.Execute(func() ([]domain.CatalogItem, error) {
		return c.fetch(ctx, category)
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s catalog: %w", category, err)
	}
	return items, nil
}

func (c *Client) fetch(ctx context.Context, category Category) ([]domain.CatalogItem, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, category)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var items []domain.CatalogItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return items, nil
}
