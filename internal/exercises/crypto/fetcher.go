// Package crypto implements the web-scraper interview exercise: fetch
// cryptocurrency market data from the CoinGecko API with retries and
// exponential backoff. Retry policy lives here, at the call site, not in
// any shared client.
package crypto

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/practica/exercises/internal/cache"
	"github.com/practica/exercises/internal/platform/logger"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// Price is one coin's market snapshot from the simple/price endpoint.
type Price struct {
	USD       float64 `json:"usd"`
	Change24h float64 `json:"usd_24h_change"`
	MarketCap float64 `json:"usd_market_cap"`
}

// Detail is the subset of the coin detail endpoint the exercise displays.
type Detail struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description string `json:"description"`
}

// Fetcher retrieves market data with bounded retries. A zero TTL disables
// the optional read-through cache even when one is supplied.
type Fetcher struct {
	baseURL    string
	maxRetries int
	http       *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
	log        *zap.Logger
}

type FetcherOption func(*Fetcher)

// WithBaseURL points the fetcher at a different API host (tests use this).
func WithBaseURL(u string) FetcherOption {
	return func(f *Fetcher) { f.baseURL = strings.TrimRight(u, "/") }
}

// WithCache enables read-through caching of price lookups.
func WithCache(c cache.Cache, ttl time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.cache = c
		f.cacheTTL = ttl
	}
}

// WithMaxRetries overrides the retry budget (attempts = maxRetries).
func WithMaxRetries(n int) FetcherOption {
	return func(f *Fetcher) { f.maxRetries = n }
}

func NewFetcher(timeout time.Duration, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		baseURL:    defaultBaseURL,
		maxRetries: 3,
		http:       &http.Client{Timeout: timeout},
		log:        logger.With(zap.String("exercise", "crypto")),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// fetchWithRetry issues a GET and retries transport errors and non-2xx
// statuses with exponential backoff (1s, 2s, 4s...). The context cancels
// both the in-flight request and the backoff sleep.
func (f *Fetcher) fetchWithRetry(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < f.maxRetries; attempt++ {
		if attempt > 0 {
			wait := time.Duration(1<<(attempt-1)) * time.Second
			f.log.Info("retrying", zap.Int("attempt", attempt+1), zap.Duration("backoff", wait))
			select {
			case <-time.After(wait):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, err := f.fetchOnce(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		f.log.Warn("fetch attempt failed", zap.Int("attempt", attempt+1), zap.Error(err))
	}
	return nil, fmt.Errorf("all %d attempts failed for %s: %w", f.maxRetries, rawURL, lastErr)
}

func (f *Fetcher) fetchOnce(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Prices fetches USD price, 24h change and market cap for the given coin
// ids. Every requested id must be present and complete in the reply.
func (f *Fetcher) Prices(ctx context.Context, ids []string) (map[string]Price, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("no coin ids given")
	}

	cacheKey := "prices:" + strings.Join(ids, ",")
	if f.cache != nil && f.cacheTTL > 0 {
		var cached map[string]Price
		if err := f.cache.Get(ctx, cacheKey, &cached); err == nil {
			f.log.Debug("price cache hit", zap.String("key", cacheKey))
			return cached, nil
		}
	}

	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")
	q.Set("include_market_cap", "true")

	body, err := f.fetchWithRetry(ctx, f.baseURL+"/simple/price?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var prices map[string]Price
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, fmt.Errorf("failed to parse price response: %w", err)
	}
	if err := validatePrices(prices, ids); err != nil {
		return nil, err
	}

	if f.cache != nil && f.cacheTTL > 0 {
		if err := f.cache.Set(ctx, cacheKey, prices, f.cacheTTL); err != nil {
			f.log.Warn("price cache write failed", zap.Error(err))
		}
	}
	return prices, nil
}

// validatePrices checks that every requested id came back.
func validatePrices(prices map[string]Price, ids []string) error {
	for _, id := range ids {
		if _, ok := prices[id]; !ok {
			return fmt.Errorf("missing data for %s", id)
		}
	}
	return nil
}

// coinDetailResponse mirrors the coins/{id} endpoint shape.
type coinDetailResponse struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Description struct {
		En string `json:"en"`
	} `json:"description"`
}

// Detail fetches descriptive data for one coin. The description is
// truncated to 100 runes, matching the exercise's display format.
func (f *Fetcher) Detail(ctx context.Context, id string) (*Detail, error) {
	body, err := f.fetchWithRetry(ctx, f.baseURL+"/coins/"+url.PathEscape(strings.ToLower(id)))
	if err != nil {
		return nil, err
	}

	var raw coinDetailResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse detail response for %s: %w", id, err)
	}

	desc := "No description available"
	if raw.Description.En != "" {
		desc = truncate(raw.Description.En, 100) + "..."
	}
	return &Detail{
		Name:        orUnknown(raw.Name),
		Symbol:      strings.ToUpper(raw.Symbol),
		Description: desc,
	}, nil
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
