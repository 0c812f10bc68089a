// The cryptofetch command demonstrates the API-consumption exercise against
// the CoinGecko public API, with optional response caching.
package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/practica/exercises/internal/cache"
	"github.com/practica/exercises/internal/cli"
	"github.com/practica/exercises/internal/config"
	"github.com/practica/exercises/internal/exercises/crypto"
	"github.com/practica/exercises/internal/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cli.Fail(err)
	}
	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()

	opts := []crypto.FetcherOption{crypto.WithMaxRetries(3)}
	if c := cache.FromConfig(cfg.Cache); c != nil {
		opts = append(opts, crypto.WithCache(c, cfg.Cache.TTL))
	}
	fetcher := crypto.NewFetcher(10*time.Second, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	coins := []string{"bitcoin", "ethereum", "dogecoin"}

	cli.Header("Current Prices")
	prices, err := fetcher.Prices(ctx, coins)
	if err != nil {
		cli.Fail(err)
	}

	ids := make([]string, 0, len(prices))
	for id := range prices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("%-12s %14s %10s %12s\n", "Coin", "Price", "24h", "Market Cap")
	cli.Rule()
	for _, id := range ids {
		p := prices[id]
		fmt.Printf("%-12s %14s %10s %12s\n",
			id,
			crypto.FormatCurrency(p.USD),
			crypto.FormatPercentage(p.Change24h),
			crypto.FormatMarketCap(p.MarketCap),
		)
	}

	cli.Header("Coin Detail")
	detail, err := fetcher.Detail(ctx, "bitcoin")
	if err != nil {
		cli.Fail(err)
	}
	fmt.Printf("Name:        %s (%s)\n", detail.Name, detail.Symbol)
	fmt.Printf("Description: %s\n", detail.Description)
}
