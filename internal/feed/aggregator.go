// Package feed combines the results of several news providers into one
// ordered, deduplicated article list.
package feed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"newsfeed/internal/config"
	"newsfeed/pkg/news"
)

var ErrNoResults = errors.New("no articles from any provider")

// ProviderResult is the outcome of one provider call. Exactly one of
// Articles or Err is meaningful.
type ProviderResult struct {
	Provider string
	Articles []news.Article
	Err      error
}

type Aggregator struct {
	providers  []news.NewsClient
	pageSize   int
	maxResults int
}

// NewAggregator keeps providers in the given order; earlier providers win
// URL collisions.
func NewAggregator(providers []news.NewsClient, pageSize, maxResults int) *Aggregator {
	return &Aggregator{
		providers:  providers,
		pageSize:   pageSize,
		maxResults: maxResults,
	}
}

// New builds the vendor clients in the configured priority order.
func New(cfg *config.Config) *Aggregator {
	providers := make([]news.NewsClient, 0, len(cfg.Providers.Order))
	for _, name := range cfg.Providers.Order {
		switch name {
		case config.ProviderGoogle:
			providers = append(providers, news.NewGoogleClient(cfg.Providers.GoogleAPIKey, cfg.Providers.GoogleCSEID, cfg.HTTP.Timeout))
		case config.ProviderNewsAPI:
			providers = append(providers, news.NewNewsAPIClient(cfg.Providers.NewsAPIKey, cfg.HTTP.Timeout))
		}
	}
	return NewAggregator(providers, cfg.Feed.PageSize, cfg.Feed.MaxResults)
}

func (a *Aggregator) Providers() []string {
	names := make([]string, len(a.providers))
	for i, p := range a.providers {
		names[i] = p.Name()
	}
	return names
}

// Fetch queries every provider, logs and drops failed ones, and returns the
// merged list. ErrNoResults is returned when nothing usable came back.
func (a *Aggregator) Fetch(ctx context.Context, query string) ([]news.Article, error) {
	results := a.collect(ctx, query)

	groups := make([][]news.Article, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			slog.Error("provider fetch failed", "provider", r.Provider, "query", query, "error", r.Err)
			continue
		}
		slog.Debug("provider fetch complete", "provider", r.Provider, "query", query, "count", len(r.Articles))
		groups = append(groups, r.Articles)
	}

	articles := Merge(groups, a.maxResults)
	if len(articles) == 0 {
		return nil, ErrNoResults
	}

	return articles, nil
}

// collect runs the providers concurrently. Each call is isolated: an error or
// a panic only affects its own slot, and slots keep provider order.
func (a *Aggregator) collect(ctx context.Context, query string) []ProviderResult {
	results := make([]ProviderResult, len(a.providers))

	var wg sync.WaitGroup
	for i, p := range a.providers {
		wg.Add(1)
		go func(i int, p news.NewsClient) {
			defer wg.Done()
			results[i] = fetchIsolated(ctx, p, query, a.pageSize)
		}(i, p)
	}
	wg.Wait()

	return results
}

func fetchIsolated(ctx context.Context, p news.NewsClient, query string, limit int) (res ProviderResult) {
	res.Provider = p.Name()

	defer func() {
		if r := recover(); r != nil {
			res.Articles = nil
			res.Err = fmt.Errorf("%s: panic: %v", res.Provider, r)
		}
	}()

	res.Articles, res.Err = p.Fetch(ctx, query, limit)
	if res.Err != nil {
		res.Articles = nil
	}
	return res
}
