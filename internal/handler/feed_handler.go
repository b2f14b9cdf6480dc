package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"newsfeed/internal/config"
	"newsfeed/internal/feed"
	"newsfeed/pkg/news"

	"github.com/gin-gonic/gin"
)

type FeedFetcher interface {
	Fetch(ctx context.Context, query string) ([]news.Article, error)
	Providers() []string
}

type FeedHandler struct {
	cfg     *config.Config
	fetcher FeedFetcher
}

func NewFeedHandler(cfg *config.Config, fetcher FeedFetcher) *FeedHandler {
	return &FeedHandler{cfg: cfg, fetcher: fetcher}
}

func (h *FeedHandler) GetNewsFeed(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Error: MsgMethodNotAllowed})
		return
	}

	query := h.query(c)

	articles, status, msg := h.search(c.Request.Context(), query)
	if msg != "" {
		c.JSON(status, ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, articles)
}

func (h *FeedHandler) GetHealth(c *gin.Context) {
	res := HealthResponse{
		Status:  "healthy",
		Missing: h.cfg.MissingCredentials(),
	}

	for _, name := range h.fetcher.Providers() {
		res.Providers = append(res.Providers, ProviderStatus{
			Name:       name,
			Configured: h.cfg.ProviderConfigured(name),
		})
	}

	if len(res.Missing) > 0 {
		res.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, res)
		return
	}

	c.JSON(http.StatusOK, res)
}

// query returns the trimmed q parameter, or the configured default when it
// is absent or blank.
func (h *FeedHandler) query(c *gin.Context) string {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return h.cfg.Feed.DefaultQuery
	}
	return q
}

// search checks credentials before any provider is called, then maps the
// aggregator outcome onto a status and a user-facing message. An empty
// message means success.
func (h *FeedHandler) search(ctx context.Context, query string) ([]news.Article, int, string) {
	if missing := h.cfg.MissingCredentials(); len(missing) > 0 {
		slog.Error("missing provider credentials", "missing", missing)
		return nil, http.StatusInternalServerError, MsgMissingConfig
	}

	articles, err := h.fetcher.Fetch(ctx, query)
	if errors.Is(err, feed.ErrNoResults) {
		slog.Warn("no articles from any provider", "query", query)
		return nil, http.StatusInternalServerError, MsgNoResults
	}
	if err != nil {
		slog.Error("error fetching news feed", "query", query, "error", err)
		return nil, http.StatusInternalServerError, MsgUnexpected
	}

	return articles, http.StatusOK, ""
}
