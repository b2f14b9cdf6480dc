package view

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsfeed/pkg/news"
)

const fallbackError = "Failed to fetch news"

// Client calls the news feed endpoint of a running API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Search returns the articles for query. A non-2xx answer becomes an error
// carrying the server's message.
func (c *Client) Search(ctx context.Context, query string) ([]news.Article, error) {
	endpoint := c.baseURL + "/api/news-feed?q=" + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fallbackError, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
			return nil, errors.New(fallbackError)
		}
		return nil, errors.New(body.Error)
	}

	var articles []news.Article
	if err := json.NewDecoder(resp.Body).Decode(&articles); err != nil {
		return nil, fmt.Errorf("%s: %w", fallbackError, err)
	}
	return articles, nil
}
