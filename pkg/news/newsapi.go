package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const newsAPIBaseURL = "https://newsapi.org/v2/everything"

type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string, timeout time.Duration) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		baseURL:    newsAPIBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *NewsAPIClient) Name() string {
	return "newsapi"
}

func (c *NewsAPIClient) Fetch(ctx context.Context, query string, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("apiKey", c.apiKey)
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("sortBy", "publishedAt")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", err)
	}
	defer resp.Body.Close()

	var raw newsAPIResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&raw)

	if resp.StatusCode < 200 || resp.StatusCode > 299 || raw.Status == "error" {
		if raw.Message != "" {
			return nil, fmt.Errorf("newsapi fetch: status %d: %s: %s", resp.StatusCode, raw.Code, raw.Message)
		}
		return nil, fmt.Errorf("newsapi fetch: unexpected status %d", resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("newsapi decode: %w", decodeErr)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		articles = append(articles, item.normalize())
	}

	return articles, nil
}

func (item newsAPIArticle) normalize() Article {
	return Article{
		Title:       orDefault(item.Title, NoTitle),
		Description: orDefault(item.Description, NoDescription),
		Source:      orDefault(item.Source.Name, UnknownSource),
		URL:         orDefault(item.URL, MissingURL),
		Image:       item.URLToImage,
		PublishedAt: item.PublishedAt,
	}
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Code     string           `json:"code"`
	Message  string           `json:"message"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Source      newsAPISource `json:"source"`
	URL         string        `json:"url"`
	URLToImage  string        `json:"urlToImage"`
	PublishedAt string        `json:"publishedAt"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
