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

const googleBaseURL = "https://www.googleapis.com/customsearch/v1"

// GoogleClient queries the Google Custom Search JSON API. It needs both an
// API key and a search engine id (cx).
type GoogleClient struct {
	apiKey     string
	engineID   string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleClient(apiKey, engineID string, timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		apiKey:     apiKey,
		engineID:   engineID,
		baseURL:    googleBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *GoogleClient) Name() string {
	return "google"
}

func (c *GoogleClient) Fetch(ctx context.Context, query string, limit int) ([]Article, error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("google request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("google fetch: unexpected status %d", resp.StatusCode)
	}

	var raw googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("google decode: %w", err)
	}

	articles := make([]Article, 0, len(raw.Items))
	for _, item := range raw.Items {
		articles = append(articles, item.normalize())
	}

	return articles, nil
}

// Custom Search results carry no publish date, so PublishedAt stays empty.
func (item googleItem) normalize() Article {
	return Article{
		Title:       orDefault(item.Title, NoTitle),
		Description: orDefault(item.Snippet, NoDescription),
		Source:      orDefault(item.DisplayLink, UnknownSource),
		URL:         orDefault(item.Link, MissingURL),
		Image:       item.Pagemap.image(),
	}
}

func (p googlePagemap) image() string {
	if len(p.CSEImage) > 0 && p.CSEImage[0].Src != "" {
		return p.CSEImage[0].Src
	}
	if len(p.CSEThumbnail) > 0 && p.CSEThumbnail[0].Src != "" {
		return p.CSEThumbnail[0].Src
	}
	return ""
}

type googleResponse struct {
	Items []googleItem `json:"items"`
}

type googleItem struct {
	Title       string        `json:"title"`
	Snippet     string        `json:"snippet"`
	DisplayLink string        `json:"displayLink"`
	Link        string        `json:"link"`
	Pagemap     googlePagemap `json:"pagemap"`
}

type googlePagemap struct {
	CSEImage     []googleImage `json:"cse_image"`
	CSEThumbnail []googleImage `json:"cse_thumbnail"`
}

type googleImage struct {
	Src string `json:"src"`
}
