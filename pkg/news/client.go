package news

import "context"

const (
	NoTitle         = "No title"
	NoDescription   = "No description available"
	UnknownSource   = "Unknown source"
	MissingURL      = "#"
	DefaultPageSize = 10
)

type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Source      string `json:"source"`
	URL         string `json:"url"`
	Image       string `json:"image,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

type NewsClient interface {
	Fetch(ctx context.Context, query string, limit int) ([]Article, error)
	Name() string
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
