package view

import (
	"embed"
	"html/template"
	"time"

	"newsfeed/pkg/news"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	IndexTemplate = "index.tmpl"
	NewsTemplate  = "news.tmpl"
)

const dateLayout = "Jan 2, 2006, 03:04 PM"

// Card is one rendered article.
type Card struct {
	news.Article
	Date string
}

type Page struct {
	Snapshot
	Cards []Card
	Hint  string
}

func NewPage(snap Snapshot) Page {
	cards := make([]Card, len(snap.Articles))
	for i, a := range snap.Articles {
		cards[i] = Card{Article: a, Date: FormatDate(a.PublishedAt)}
	}

	p := Page{Snapshot: snap, Cards: cards}
	if snap.Phase == PhaseError {
		p.Hint = ConfigHint
	}
	return p
}

// FormatDate renders an RFC 3339 timestamp for display. Empty or unparsable
// input yields "".
func FormatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.tmpl")
}
