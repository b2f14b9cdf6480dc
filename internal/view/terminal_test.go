package view

import (
	"bytes"
	"strings"
	"testing"

	"newsfeed/pkg/news"

	"github.com/go-playground/assert/v2"
	"github.com/mattn/go-runewidth"
)

func TestRenderText_TruncatesToWidth(t *testing.T) {
	snap := Snapshot{
		Query: "robots",
		Phase: PhaseSuccess,
		Articles: []news.Article{
			{
				Title:       strings.Repeat("ロボット", 20),
				Description: strings.Repeat("long description ", 10),
				Source:      "example.com",
				URL:         "https://example.com/robots",
				PublishedAt: "2026-10-16T08:30:00Z",
			},
		},
	}

	var buf bytes.Buffer
	err := RenderText(&buf, snap, 50)

	assert.Equal(t, nil, err)
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if runewidth.StringWidth(line) > 50 {
			t.Errorf("line wider than 50 cells: %q", line)
		}
	}
	assert.Equal(t, true, strings.Contains(buf.String(), "example.com • Oct 16, 2026, 08:30 AM"))
}

func TestRenderText_States(t *testing.T) {
	tests := []struct {
		phase Phase
		want  string
	}{
		{PhaseLoading, "Loading news..."},
		{PhaseSearching, "Searching..."},
		{PhaseEmpty, "No news found"},
		{PhaseError, ConfigHint},
	}

	for _, tt := range tests {
		t.Run(string(tt.phase), func(t *testing.T) {
			var buf bytes.Buffer
			err := RenderText(&buf, Snapshot{Query: "q", Phase: tt.phase, Error: "failed"}, 80)

			assert.Equal(t, nil, err)
			assert.Equal(t, true, strings.Contains(buf.String(), tt.want))
		})
	}
}
