package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

const minWidth = 40

// RenderText writes snap as plain text cards no wider than width cells.
func RenderText(w io.Writer, snap Snapshot, width int) error {
	if width < minWidth {
		width = minWidth
	}

	var b strings.Builder
	rule := strings.Repeat("-", width)

	fmt.Fprintf(&b, "%s\n", runewidth.Truncate("News: "+snap.Query, width, "…"))
	b.WriteString(rule + "\n")

	switch snap.Phase {
	case PhaseLoading:
		b.WriteString("Loading news...\n")
	case PhaseSearching:
		b.WriteString("Searching...\n")
	case PhaseError:
		fmt.Fprintf(&b, "Error: %s\n%s\n", snap.Error, ConfigHint)
	case PhaseEmpty:
		b.WriteString("No news found\nTry searching for a different topic.\n")
	}

	for i, a := range snap.Articles {
		meta := a.Source
		if d := FormatDate(a.PublishedAt); d != "" {
			meta += " • " + d
		}
		num := fmt.Sprintf("%2d. ", i+1)
		indent := strings.Repeat(" ", runewidth.StringWidth(num))
		inner := width - runewidth.StringWidth(num)

		b.WriteString(num + runewidth.Truncate(a.Title, inner, "…") + "\n")
		b.WriteString(indent + runewidth.Truncate(meta, inner, "…") + "\n")
		b.WriteString(indent + runewidth.Truncate(a.Description, inner, "…") + "\n")
		b.WriteString(indent + runewidth.Truncate(a.URL, inner, "…") + "\n")
		b.WriteString(rule + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
