package feed

import "newsfeed/pkg/news"

// Merge concatenates groups in order, keeps the first article for each URL
// and stops at limit. A limit below 1 means no cap.
func Merge(groups [][]news.Article, limit int) []news.Article {
	seen := map[string]struct{}{}
	out := make([]news.Article, 0, 32)
	for _, g := range groups {
		for _, a := range g {
			if _, ok := seen[a.URL]; ok {
				continue
			}
			seen[a.URL] = struct{}{}
			out = append(out, a)
			if limit > 0 && len(out) >= limit {
				return out
			}
		}
	}
	return out
}
