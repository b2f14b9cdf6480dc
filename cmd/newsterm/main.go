// Command newsterm is an interactive terminal front end for the news feed API.
// Every line read from stdin starts a new search; when searches overlap only
// the most recent one is shown.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"newsfeed/internal/config"
	"newsfeed/internal/logger"
	"newsfeed/internal/view"

	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load(".env.local")
	godotenv.Load()

	apiURL := flag.String("api", envOr("NEWSFEED_API_URL", "http://localhost:8080"), "Base URL of the news feed API")
	width := flag.Int("width", 80, "Output width in terminal cells")
	timeout := flag.Duration("timeout", 30*time.Second, "Request timeout")
	level := flag.String("log.level", envOr("LOG_LEVEL", "warn"), "Log level")
	flag.Parse()

	logger.Setup(os.Stderr, *level)

	client := view.NewClient(*apiURL, *timeout)
	state := view.NewState(config.DefaultQuery)

	var (
		outMu sync.Mutex
		wg    sync.WaitGroup
	)

	show := func() {
		outMu.Lock()
		defer outMu.Unlock()
		if err := view.RenderText(os.Stdout, state.Snapshot(), *width); err != nil {
			slog.Error("error rendering results", "error", err)
		}
		fmt.Fprint(os.Stdout, "search> ")
	}

	search := func(query string) {
		ticket := state.Begin(query)
		show()

		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), *timeout)
			defer cancel()

			articles, err := client.Search(ctx, query)
			if !state.Resolve(ticket, articles, err) {
				slog.Debug("discarding stale response", "query", query, "ticket", ticket)
				return
			}
			show()
		}()
	}

	search(config.DefaultQuery)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}
		search(query)
	}

	if err := scanner.Err(); err != nil {
		slog.Error("error reading input", "error", err)
	}

	wg.Wait()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
