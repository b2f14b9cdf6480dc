package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"newsfeed/internal/config"
	"newsfeed/internal/feed"
	"newsfeed/internal/handler"
	"newsfeed/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", os.Getenv("NEWSFEED_CONFIG"), "Path to optional YAML config file")
	flag.Parse()

	// godotenv never overrides variables that are already set, so .env.local
	// wins over .env.
	godotenv.Load(".env.local")
	godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	logger.Setup(os.Stdout, cfg.Logging.Level)

	if missing := cfg.MissingCredentials(); len(missing) > 0 {
		slog.Warn("provider credentials not set, news requests will fail", "missing", missing)
	}

	if logger.ParseLevel(cfg.Logging.Level) != slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	aggregator := feed.New(cfg)
	slog.Info("providers configured", "order", aggregator.Providers(), "max_results", cfg.Feed.MaxResults)

	r, err := handler.NewRouter(cfg, aggregator)
	if err != nil {
		log.Fatalf("error building router: %v", err)
	}

	err = r.Run(cfg.Server.Addr)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
