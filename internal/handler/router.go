package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"newsfeed/internal/config"
	"newsfeed/internal/view"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, fetcher FeedFetcher) (*gin.Engine, error) {
	tmpl, err := view.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		slog.Error("panic while handling request", "path", c.Request.URL.Path, "error", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: MsgUnexpected})
	}))

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.Server.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.Server.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.SetHTMLTemplate(tmpl)

	h := NewFeedHandler(cfg, fetcher)

	r.Any("/api/news-feed", h.GetNewsFeed)
	r.GET("/news", h.GetNews)
	r.GET("/health", h.GetHealth)
	r.GET("/", h.GetIndex)

	return r, nil
}
