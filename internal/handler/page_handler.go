package handler

import (
	"errors"
	"net/http"

	"newsfeed/internal/view"

	"github.com/gin-gonic/gin"
)

func (h *FeedHandler) GetIndex(c *gin.Context) {
	c.HTML(http.StatusOK, view.IndexTemplate, nil)
}

// GetNews renders the search page for q. Each request drives its own view
// state through a single search.
func (h *FeedHandler) GetNews(c *gin.Context) {
	query := h.query(c)

	state := view.NewState(query)
	ticket := state.Begin(query)

	articles, _, msg := h.search(c.Request.Context(), query)
	var err error
	if msg != "" {
		err = errors.New(msg)
	}
	state.Resolve(ticket, articles, err)

	c.HTML(http.StatusOK, view.NewsTemplate, view.NewPage(state.Snapshot()))
}
