package server

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"assetdeck/internal/apperr"
	"assetdeck/internal/model"
)

// fail writes the uniform error envelope. Errors flagged for capture are
// logged with their cause; the envelope only ever carries the user-facing
// message.
func (s *Server) fail(c *gin.Context, err error) {
	ae := apperr.From("server", err)
	if ae.Captured {
		s.log.Error("request failed",
			zap.String("label", ae.Label),
			zap.String("path", c.Request.URL.Path),
			zap.Error(ae.Cause),
		)
	}
	c.JSON(ae.Status, gin.H{"error": ae.Message})
}

// pageEnvelope is the list response shape.
type pageEnvelope struct {
	Items   any   `json:"items"`
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// parseSelection reads a bulk-action selection from form fields: repeated
// `ids` values and the optional `all` sentinel, which overrides the ids.
func parseSelection(c *gin.Context) model.Selection {
	sel := model.Selection{
		All: c.PostForm("all") == model.SentinelAll,
	}
	for _, raw := range c.PostFormArray("ids") {
		var id uint
		if _, err := fmt.Sscanf(raw, "%d", &id); err == nil && id > 0 {
			sel.IDs = append(sel.IDs, id)
		}
	}
	return sel
}

// parsePagination reads page/per_page/search query params. Values are
// normalized again at the store; this only converts types.
func parsePagination(c *gin.Context) (page, perPage int, search string) {
	page, _ = strconv.Atoi(c.Query("page"))
	perPage, _ = strconv.Atoi(c.Query("per_page"))
	return page, perPage, c.Query("search")
}
