package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/postcraft/postcraft-gateway/internal/projects/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if errors.Is(err, domain.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "Firebase not configured"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "projects": items, "count": len(items)})
}

func (h *Handler) health(c *gin.Context) {
	connected := false
	count := 0
	if h.svc.Configured() {
		if items, err := h.svc.List(c.Request.Context()); err == nil {
			connected = true
			count = len(items)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"firebase_connected": connected,
		"gemini_connected":   h.generation.Configured(),
		"projects_count":     count,
	})
}
