package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/get_projects", h.list)
	r.GET("/projects_health", h.health)
}
