package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/postcraft/postcraft-gateway/internal/posts/domain"
	"github.com/postcraft/postcraft-gateway/internal/posts/service"
	projectdomain "github.com/postcraft/postcraft-gateway/internal/projects/domain"
)

type Handler struct {
	svc *service.PostService
}

func Register(r gin.IRouter, svc *service.PostService) {
	h := &Handler{svc: svc}

	r.POST("/generate_post", h.generatePost)
	r.POST("/regenerate_post", h.regeneratePost)
	r.POST("/modify_post", h.modifyPost)
	r.POST("/generate_comment", h.generateComment)
	r.POST("/generate_project_post", h.generateProjectPost)
}

type contextReq struct {
	Context *string `json:"context"`
}

func (h *Handler) generatePost(c *gin.Context) {
	var req contextReq
	if !bindJSON(c, &req) {
		return
	}
	if missing := missingFields(field{"context", req.Context}); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingMessage(missing)})
		return
	}

	post, err := h.svc.Generate(c.Request.Context(), *req.Context)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

func (h *Handler) regeneratePost(c *gin.Context) {
	var req contextReq
	if !bindJSON(c, &req) {
		return
	}
	if missing := missingFields(field{"context", req.Context}); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingMessage(missing)})
		return
	}

	post, err := h.svc.Regenerate(c.Request.Context(), *req.Context)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

type modifyReq struct {
	Context     *string `json:"context"`
	CurrentPost *string `json:"current_post"`
	Action      *string `json:"action"`
}

func (h *Handler) modifyPost(c *gin.Context) {
	var req modifyReq
	if !bindJSON(c, &req) {
		return
	}
	missing := missingFields(
		field{"context", req.Context},
		field{"current_post", req.CurrentPost},
		field{"action", req.Action},
	)
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingMessage(missing)})
		return
	}

	action, err := domain.ParseAction(*req.Action)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Use 'reduce' or 'elaborate'."})
		return
	}

	post, err := h.svc.Modify(c.Request.Context(), *req.CurrentPost, action)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}

type commentReq struct {
	PostText       *string `json:"post_text"`
	PostAuthor     *string `json:"post_author"`
	Refinement     string  `json:"refinement"`
	CurrentComment string  `json:"current_comment"`
}

func (h *Handler) generateComment(c *gin.Context) {
	var req commentReq
	if !bindJSON(c, &req) {
		return
	}
	missing := missingFields(
		field{"post_text", req.PostText},
		field{"post_author", req.PostAuthor},
	)
	if len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": missingMessage(missing)})
		return
	}

	comment, err := h.svc.GenerateComment(c.Request.Context(), domain.CommentRequest{
		PostText:       *req.PostText,
		PostAuthor:     strings.TrimSpace(*req.PostAuthor),
		Refinement:     req.Refinement,
		CurrentComment: req.CurrentComment,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *Handler) generateProjectPost(c *gin.Context) {
	var project projectdomain.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Request must be JSON"})
		return
	}
	if strings.TrimSpace(project.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Project title is required"})
		return
	}

	post, err := h.svc.GenerateProjectPost(c.Request.Context(), project)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"post":          post,
		"project_title": strings.TrimSpace(project.Title),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidAction), errors.Is(err, domain.ErrMissingTitle):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
