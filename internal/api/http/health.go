package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postcraft/postcraft-gateway/internal/llm"
)

const (
	StatusConnected        = "connected"
	StatusConfigured       = "configured"
	StatusNotConfigured    = "not_configured"
	StatusConnectionFailed = "connection_failed"
)

// Endpoints is the public route list reported by GET /.
var Endpoints = []string{
	"/",
	"/health",
	"/generate_post",
	"/regenerate_post",
	"/modify_post",
	"/generate_comment",
	"/get_projects",
	"/generate_project_post",
	"/projects_health",
	"/debug_firebase",
	"/set_firebase_json",
}

// GenerationInfo describes the text generation provider.
type GenerationInfo interface {
	Configured() bool
	ProviderInfo() (name, model string)
	Stats() llm.Snapshot
}

// StoreStatus describes the document store.
type StoreStatus interface {
	Configured() bool
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status         string       `json:"status"`
	Timestamp      time.Time    `json:"timestamp"`
	Service        string       `json:"service"`
	Version        string       `json:"version"`
	Provider       string       `json:"provider,omitempty"`
	ProviderStatus string       `json:"provider_status"`
	StoreStatus    string       `json:"store_status"`
	ProviderCalls  llm.Snapshot `json:"provider_calls"`
}

type HealthHandler struct {
	serviceName string
	version     string
	generation  GenerationInfo
	store       StoreStatus
}

func NewHealthHandler(serviceName, version string, generation GenerationInfo, store StoreStatus) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		generation:  generation,
		store:       store,
	}
}

func (h *HealthHandler) Root(c *gin.Context) {
	name, model := h.generation.ProviderInfo()
	c.JSON(http.StatusOK, gin.H{
		"status":    "API is running",
		"provider":  name,
		"model":     model,
		"endpoints": Endpoints,
	})
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	providerStatus := StatusNotConfigured
	if h.generation.Configured() {
		providerStatus = StatusConfigured
	}

	storeStatus := StatusNotConfigured
	if h.store.Configured() {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			storeStatus = StatusConnectionFailed
		} else {
			storeStatus = StatusConnected
		}
	}

	name, _ := h.generation.ProviderInfo()
	c.JSON(http.StatusOK, HealthResponse{
		Status:         "healthy",
		Timestamp:      time.Now().UTC(),
		Service:        h.serviceName,
		Version:        h.version,
		Provider:       name,
		ProviderStatus: providerStatus,
		StoreStatus:    storeStatus,
		ProviderCalls:  h.generation.Stats(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Root)
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
