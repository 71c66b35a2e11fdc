package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/postcraft/postcraft-gateway/config"
	"github.com/postcraft/postcraft-gateway/internal/logger"
	"github.com/postcraft/postcraft-gateway/internal/storage/docstore"
)

// StoreOpener connects to the document store with a service account.
type StoreOpener func(ctx context.Context, sa docstore.ServiceAccount) (docstore.Store, error)

// FirebaseHandler serves store diagnostics and runtime reconfiguration.
type FirebaseHandler struct {
	holder *docstore.Holder
	cfg    config.FirebaseConfig
	open   StoreOpener
}

func NewFirebaseHandler(holder *docstore.Holder, cfg config.FirebaseConfig, open StoreOpener) *FirebaseHandler {
	return &FirebaseHandler{holder: holder, cfg: cfg, open: open}
}

func (h *FirebaseHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/debug_firebase", h.debug)
	r.POST("/set_firebase_json", h.setConfig)
}

func (h *FirebaseHandler) debug(c *gin.Context) {
	env := gin.H{
		"FIREBASE_PROJECT_ID":       h.cfg.ProjectID != "",
		"FIREBASE_PRIVATE_KEY":      h.cfg.PrivateKey != "",
		"FIREBASE_PRIVATE_KEY_ID":   h.cfg.PrivateKeyID != "",
		"FIREBASE_CLIENT_EMAIL":     h.cfg.ClientEmail != "",
		"FIREBASE_CLIENT_ID":        h.cfg.ClientID != "",
		"FIREBASE_CLIENT_CERT_URL":  h.cfg.ClientCertURL != "",
		"FIREBASE_CREDENTIALS_PATH": h.cfg.CredentialsPath != "",
	}

	key := gin.H{"present": h.cfg.PrivateKey != "", "length": len(h.cfg.PrivateKey)}
	if h.cfg.PrivateKey != "" {
		if _, err := docstore.NormalizePrivateKey(h.cfg.PrivateKey); err != nil {
			key["valid"] = false
			key["error"] = err.Error()
		} else {
			key["valid"] = true
		}
	}

	resp := gin.H{
		"environment":      env,
		"private_key":      key,
		"project_id":       h.cfg.ProjectID,
		"collection":       h.holder.Collection(),
		"store_configured": h.holder.Configured(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err := h.holder.View(func(s docstore.Store) error {
		resp["active_project_id"] = s.ProjectID()
		return s.Ping(ctx, h.holder.Collection())
	})
	switch {
	case errors.Is(err, docstore.ErrNotConfigured):
		resp["connection"] = StatusNotConfigured
	case err != nil:
		logger.NewLogger(c.Request.Context()).LogError("debug_firebase", err)
		resp["connection"] = StatusConnectionFailed
		resp["connection_error"] = err.Error()
		c.JSON(http.StatusInternalServerError, resp)
		return
	default:
		resp["connection"] = StatusConnected
	}

	c.JSON(http.StatusOK, resp)
}

type setConfigReq struct {
	FirebaseConfig *docstore.ServiceAccount `json:"firebase_config"`
}

func (h *FirebaseHandler) setConfig(c *gin.Context) {
	log := logger.NewLogger(c.Request.Context())

	var req setConfigReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Request must be JSON"})
		return
	}
	if req.FirebaseConfig == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Missing 'firebase_config' field"})
		return
	}

	sa := *req.FirebaseConfig
	sa.ProjectID = strings.TrimSpace(sa.ProjectID)
	sa.ClientEmail = strings.TrimSpace(sa.ClientEmail)
	if err := sa.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	store, err := h.open(ctx, sa)
	if err != nil {
		log.LogError("set_firebase_json", err)
		status := http.StatusInternalServerError
		if errors.Is(err, docstore.ErrInvalidPrivateKey) || errors.Is(err, docstore.ErrMissingCredentials) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := store.Ping(ctx, h.holder.Collection()); err != nil {
		log.LogError("set_firebase_json", err)
		_ = store.Close()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Firebase connection test failed: " + err.Error()})
		return
	}

	if err := h.holder.Swap(store); err != nil {
		log.LogWarnf("set_firebase_json", "closing previous store: %v", err)
	}
	log.LogInfof("set_firebase_json", "store reconfigured project_id=%s", sa.ProjectID)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Firebase configured successfully",
		"project_id": sa.ProjectID,
	})
}
