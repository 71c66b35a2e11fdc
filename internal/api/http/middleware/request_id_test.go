package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/postcraft/postcraft-gateway/internal/logger"
)

func newRouter(seen *string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*seen = logger.RequestID(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString("request_id")})
	})
	return r
}

func TestRequestIDMiddlewareKeepsIncomingID(t *testing.T) {
	var seen string
	r := newRouter(&seen)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "client-id-42")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "client-id-42", rr.Header().Get(RequestIDHeader))
	assert.Equal(t, "client-id-42", seen)
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	var seen string
	r := newRouter(&seen)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	rid := rr.Header().Get(RequestIDHeader)
	require.NotEmpty(t, rid)
	_, err := uuid.Parse(rid)
	assert.NoError(t, err)
	assert.Equal(t, rid, seen)
}
