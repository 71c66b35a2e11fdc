package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SetGinMode maps APP_ENV onto gin's run modes. Unknown values leave debug mode on.
func SetGinMode(env string) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "production", "prod", "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
