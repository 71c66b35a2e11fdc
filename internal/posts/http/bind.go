package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type field struct {
	name  string
	value *string
}

// missingFields lists fields that are absent or blank, in declaration order.
func missingFields(fields ...field) []string {
	var missing []string
	for _, f := range fields {
		if f.value == nil || strings.TrimSpace(*f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

func missingMessage(missing []string) string {
	if len(missing) == 1 {
		return "Missing '" + missing[0] + "' field"
	}
	return "Missing fields: " + strings.Join(missing, ", ")
}

// bindJSON decodes the body into dst and writes a 400 on failure.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request must be JSON"})
		return false
	}
	return true
}
