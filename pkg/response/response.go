package response

import (
	"errors"
	"log"
	"net/http"

	"storefront-backend/pkg/apperr"

	"github.com/gin-gonic/gin"
)

// OK writes the success envelope.
func OK(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// Error renders a domain error to the fixed response shape. Anything that is
// not an *apperr.Error is treated as an internal failure and logged, never
// exposed to the caller.
func Error(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		appErr = apperr.Internal(err)
	} else if appErr.Status >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	errBody := gin.H{"code": appErr.Code, "message": appErr.Message}
	if appErr.Details != nil {
		errBody["details"] = appErr.Details
	}
	c.JSON(appErr.Status, gin.H{"success": false, "error": errBody})
}
