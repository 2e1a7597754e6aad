package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every endpoint answers with the same envelope:
// {success, data?, message?, error?, count?}.

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

// JSONSuccessWithCount adds the record count next to list payloads.
func JSONSuccessWithCount(c *gin.Context, code int, data interface{}, count int) {
	c.JSON(code, gin.H{"success": true, "data": data, "count": count})
}

// JSONError carries only the fixed human-readable message (400/404 cases).
func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}

// JSONInternalError keeps the fixed message and surfaces the underlying
// error text in "error".
func JSONInternalError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}
