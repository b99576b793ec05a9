package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page writes a paginated collection envelope:
// {success, count, total, page, pages, data, source}
func Page(c *gin.Context, data any, count, total, page, pages int, source string) {
	body := gin.H{
		"success": true,
		"count":   count,
		"total":   total,
		"page":    page,
		"pages":   pages,
		"data":    data,
	}
	if source != "" {
		body["source"] = source
	}
	c.JSON(http.StatusOK, body)
}

// Collection writes an unpaginated collection envelope: {success, count, data}.
func Collection(c *gin.Context, data any, count int, source string) {
	body := gin.H{
		"success": true,
		"count":   count,
		"data":    data,
	}
	if source != "" {
		body["source"] = source
	}
	c.JSON(http.StatusOK, body)
}

// Data writes a single-object envelope: {success, data}.
func Data(c *gin.Context, status int, data any, source string) {
	if status == 0 {
		status = http.StatusOK
	}
	body := gin.H{
		"success": true,
		"data":    data,
	}
	if source != "" {
		body["source"] = source
	}
	c.JSON(status, body)
}

// Message writes a bare confirmation envelope: {success, message}.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": msg,
	})
}

// Error writes {success:false, error} with optional field details.
func Error(c *gin.Context, status int, msg string, details any) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	body := gin.H{
		"success": false,
		"error":   msg,
	}
	if details != nil {
		body["details"] = details
	}
	c.JSON(status, body)
}

// AbortError writes an error envelope and aborts the middleware chain.
func AbortError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}
