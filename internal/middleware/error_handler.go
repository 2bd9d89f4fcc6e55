package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler is the terminal error shaper: any error attached to the
// context that no handler answered becomes an HTTP 500. Release mode
// hides the detail behind a fixed message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log.Printf("request_id=%s unhandled error: %v", RequestIDFromContext(c), err)

		if gin.Mode() == gin.ReleaseMode {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "server error"},
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message": err.Error(),
			"error":   err.Error(),
		})
	}
}
