package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorMessage is the body shape shared by validation and not-found
// answers.
func errorMessage(message string) gin.H {
	return gin.H{"error": gin.H{"message": message}}
}

// storeError hands an unexpected store failure to the terminal error
// middleware.
func storeError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindBody decodes the JSON request body. An empty body binds as an
// empty object so required-field checks report the missing fields
// themselves.
func bindBody(c *gin.Context, out any) bool {
	if err := c.ShouldBindJSON(out); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, errorMessage("Invalid request body"))
		return false
	}
	return true
}
