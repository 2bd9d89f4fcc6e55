package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Hello answers the root route.
func Hello(c *gin.Context) {
	c.String(http.StatusOK, "Hello, world!")
}

// Health is the liveness probe.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Aware API",
		"version": "0.1.0",
		"status":  "operational",
	})
}
