package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MarliRenee/aware-api/internal/monitoring"
)

// Monitor exposes the key-gated monitoring endpoints. With no key
// configured the whole surface is disabled.
type Monitor struct {
	svc *monitoring.Service
	key string
}

func NewMonitor(svc *monitoring.Service, key string) *Monitor {
	return &Monitor{svc: svc, key: strings.TrimSpace(key)}
}

func (m *Monitor) checkKey(c *gin.Context) bool {
	if m.key == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Monitoring API is disabled"})
		return false
	}

	provided := strings.TrimSpace(c.GetHeader("X-Monitoring-Key"))
	if provided == "" || provided != m.key {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid monitoring key"})
		return false
	}
	return true
}

func (m *Monitor) Status(c *gin.Context) {
	if !m.checkKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": m.svc.StatusText()})
}

func (m *Monitor) Connections(c *gin.Context) {
	if !m.checkKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": m.svc.ConnectionsText()})
}

func (m *Monitor) Runtime(c *gin.Context) {
	if !m.checkKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": m.svc.RuntimeText()})
}

func (m *Monitor) Counts(c *gin.Context) {
	if !m.checkKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": m.svc.CountsText()})
}

func (m *Monitor) All(c *gin.Context) {
	if !m.checkKey(c) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": m.svc.AllText()})
}

func (m *Monitor) Snapshot(c *gin.Context) {
	if !m.checkKey(c) {
		return
	}
	c.JSON(http.StatusOK, m.svc.Snapshot())
}
