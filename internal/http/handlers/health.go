package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	ready func() bool
}

// NewHealthHandler reports ready once the ready func returns true; a nil func is always ready.
func NewHealthHandler(ready func() bool) *HealthHandler {
	return &HealthHandler{ready: ready}
}

func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readyz(ctx *gin.Context) {
	if h.ready != nil && !h.ready() {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
