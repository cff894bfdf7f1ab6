package httpx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter builds the ops router served next to each gRPC listener:
// liveness, readiness, nothing else.
func NewRouter(service string, log *zap.Logger, ready func() bool) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(RequestID(), Logger(log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": service, "status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		if ready != nil && !ready() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"service": service, "status": "not ready"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"service": service, "status": "ready"})
	})
	return r
}
