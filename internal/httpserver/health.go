package httpserver

import (
	"notes-client/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	HealthVersion = "1.0.0"
	ServiceName   = "notes-client"
)

// healthStatus answers a health-style route with a fixed status. The frontend keeps
// no backend connection of its own, so being able to answer is the signal.
func (srv HTTPServer) healthStatus(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.OK(c, gin.H{
			"status":  status,
			"version": HealthVersion,
			"service": ServiceName,
		})
	}
}
