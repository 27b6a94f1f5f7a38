package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	webDelivery "notes-client/internal/note/delivery/web"
)

func (srv HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.middleware.Recovery(), srv.middleware.RequestID())
	if srv.mode == "debug" {
		srv.gin.Use(gin.Logger())
	}
	srv.l.Infof(context.Background(), "HTTP mode: %s, environment: %s", srv.mode, srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthStatus("healthy"))
	srv.gin.GET("/ready", srv.healthStatus("ready"))
	srv.gin.GET("/live", srv.healthStatus("alive"))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	if srv.notesHandler == nil {
		srv.l.Infof(ctx, "Notes handler not configured, skipping frontend routes")
		return
	}

	webDelivery.MapRoutes(srv.gin, srv.notesHandler, srv.middleware.RateLimit())
	srv.l.Infof(ctx, "Notes frontend routes registered at /")
}
