package web

import "github.com/gin-gonic/gin"

// MapRoutes registers the frontend pages. mw runs in front of every
// state-changing route.
func MapRoutes(r gin.IRouter, h Handler, mw ...gin.HandlerFunc) {
	r.GET("/", h.Index)

	actions := r.Group("/", mw...)
	actions.POST("/login", h.Login)
	actions.POST("/register", h.Register)
	actions.POST("/logout", h.Logout)
	actions.POST("/notes", h.CreateNote)
	actions.POST("/notes/:id/delete", h.DeleteNote)
}
