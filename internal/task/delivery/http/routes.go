package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Static
// segments (summary, groups, calendar) are registered alongside the :id
// wildcard; gin resolves them with static-first priority.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/summary", h.Summary)
		tasks.GET("/groups", h.Groups)
		tasks.GET("/calendar", h.Calendar)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/toggle", h.Toggle)
	}
}
