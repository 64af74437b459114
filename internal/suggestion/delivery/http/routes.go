package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the suggestion endpoints onto the router group.
// Extra middleware (rate limiting) is applied by the caller so the
// handler stays transport-policy free.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw ...gin.HandlerFunc) {
	suggestions := rg.Group("/suggestions", mw...)
	{
		suggestions.GET("", h.Fetch)
	}
}
