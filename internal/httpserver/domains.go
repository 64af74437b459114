package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"prosync/internal/middleware"
	suggestionHTTP "prosync/internal/suggestion/delivery/http"
	suggestionUC "prosync/internal/suggestion/usecase"
	taskHTTP "prosync/internal/task/delivery/http"
	taskUC "prosync/internal/task/usecase"
)

// setupTaskDomain initializes the task domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.l, ...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h)
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	uc := taskUC.New(srv.l, srv.store, srv.location)

	h := taskHTTP.New(srv.l, uc)

	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}

// setupSuggestionDomain wires the AI suggestion endpoint. Skipped when no
// Gemini client is configured so the rest of the API keeps working.
func (srv *HTTPServer) setupSuggestionDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	if srv.gemini == nil {
		srv.l.Infof(ctx, "Gemini client not configured, skipping suggestion routes")
		return nil
	}

	uc := suggestionUC.New(srv.l, srv.gemini, srv.store)

	h := suggestionHTTP.New(srv.l, uc)

	suggestionHTTP.RegisterRoutes(api, h, mw.RateLimit())

	srv.l.Infof(ctx, "Suggestion domain registered (model: %s)", srv.gemini.Model())
	return nil
}
