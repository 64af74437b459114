package http

import (
	"github.com/gin-gonic/gin"

	"prosync/internal/model"
	"prosync/internal/suggestion"
	"prosync/pkg/response"
)

type suggestionResp struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

type fetchResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
	Count       int              `json:"count"`
}

func newSuggestionResp(s model.Suggestion) suggestionResp {
	return suggestionResp{
		Title:    s.Title,
		Category: string(s.Category),
		Priority: string(s.Priority),
		Reason:   s.Reason,
	}
}

func newFetchResp(output suggestion.FetchOutput) fetchResp {
	suggestions := make([]suggestionResp, len(output.Suggestions))
	for i, s := range output.Suggestions {
		suggestions[i] = newSuggestionResp(s)
	}
	return fetchResp{
		Suggestions: suggestions,
		Count:       output.Count,
	}
}

// Fetch godoc
// @Summary     Fetch AI task suggestions
// @Description Asks the configured model for proactive task suggestions. Returns an empty list when the model is unavailable or responds with unusable data.
// @Tags        Suggestions
// @Produce     json
// @Success     200 {object} fetchResp
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /api/v1/suggestions [GET]
func (h *handler) Fetch(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Fetch(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Fetch: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, newFetchResp(output))
}
