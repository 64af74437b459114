package suggestion

import "prosync/internal/model"

// FetchOutput is the result of one suggestion fetch.
type FetchOutput struct {
	Suggestions []model.Suggestion
	Count       int
}
