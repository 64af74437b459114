package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"prosync/internal/model"
	"prosync/internal/suggestion"
	"prosync/pkg/gemini"
)

// taskProjection is the slim view of a task the prompt carries: enough
// context for relevant suggestions, nothing else.
type taskProjection struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Due      string `json:"due"`
}

// suggestionPayload is the loosely-typed record the model returns. It is
// validated into model.Suggestion before leaving this package.
type suggestionPayload struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Priority string `json:"priority"`
	Reason   string `json:"reason"`
}

// suggestionSchema constrains the model to a JSON array of suggestion
// objects with all four fields present.
var suggestionSchema = &gemini.Schema{
	Type: gemini.TypeArray,
	Items: &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"title":    {Type: gemini.TypeString},
			"category": {Type: gemini.TypeString},
			"priority": {Type: gemini.TypeString},
			"reason":   {Type: gemini.TypeString},
		},
		Required: []string{"title", "category", "priority", "reason"},
	},
}

// Fetch asks the model for proactive task suggestions based on the
// current collection. Every failure mode collapses to an empty list:
// the host view renders "no suggestions available" and moves on.
func (uc *implUseCase) Fetch(ctx context.Context) (suggestion.FetchOutput, error) {
	tasks := uc.tasks.Snapshot()

	projections := make([]taskProjection, len(tasks))
	for i, t := range tasks {
		projections[i] = taskProjection{
			Title:    t.Title,
			Category: string(t.Category),
			Due:      t.DueDate.Format(time.RFC3339),
		}
	}

	projected, err := json.Marshal(projections)
	if err != nil {
		uc.l.Errorf(ctx, "%s: failed to project tasks: %v", logPrefixFetch, err)
		return suggestion.FetchOutput{Suggestions: []model.Suggestion{}}, nil
	}

	resp, err := uc.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: fmt.Sprintf(promptTemplate, projected)}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      suggestionTemperature,
			ResponseMIMEType: "application/json",
			ResponseSchema:   suggestionSchema,
		},
	})
	if err != nil {
		uc.l.Warnf(ctx, "%s: LLM call failed: %v", logPrefixFetch, err)
		return suggestion.FetchOutput{Suggestions: []model.Suggestion{}}, nil
	}

	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		uc.l.Warnf(ctx, "%s: empty LLM response", logPrefixFetch)
		return suggestion.FetchOutput{Suggestions: []model.Suggestion{}}, nil
	}

	payloads, err := parsePayloads(resp.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		uc.l.Warnf(ctx, "%s: failed to parse LLM response: %v", logPrefixFetch, err)
		return suggestion.FetchOutput{Suggestions: []model.Suggestion{}}, nil
	}

	suggestions := make([]model.Suggestion, 0, len(payloads))
	for _, p := range payloads {
		s, ok := validatePayload(p)
		if !ok {
			uc.l.Warnf(ctx, "%s: discarding invalid suggestion %+v", logPrefixFetch, p)
			continue
		}
		suggestions = append(suggestions, s)
	}

	return suggestion.FetchOutput{
		Suggestions: suggestions,
		Count:       len(suggestions),
	}, nil
}

// parsePayloads unmarshals the response text, stripping markdown code
// fences some models wrap JSON in despite the response MIME type.
func parsePayloads(text string) ([]suggestionPayload, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}

	var payloads []suggestionPayload
	if err := json.Unmarshal([]byte(text), &payloads); err != nil {
		return nil, err
	}
	return payloads, nil
}

// validatePayload normalizes a raw record into a typed Suggestion.
// Records with an empty title or an unrecognized category/priority are
// rejected rather than propagated inward.
func validatePayload(p suggestionPayload) (model.Suggestion, bool) {
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return model.Suggestion{}, false
	}

	category, ok := normalizeCategory(p.Category)
	if !ok {
		return model.Suggestion{}, false
	}

	priority, ok := normalizePriority(p.Priority)
	if !ok {
		return model.Suggestion{}, false
	}

	return model.Suggestion{
		Title:    title,
		Category: category,
		Priority: priority,
		Reason:   strings.TrimSpace(p.Reason),
	}, true
}

func normalizeCategory(raw string) (model.Category, bool) {
	for _, c := range model.Categories {
		if strings.EqualFold(strings.TrimSpace(raw), string(c)) {
			return c, true
		}
	}
	return "", false
}

func normalizePriority(raw string) (model.Priority, bool) {
	for _, p := range model.Priorities {
		if strings.EqualFold(strings.TrimSpace(raw), string(p)) {
			return p, true
		}
	}
	return "", false
}
