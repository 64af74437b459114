package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"prosync/internal/model"
	"prosync/internal/suggestion/usecase"
	"prosync/pkg/gemini"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

type mockGenerator struct {
	generateFunc func(req gemini.GenerateRequest) (*gemini.GenerateResponse, error)
	lastRequest  *gemini.GenerateRequest
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.lastRequest = &req
	if m.generateFunc != nil {
		return m.generateFunc(req)
	}
	return &gemini.GenerateResponse{}, nil
}

type mockTaskSource struct {
	tasks     []model.Task
	snapshots int
}

func (m *mockTaskSource) Snapshot() []model.Task {
	m.snapshots++
	out := make([]model.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

func textResponse(text string) *gemini.GenerateResponse {
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: text}}}},
		},
	}
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("LLM Failure Returns Empty List", func(t *testing.T) {
		gen := &mockGenerator{generateFunc: func(gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			return nil, errors.New("network down")
		}}
		src := &mockTaskSource{tasks: []model.Task{{ID: "1", Title: "Existing"}}}
		uc := usecase.New(&mockLogger{}, gen, src)

		out, err := uc.Fetch(ctx)
		if err != nil {
			t.Fatalf("fetch must not raise on upstream failure: %v", err)
		}
		if out.Suggestions == nil || len(out.Suggestions) != 0 {
			t.Errorf("expected empty non-nil list, got %v", out.Suggestions)
		}
		if len(src.tasks) != 1 {
			t.Errorf("task collection must stay untouched")
		}
	})

	t.Run("Malformed JSON Returns Empty List", func(t *testing.T) {
		gen := &mockGenerator{generateFunc: func(gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			return textResponse("not json at all"), nil
		}}
		uc := usecase.New(&mockLogger{}, gen, &mockTaskSource{})

		out, err := uc.Fetch(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Suggestions) != 0 {
			t.Errorf("expected empty list, got %v", out.Suggestions)
		}
	})

	t.Run("Empty Candidates Return Empty List", func(t *testing.T) {
		gen := &mockGenerator{generateFunc: func(gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			return &gemini.GenerateResponse{}, nil
		}}
		uc := usecase.New(&mockLogger{}, gen, &mockTaskSource{})

		out, err := uc.Fetch(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 0 {
			t.Errorf("expected zero count, got %d", out.Count)
		}
	})

	t.Run("Valid Records Pass Invalid Are Discarded", func(t *testing.T) {
		body := `[
			{"title": "File quarterly VAT", "category": "Taxes", "priority": "High", "reason": "Q2 deadline approaching"},
			{"title": "", "category": "Bills", "priority": "Low", "reason": "missing title"},
			{"title": "Renew something", "category": "Chores", "priority": "Low", "reason": "unknown category"},
			{"title": "Pay internet bill", "category": "bills", "priority": "medium", "reason": "recurring utility"}
		]`
		gen := &mockGenerator{generateFunc: func(gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			return textResponse(body), nil
		}}
		uc := usecase.New(&mockLogger{}, gen, &mockTaskSource{})

		out, err := uc.Fetch(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 2 {
			t.Fatalf("expected 2 valid suggestions, got %d", out.Count)
		}
		if out.Suggestions[0].Category != model.CategoryTaxes || out.Suggestions[0].Priority != model.PriorityHigh {
			t.Errorf("unexpected first suggestion: %+v", out.Suggestions[0])
		}
		// Case-insensitive values normalize to the fixed enums.
		if out.Suggestions[1].Category != model.CategoryBills || out.Suggestions[1].Priority != model.PriorityMedium {
			t.Errorf("normalization failed: %+v", out.Suggestions[1])
		}
	})

	t.Run("Code Fences Are Stripped", func(t *testing.T) {
		body := "```json\n[{\"title\": \"Pay rent\", \"category\": \"Bills\", \"priority\": \"High\", \"reason\": \"due soon\"}]\n```"
		gen := &mockGenerator{generateFunc: func(gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			return textResponse(body), nil
		}}
		uc := usecase.New(&mockLogger{}, gen, &mockTaskSource{})

		out, err := uc.Fetch(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Count != 1 || out.Suggestions[0].Title != "Pay rent" {
			t.Errorf("fenced JSON not parsed: %+v", out)
		}
	})

	t.Run("Prompt Carries Task Projection And Schema", func(t *testing.T) {
		gen := &mockGenerator{generateFunc: func(gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
			return textResponse("[]"), nil
		}}
		due := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
		src := &mockTaskSource{tasks: []model.Task{
			{ID: "1", Title: "Pay water bill", Category: model.CategoryBills, Notes: "secret notes", DueDate: due},
		}}
		uc := usecase.New(&mockLogger{}, gen, src)

		if _, err := uc.Fetch(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gen.lastRequest == nil {
			t.Fatalf("no request captured")
		}

		prompt := gen.lastRequest.Contents[0].Parts[0].Text
		if !strings.Contains(prompt, "Pay water bill") || !strings.Contains(prompt, due.Format(time.RFC3339)) {
			t.Errorf("prompt missing task projection: %s", prompt)
		}
		if strings.Contains(prompt, "secret notes") {
			t.Errorf("prompt leaked fields outside the projection")
		}

		cfg := gen.lastRequest.GenerationConfig
		if cfg == nil || cfg.ResponseMIMEType != "application/json" || cfg.ResponseSchema == nil {
			t.Errorf("expected JSON response config with schema, got %+v", cfg)
		}
	})
}
