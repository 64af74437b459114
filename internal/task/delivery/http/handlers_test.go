package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"prosync/internal/model"
	taskHTTP "prosync/internal/task/delivery/http"
	"prosync/internal/task/store"
	"prosync/internal/task/usecase"
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

type mockRepository struct {
	tasks []model.Task
}

func (m *mockRepository) LoadSnapshot(ctx context.Context) ([]model.Task, error) {
	return m.tasks, nil
}

func (m *mockRepository) SaveSnapshot(ctx context.Context, tasks []model.Task) error {
	m.tasks = tasks
	return nil
}

func newTestRouter(t *testing.T, seed []model.Task) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	l := &mockLogger{}
	s, err := store.New(context.Background(), l, &mockRepository{tasks: seed})
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	uc := usecase.New(l, s, time.UTC)
	h := taskHTTP.New(l, uc)

	r := gin.New()
	taskHTTP.RegisterRoutes(r.Group("/api/v1"), h)
	return r
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if len(w.Body.Bytes()) > 0 {
		json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func TestTaskHandlers(t *testing.T) {
	t.Run("Create Then List", func(t *testing.T) {
		r := newTestRouter(t, nil)

		w, env := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
			"title":    "Pay rent",
			"category": "Bills",
			"priority": "Medium",
			"due_date": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		})
		if w.Code != http.StatusOK {
			t.Fatalf("create: expected 200, got %d (%s)", w.Code, w.Body.String())
		}

		var created struct {
			Task struct {
				ID          string `json:"id"`
				Title       string `json:"title"`
				IsCompleted bool   `json:"is_completed"`
			} `json:"task"`
		}
		if err := json.Unmarshal(env.Data, &created); err != nil {
			t.Fatalf("decode create response: %v", err)
		}
		if created.Task.ID == "" || created.Task.Title != "Pay rent" || created.Task.IsCompleted {
			t.Errorf("unexpected created task: %+v", created.Task)
		}

		w, env = doJSON(t, r, http.MethodGet, "/api/v1/tasks", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("list: expected 200, got %d", w.Code)
		}
		var listed struct {
			Total int `json:"total"`
		}
		json.Unmarshal(env.Data, &listed)
		if listed.Total != 1 {
			t.Errorf("expected 1 task listed, got %d", listed.Total)
		}
	})

	t.Run("Create Rejects Missing Title", func(t *testing.T) {
		r := newTestRouter(t, nil)

		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/tasks", gin.H{
			"category": "Bills",
			"priority": "Low",
			"due_date": time.Now().Format(time.RFC3339),
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Detail Unknown Id Is 404", func(t *testing.T) {
		r := newTestRouter(t, nil)

		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/tasks/ghost", nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Delete Unknown Id Is OK", func(t *testing.T) {
		r := newTestRouter(t, nil)

		w, _ := doJSON(t, r, http.MethodDelete, "/api/v1/tasks/ghost", nil)
		if w.Code != http.StatusOK {
			t.Errorf("expected idempotent 200, got %d", w.Code)
		}
	})

	t.Run("Summary Endpoint", func(t *testing.T) {
		r := newTestRouter(t, []model.Task{
			{ID: "1", Title: "Late", DueDate: time.Now().Add(-24 * time.Hour)},
			{ID: "2", Title: "Soon", DueDate: time.Now().Add(24 * time.Hour)},
		})

		w, env := doJSON(t, r, http.MethodGet, "/api/v1/tasks/summary", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var sum struct {
			Total   int `json:"total"`
			Overdue int `json:"overdue"`
		}
		json.Unmarshal(env.Data, &sum)
		if sum.Total != 2 || sum.Overdue != 1 {
			t.Errorf("unexpected summary: %+v", sum)
		}
	})

	t.Run("Calendar Requires Month", func(t *testing.T) {
		r := newTestRouter(t, nil)

		w, _ := doJSON(t, r, http.MethodGet, "/api/v1/tasks/calendar?year=2024", nil)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("Toggle Flips Completion", func(t *testing.T) {
		r := newTestRouter(t, []model.Task{{ID: "t1", Title: "Flip", DueDate: time.Now()}})

		w, _ := doJSON(t, r, http.MethodPost, "/api/v1/tasks/t1/toggle", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		_, env := doJSON(t, r, http.MethodGet, "/api/v1/tasks/t1", nil)
		var detail struct {
			Task struct {
				IsCompleted bool `json:"is_completed"`
			} `json:"task"`
		}
		json.Unmarshal(env.Data, &detail)
		if !detail.Task.IsCompleted {
			t.Errorf("expected completed after toggle")
		}
	})
}
