package usecase_test

import (
	"context"
	"testing"
	"time"

	"prosync/internal/model"
	"prosync/internal/task"
	"prosync/internal/task/store"
	"prosync/internal/task/usecase"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                      {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)    {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)   {}

// Mock repository with function fields
type mockRepository struct {
	loadFunc func() ([]model.Task, error)
	saveFunc func(tasks []model.Task) error
	saves    int
}

func (m *mockRepository) LoadSnapshot(ctx context.Context) ([]model.Task, error) {
	if m.loadFunc != nil {
		return m.loadFunc()
	}
	return nil, nil
}

func (m *mockRepository) SaveSnapshot(ctx context.Context, tasks []model.Task) error {
	m.saves++
	if m.saveFunc != nil {
		return m.saveFunc(tasks)
	}
	return nil
}

// newTestUseCase builds a usecase over a store seeded with the given
// tasks, bucketing calendars in loc (nil means UTC).
func newTestUseCase(t *testing.T, tasks []model.Task, loc *time.Location) (*store.Store, task.UseCase) {
	t.Helper()

	repo := &mockRepository{loadFunc: func() ([]model.Task, error) { return tasks, nil }}
	s, err := store.New(context.Background(), &mockLogger{}, repo)
	if err != nil {
		t.Fatalf("failed to build store: %v", err)
	}
	return s, usecase.New(&mockLogger{}, s, loc)
}
