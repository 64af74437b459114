package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"prosync/internal/model"
	"prosync/internal/task"
)

func listFixture() []model.Task {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return []model.Task{
		{ID: "a", Title: "Pay rent", Category: model.CategoryBills, Priority: model.PriorityMedium, DueDate: base.Add(72 * time.Hour), CreatedAt: base.Add(3 * time.Hour)},
		{ID: "b", Title: "File VAT", Category: model.CategoryTaxes, Priority: model.PriorityHigh, DueDate: base, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "c", Title: "Gym", Category: model.CategoryPersonal, Priority: model.PriorityLow, DueDate: base.Add(24 * time.Hour), CreatedAt: base.Add(1 * time.Hour)},
		{ID: "d", Title: "Invoice client", Category: model.CategoryBusiness, Priority: model.PriorityHigh, DueDate: base.Add(48 * time.Hour), CreatedAt: base},
	}
}

func TestList(t *testing.T) {
	t.Run("All Passes Everything Through", func(t *testing.T) {
		_, uc := newTestUseCase(t, listFixture(), nil)

		out, err := uc.List(context.Background(), task.ListTasksInput{Category: task.CategoryFilterAll})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 4 {
			t.Errorf("expected 4 tasks, got %d", out.Total)
		}
	})

	t.Run("Category Filter Is Exact", func(t *testing.T) {
		_, uc := newTestUseCase(t, listFixture(), nil)

		out, err := uc.List(context.Background(), task.ListTasksInput{Category: string(model.CategoryBills)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 1 {
			t.Fatalf("expected 1 bill task, got %d", out.Total)
		}
		for _, got := range out.Tasks {
			if got.Category != model.CategoryBills {
				t.Errorf("filter leaked category %s", got.Category)
			}
		}
	})

	t.Run("Sort By Due Date Ascending", func(t *testing.T) {
		_, uc := newTestUseCase(t, listFixture(), nil)

		out, err := uc.List(context.Background(), task.ListTasksInput{SortBy: task.SortByDueDate})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(out.Tasks); i++ {
			if out.Tasks[i].DueDate.Before(out.Tasks[i-1].DueDate) {
				t.Errorf("due dates not ascending at index %d", i)
			}
		}
		if out.Tasks[0].ID != "b" {
			t.Errorf("expected earliest due first, got %s", out.Tasks[0].ID)
		}
	})

	t.Run("Sort By Created At Ascending", func(t *testing.T) {
		_, uc := newTestUseCase(t, listFixture(), nil)

		out, err := uc.List(context.Background(), task.ListTasksInput{SortBy: task.SortByCreatedAt})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Tasks[0].ID != "d" || out.Tasks[3].ID != "a" {
			t.Errorf("unexpected created_at order: %s..%s", out.Tasks[0].ID, out.Tasks[3].ID)
		}
	})

	t.Run("Sort By Priority Descending Rank", func(t *testing.T) {
		_, uc := newTestUseCase(t, listFixture(), nil)

		out, err := uc.List(context.Background(), task.ListTasksInput{SortBy: task.SortByPriority})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := 1; i < len(out.Tasks); i++ {
			if out.Tasks[i].Priority.Rank() > out.Tasks[i-1].Priority.Rank() {
				t.Errorf("priority rank not descending at index %d", i)
			}
		}
		if out.Tasks[len(out.Tasks)-1].Priority != model.PriorityLow {
			t.Errorf("expected Low last, got %s", out.Tasks[len(out.Tasks)-1].Priority)
		}
	})

	t.Run("Defaults To Due Date And All", func(t *testing.T) {
		_, uc := newTestUseCase(t, listFixture(), nil)

		out, err := uc.List(context.Background(), task.ListTasksInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 4 || out.Tasks[0].ID != "b" {
			t.Errorf("unexpected default listing: total=%d first=%s", out.Total, out.Tasks[0].ID)
		}
	})

	t.Run("Unknown Sort Key", func(t *testing.T) {
		_, uc := newTestUseCase(t, listFixture(), nil)

		_, err := uc.List(context.Background(), task.ListTasksInput{SortBy: "alphabetical"})
		if !errors.Is(err, task.ErrInvalidSortKey) {
			t.Errorf("expected ErrInvalidSortKey, got %v", err)
		}
	})

	t.Run("Unknown Category Filter", func(t *testing.T) {
		_, uc := newTestUseCase(t, listFixture(), nil)

		_, err := uc.List(context.Background(), task.ListTasksInput{Category: "Chores"})
		if !errors.Is(err, task.ErrInvalidCategory) {
			t.Errorf("expected ErrInvalidCategory, got %v", err)
		}
	})
}
