package usecase

import (
	"context"
	"sort"

	"prosync/internal/model"
	"prosync/internal/task"
)

// List filters the collection by category and sorts it by the requested
// key. due_date and created_at sort ascending; priority sorts descending
// by rank so High lands on top.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	if input.SortBy == "" {
		input.SortBy = task.SortByDueDate
	}
	if !input.SortBy.Valid() {
		return task.ListTasksOutput{}, task.ErrInvalidSortKey
	}
	if input.Category == "" {
		input.Category = task.CategoryFilterAll
	}
	if input.Category != task.CategoryFilterAll && !model.Category(input.Category).Valid() {
		return task.ListTasksOutput{}, task.ErrInvalidCategory
	}

	all := uc.store.Snapshot()

	tasks := all[:0:0]
	for _, t := range all {
		if input.Category == task.CategoryFilterAll || string(t.Category) == input.Category {
			tasks = append(tasks, t)
		}
	}

	switch input.SortBy {
	case task.SortByPriority:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
		})
	case task.SortByCreatedAt:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		})
	default: // SortByDueDate
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		})
	}

	return task.ListTasksOutput{Tasks: tasks, Total: len(tasks)}, nil
}
