package usecase

import (
	"context"
	"strings"

	"prosync/internal/task"
	"prosync/internal/task/store"
)

// Create validates the input and inserts a new task at the front of the
// collection.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.CreateTaskOutput, error) {
	if strings.TrimSpace(input.Title) == "" {
		return task.CreateTaskOutput{}, task.ErrEmptyTitle
	}
	if !input.Category.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidCategory
	}
	if !input.Priority.Valid() {
		return task.CreateTaskOutput{}, task.ErrInvalidPriority
	}

	t := uc.store.Create(ctx, store.CreateOptions{
		Title:       input.Title,
		Notes:       input.Notes,
		Category:    input.Category,
		SubType:     input.SubType,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		IsCompleted: input.IsCompleted,
		Recurring:   input.Recurring,
	})

	return task.CreateTaskOutput{Task: t}, nil
}

// Detail retrieves a single task by id.
func (uc *implUseCase) Detail(ctx context.Context, id string) (task.DetailTaskOutput, error) {
	t, ok := uc.store.Get(id)
	if !ok {
		return task.DetailTaskOutput{}, task.ErrTaskNotFound
	}
	return task.DetailTaskOutput{Task: t}, nil
}

// Update merges the given fields into an existing task. ID and CreatedAt
// are never altered.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.UpdateTaskOutput, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return task.UpdateTaskOutput{}, task.ErrEmptyTitle
	}
	if input.Category != nil && !input.Category.Valid() {
		return task.UpdateTaskOutput{}, task.ErrInvalidCategory
	}
	if input.Priority != nil && !input.Priority.Valid() {
		return task.UpdateTaskOutput{}, task.ErrInvalidPriority
	}

	t, ok := uc.store.Update(ctx, input.ID, store.UpdateOptions{
		Title:       input.Title,
		Notes:       input.Notes,
		Category:    input.Category,
		SubType:     input.SubType,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		IsCompleted: input.IsCompleted,
		Recurring:   input.Recurring,
	})
	if !ok {
		return task.UpdateTaskOutput{}, task.ErrTaskNotFound
	}

	return task.UpdateTaskOutput{Task: t}, nil
}

// Delete removes a task by id. Deleting an unknown id is a silent no-op,
// so the operation is idempotent.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	uc.store.Remove(ctx, id)
	return nil
}

// ToggleComplete flips the completion flag on a task. An unknown id is a
// silent no-op.
func (uc *implUseCase) ToggleComplete(ctx context.Context, id string) error {
	uc.store.ToggleComplete(ctx, id)
	return nil
}
