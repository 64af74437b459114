package task

import (
	"context"
	"time"

	"prosync/internal/model"
)

// UseCase is the task domain contract: store mutations plus the derived
// views the dashboard, list and calendar screens render from.
type UseCase interface {
	// Mutations
	Create(ctx context.Context, input CreateTaskInput) (CreateTaskOutput, error)
	Detail(ctx context.Context, id string) (DetailTaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (UpdateTaskOutput, error)
	Delete(ctx context.Context, id string) error
	ToggleComplete(ctx context.Context, id string) error

	// Derived views. All recompute from a fresh snapshot on every call
	// and never retain a handle into the store's internal state.
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Summary(ctx context.Context, now time.Time) (model.SummaryData, error)
	Groups(ctx context.Context) (GroupsOutput, error)
	Calendar(ctx context.Context, input CalendarInput) (CalendarOutput, error)
}
