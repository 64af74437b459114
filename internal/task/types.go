package task

import (
	"time"

	"prosync/internal/model"
)

// SortKey selects the ordering of the task list view.
type SortKey string

const (
	SortByDueDate   SortKey = "due_date"
	SortByPriority  SortKey = "priority"
	SortByCreatedAt SortKey = "created_at"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortByDueDate, SortByPriority, SortByCreatedAt:
		return true
	}
	return false
}

// CategoryFilterAll passes every task through the list filter.
const CategoryFilterAll = "All"

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Title       string
	Notes       string
	Category    model.Category
	SubType     string
	Priority    model.Priority
	DueDate     time.Time
	IsCompleted bool
	Recurring   model.Recurrence
}

type UpdateTaskInput struct {
	ID          string
	Title       *string
	Notes       *string
	Category    *model.Category
	SubType     *string
	Priority    *model.Priority
	DueDate     *time.Time
	IsCompleted *bool
	Recurring   *model.Recurrence
}

type ListTasksInput struct {
	Category string // CategoryFilterAll or a specific category value
	SortBy   SortKey
}

type CalendarInput struct {
	Year  int
	Month time.Month
}

// --- UseCase Outputs ---

type CreateTaskOutput struct {
	Task model.Task
}

type DetailTaskOutput struct {
	Task model.Task
}

type UpdateTaskOutput struct {
	Task model.Task
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}

// GroupsOutput tallies incomplete tasks per category and per priority
// for the dashboard cards.
type GroupsOutput struct {
	Categories map[model.Category]int
	Priorities map[model.Priority]int
}

// CalendarOutput maps day-of-month to the tasks due that day within the
// displayed month. Days with no tasks are absent from the map.
type CalendarOutput struct {
	Year  int
	Month time.Month
	Days  map[int][]model.Task
}
