package task

import "errors"

var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrEmptyTitle      = errors.New("task title must not be empty")
	ErrInvalidCategory = errors.New("invalid task category")
	ErrInvalidPriority = errors.New("invalid task priority")
	ErrInvalidSortKey  = errors.New("invalid sort key")
	ErrInvalidMonth    = errors.New("invalid calendar month")
)
