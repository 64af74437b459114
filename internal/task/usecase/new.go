package usecase

import (
	"time"

	"prosync/internal/task/store"
	"prosync/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	l     log.Logger
	store *store.Store
	loc   *time.Location // calendar bucketing timezone
}

// New creates a new task UseCase implementation. loc is the timezone
// calendar days are resolved in; nil falls back to UTC.
func New(l log.Logger, s *store.Store, loc *time.Location) *implUseCase {
	if loc == nil {
		loc = time.UTC
	}
	return &implUseCase{
		l:     l,
		store: s,
		loc:   loc,
	}
}
