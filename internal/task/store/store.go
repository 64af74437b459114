package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"prosync/internal/model"
)

// CreateOptions holds every Task field the caller may set at creation.
// ID and CreatedAt are always assigned by the store.
type CreateOptions struct {
	Title       string
	Notes       string
	Category    model.Category
	SubType     string
	Priority    model.Priority
	DueDate     time.Time
	IsCompleted bool
	Recurring   model.Recurrence
}

// UpdateOptions holds the fields of a partial update. Nil fields are
// left untouched. ID and CreatedAt can never be changed.
type UpdateOptions struct {
	Title       *string
	Notes       *string
	Category    *model.Category
	SubType     *string
	Priority    *model.Priority
	DueDate     *time.Time
	IsCompleted *bool
	Recurring   *model.Recurrence
}

// Create assigns a fresh id and creation time, prepends the new task to
// the collection and mirrors the collection to the repository.
func (s *Store) Create(ctx context.Context, opt CreateOptions) model.Task {
	t := model.Task{
		ID:          uuid.NewString(),
		Title:       opt.Title,
		Notes:       opt.Notes,
		Category:    opt.Category,
		SubType:     opt.SubType,
		Priority:    opt.Priority,
		DueDate:     opt.DueDate,
		IsCompleted: opt.IsCompleted,
		Recurring:   opt.Recurring,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append([]model.Task{t}, s.tasks...)
	s.persistLocked(ctx)

	return t
}

// Update merges opt into the task matching id. A missing id is a no-op
// reported through the second return value.
func (s *Store) Update(ctx context.Context, id string, opt UpdateOptions) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		t := &s.tasks[i]
		if opt.Title != nil {
			t.Title = *opt.Title
		}
		if opt.Notes != nil {
			t.Notes = *opt.Notes
		}
		if opt.Category != nil {
			t.Category = *opt.Category
		}
		if opt.SubType != nil {
			t.SubType = *opt.SubType
		}
		if opt.Priority != nil {
			t.Priority = *opt.Priority
		}
		if opt.DueDate != nil {
			t.DueDate = *opt.DueDate
		}
		if opt.IsCompleted != nil {
			t.IsCompleted = *opt.IsCompleted
		}
		if opt.Recurring != nil {
			t.Recurring = *opt.Recurring
		}

		s.persistLocked(ctx)
		return *t, true
	}

	return model.Task{}, false
}

// Remove deletes the task matching id. Removing an absent id is a no-op,
// so Remove is idempotent.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.persistLocked(ctx)
			return
		}
	}
}

// ToggleComplete flips IsCompleted on the task matching id. Applying it
// twice restores the original value. A missing id is a no-op.
func (s *Store) ToggleComplete(ctx context.Context, id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
			s.persistLocked(ctx)
			return s.tasks[i], true
		}
	}

	return model.Task{}, false
}

// Get returns the task matching id.
func (s *Store) Get(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return s.tasks[i], true
		}
	}
	return model.Task{}, false
}

// Snapshot returns a copy of the collection in insertion order, newest
// created first. Callers own the returned slice.
func (s *Store) Snapshot() []model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// persistLocked mirrors the collection to the repository. The write is
// fire-and-forget: failures are logged, never surfaced to the mutating
// caller. Must be called with mu held.
func (s *Store) persistLocked(ctx context.Context) {
	snapshot := make([]model.Task, len(s.tasks))
	copy(snapshot, s.tasks)

	if err := s.repo.SaveSnapshot(ctx, snapshot); err != nil {
		s.l.Errorf(ctx, "task/store: failed to persist snapshot: %v", err)
	}
}
