package repository

import (
	"context"

	"prosync/internal/model"
)

// Repository is the persistence port for the task collection. The whole
// collection is written and read as a single snapshot: there is no
// per-record access, no schema versioning and no partial write.
type Repository interface {
	// LoadSnapshot returns the persisted collection. Implementations
	// fall back to seed data when no usable snapshot exists.
	LoadSnapshot(ctx context.Context) ([]model.Task, error)

	// SaveSnapshot replaces the persisted collection in full.
	SaveSnapshot(ctx context.Context, tasks []model.Task) error
}
