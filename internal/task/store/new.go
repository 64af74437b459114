package store

import (
	"context"
	"fmt"
	"sync"

	"prosync/internal/model"
	"prosync/internal/task/repository"
	"prosync/pkg/log"
)

// Store holds the authoritative in-memory task collection. It is the
// sole source of truth every view reads from. All mutations write the
// full collection through to the repository.
type Store struct {
	l    log.Logger
	repo repository.Repository

	// mu keeps each mutation plus its snapshot write atomic. There is
	// exactly one logical writer per request, never partial state.
	mu    sync.RWMutex
	tasks []model.Task
}

// New creates a Store hydrated from the repository snapshot.
func New(ctx context.Context, l log.Logger, repo repository.Repository) (*Store, error) {
	tasks, err := repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load task snapshot: %w", err)
	}

	return &Store{
		l:     l,
		repo:  repo,
		tasks: tasks,
	}, nil
}
