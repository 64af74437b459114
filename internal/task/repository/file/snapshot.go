package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"prosync/internal/model"
)

// LoadSnapshot reads the persisted collection. A missing or unparseable
// file is not an error: the seed collection is returned instead and the
// next mutation overwrites whatever was on disk.
func (r *implRepository) LoadSnapshot(ctx context.Context) ([]model.Task, error) {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			r.l.Infof(ctx, "task/repository/file: no snapshot at %s, seeding sample tasks", r.path)
			return seedTasks(), nil
		}
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var tasks []model.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		r.l.Warnf(ctx, "task/repository/file: discarding unparseable snapshot at %s: %v", r.path, err)
		return seedTasks(), nil
	}

	return tasks, nil
}

// SaveSnapshot rewrites the whole collection. The document is written to
// a temp file first and renamed into place so a crash mid-write leaves
// the previous snapshot intact.
func (r *implRepository) SaveSnapshot(ctx context.Context, tasks []model.Task) error {
	raw, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "tasks-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp snapshot: %w", err)
	}

	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}

	return nil
}
